package identity

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// Identity is the authenticated caller as supplied by the bearer token.
type Identity struct {
	UserID   uint
	Username string
	Role     Role
}

// IsStaff reports whether the caller may grade attempts and see every attempt.
func (i Identity) IsStaff() bool {
	return i.Role == RoleTeacher || i.Role == RoleAdmin
}
