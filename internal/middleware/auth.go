package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/ielts-mock/config"
	"github.com/lshigami/ielts-mock/internal/dto"
	"github.com/lshigami/ielts-mock/internal/identity"
	"github.com/rs/zerolog/log"
)

const identityKey = "identity"

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the bearer token payload. The subject holds the numeric user id.
type Claims struct {
	Role     string `json:"role"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 tokens issued by the identity provider.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(cfg *config.Config) *Authenticator {
	return &Authenticator{secret: []byte(cfg.Auth.JWTSecret)}
}

func (a *Authenticator) Parse(tokenStr string) (identity.Identity, error) {
	if len(a.secret) == 0 {
		return identity.Identity{}, fmt.Errorf("%w: no signing secret configured", ErrInvalidToken)
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return identity.Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return identity.Identity{}, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil || userID == 0 {
		return identity.Identity{}, fmt.Errorf("%w: subject %q is not a user id", ErrInvalidToken, claims.Subject)
	}
	role := identity.Role(strings.ToLower(claims.Role))
	if !role.Valid() {
		return identity.Identity{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}
	return identity.Identity{UserID: uint(userID), Username: claims.Username, Role: role}, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's identity on the gin context.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenStr, err := bearerToken(ctx.GetHeader("Authorization"))
		if err != nil {
			log.Warn().Str("path", ctx.FullPath()).Msg("Auth: Missing bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		who, err := a.Parse(tokenStr)
		if err != nil {
			log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Auth: Rejected token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}
		ctx.Set(identityKey, who)
		ctx.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...identity.Role) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		who, ok := CurrentIdentity(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		for _, r := range roles {
			if who.Role == r {
				ctx.Next()
				return
			}
		}
		log.Warn().Uint("userID", who.UserID).Str("role", string(who.Role)).Str("path", ctx.FullPath()).Msg("Auth: Role not allowed")
		ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Insufficient role for this operation"})
	}
}

func CurrentIdentity(ctx *gin.Context) (identity.Identity, bool) {
	v, ok := ctx.Get(identityKey)
	if !ok {
		return identity.Identity{}, false
	}
	who, ok := v.(identity.Identity)
	return who, ok
}

// WithIdentity stores who on the context. Handlers under test use it in
// place of RequireAuth.
func WithIdentity(ctx *gin.Context, who identity.Identity) {
	ctx.Set(identityKey, who)
}

func bearerToken(header string) (string, error) {
	fields := strings.Fields(header)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", ErrMissingToken
	}
	return fields[1], nil
}
