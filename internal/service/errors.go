package service

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrPrecondition     = errors.New("precondition failed")
	ErrAlreadySubmitted = errors.New("section already submitted")
	ErrValidation       = errors.New("validation failed")
	ErrForbidden        = errors.New("forbidden")
)
