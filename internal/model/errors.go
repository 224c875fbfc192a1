package model

import "errors"

var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrResourceNotFound = errors.New("no such resource")
	ErrForbidden        = errors.New("forbidden")
	ErrInvalidState     = errors.New("invalid state")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUpstream         = errors.New("upstream provider failure")
	ErrEmptyPool        = errors.New("no movies match the requested filters")
	ErrInternal         = errors.New("internal error")
)
