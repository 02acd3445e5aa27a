package services

import (
	"errors"
)

// Caller-visible failure conditions. A duplicate vote is deliberately NOT in
// this list: it is a defined no-op outcome, reported as accepted=false.
var (
	ErrNotFound     = errors.New("record not found")
	ErrUnauthorized = errors.New("not authorized")
	ErrUnknownTag   = errors.New("that tag does not exist")
	ErrEmptyTagName = errors.New("please provide a tag")
)
