package service

import (
	"errors"
	"fmt"

	"legaldocs/internal/validation"
)

// Kind classifies a service failure so the HTTP layer can map it to a status
// code without inspecting the underlying error.
type Kind int

const (
	// KindUpstream is a failure of the database, object store or Document
	// Record Service.
	KindUpstream Kind = iota
	// KindValidation is a rejected document class/type combination.
	KindValidation
	// KindForbidden is a delete of a document whose filing is not a draft.
	KindForbidden
	// KindShape is a Document Record Service answer that is not a non-empty list.
	KindShape
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindForbidden:
		return "forbidden"
	case KindShape:
		return "shape"
	default:
		return "upstream"
	}
}

var (
	ErrNotDraft        = errors.New("filing is not a draft")
	ErrInvalidDocument = errors.New("invalid document class or type")
	ErrUnexpectedShape = errors.New("unexpected document record service response")
)

// Error is returned by every DocumentService operation that fails.
type Error struct {
	Kind     Kind
	Op       string
	Key      string
	Messages []validation.Message
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or KindUpstream when err is not an *Error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUpstream
}

func upstream(op, key string, err error) *Error {
	return &Error{Kind: KindUpstream, Op: op, Key: key, Err: err}
}
