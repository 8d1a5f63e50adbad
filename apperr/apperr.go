// Package apperr is the error taxonomy shared by the store, the gateway
// and the HTTP layer. Every failed mutation surfaces as an *Error that
// carries what an admin needs to see: title, message and optional detail.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation Kind = "validation"
	KindNetwork    Kind = "network"
	KindDomain     Kind = "domain"
	KindAuth       Kind = "auth"
	KindNotFound   Kind = "not_found"
	KindStorage    Kind = "storage"
)

var (
	ErrDuplicateName  = errors.New("an item with this name already exists")
	ErrFoodReferenced = errors.New("food item is referenced by an existing order")
	ErrOrderLocked    = errors.New("order can no longer be edited")
	ErrNotFound       = errors.New("record not found")
	ErrNotSupported   = errors.New("operation not supported by the remote API")
	ErrPaymentNotPaid = errors.New("payment has not been completed")
)

type Error struct {
	Kind    Kind              `json:"kind"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
	Detail  string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Err     error             `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps the error kind to an HTTP status code
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindDomain:
		return http.StatusConflict
	case KindNetwork:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func Validation(title string, fields map[string]string) *Error {
	return &Error{
		Kind:    KindValidation,
		Title:   title,
		Message: "Please correct the highlighted fields.",
		Fields:  fields,
	}
}

// Network wraps a transport or non-2xx failure. The underlying error text
// becomes the technical detail.
func Network(title, message string, err error) *Error {
	e := &Error{Kind: KindNetwork, Title: title, Message: message, Err: err}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

func Domain(title, message string, err error) *Error {
	e := &Error{Kind: KindDomain, Title: title, Message: message, Err: err}
	if err != nil {
		e.Detail = err.Error()
	}
	return e
}

func Auth(title, message string, err error) *Error {
	return &Error{Kind: KindAuth, Title: title, Message: message, Err: err}
}

// Storage wraps a failure of local persistence
func Storage(title string, err error) *Error {
	return &Error{
		Kind:    KindStorage,
		Title:   title,
		Message: "Your change could not be saved. Please try again.",
		Detail:  err.Error(),
		Err:     err,
	}
}

func NotFound(what, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Title:   what + " Not Found",
		Message: fmt.Sprintf("%s %q does not exist.", what, id),
		Err:     ErrNotFound,
	}
}

// As extracts an *Error from err, wrapping unknown errors as internal
func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: "internal", Title: "Unexpected Error", Message: "Something went wrong. Please try again later.", Detail: err.Error(), Err: err}
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
