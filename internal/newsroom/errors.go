package newsroom

import (
	"errors"
)

// ErrorKind classifies a domain error for transport-layer mapping.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindConflict
	KindUnauthorized
)

// Machine-readable error codes surfaced to API clients.
const (
	CodeInvalidID          = "INVALID_ID"
	CodeInvalidCategoryID  = "INVALID_CATEGORY_ID"
	CodeInvalidTitle       = "INVALID_TITLE"
	CodeInvalidContent     = "INVALID_CONTENT"
	CodeInvalidAuthor      = "INVALID_AUTHOR"
	CodeInvalidPublishedAt = "INVALID_PUBLISHED_AT"

	CodeMissingTitle         = "MISSING_TITLE"
	CodeMissingContent       = "MISSING_CONTENT"
	CodeMissingCategoryID    = "MISSING_CATEGORY_ID"
	CodeMissingAuthor        = "MISSING_AUTHOR"
	CodeMissingRequiredField = "MISSING_REQUIRED_FIELD"

	CodeStoryNotFound    = "STORY_NOT_FOUND"
	CodeCategoryNotFound = "CATEGORY_NOT_FOUND"

	CodeDuplicateName  = "DUPLICATE_NAME"
	CodeDuplicateSlug  = "DUPLICATE_SLUG"
	CodeDuplicateEmail = "DUPLICATE_EMAIL"
	CodeCategoryInUse  = "CATEGORY_IN_USE"

	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnauthorized       = "UNAUTHORIZED"
)

// Error is a domain error carrying a kind for status mapping and a
// machine-readable code clients may branch on.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewValidationError(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func NewNotFoundError(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func NewConflictError(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

func NewUnauthorizedError(code, message string) *Error {
	return &Error{Kind: KindUnauthorized, Code: code, Message: message}
}

// AsError unwraps err into a domain *Error, or nil if it is not one.
func AsError(err error) *Error {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}
