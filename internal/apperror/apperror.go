package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a domain error so the HTTP layer can pick a status code
// without string matching.
type Kind string

const (
	KindMissingField              Kind = "MISSING_FIELD"
	KindEmptyUpdate               Kind = "EMPTY_UPDATE"
	KindInvalidIdentifier         Kind = "INVALID_IDENTIFIER"
	KindOwnershipChangeForbidden  Kind = "OWNERSHIP_CHANGE_FORBIDDEN"
	KindForeignOwnershipViolation Kind = "FOREIGN_OWNERSHIP_VIOLATION"
	KindDuplicateName             Kind = "DUPLICATE_NAME"
	KindNotFound                  Kind = "NOT_FOUND"
	KindUnauthorized              Kind = "UNAUTHORIZED"
	KindTypeMismatch              Kind = "TYPE_MISMATCH"
	KindWhitespaceViolation       Kind = "WHITESPACE_VIOLATION"
	KindTooShort                  Kind = "TOO_SHORT"
	KindLengthOutOfRange          Kind = "LENGTH_OUT_OF_RANGE"
	KindUnclassified              Kind = "UNCLASSIFIED"
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, status int, message string) *Error {
	return &Error{Kind: kind, Status: status, Message: message}
}

func MissingField(field string) *Error {
	return New(KindMissingField, fiber.StatusBadRequest, fmt.Sprintf("Missing '%s' in request body", field))
}

func EmptyUpdate() *Error {
	return New(KindEmptyUpdate, fiber.StatusBadRequest, "Nothing to update in request body")
}

func InvalidIdentifier(field string) *Error {
	return New(KindInvalidIdentifier, fiber.StatusBadRequest, fmt.Sprintf("The `%s` is not valid", field))
}

func OwnershipChangeForbidden() *Error {
	return New(KindOwnershipChangeForbidden, fiber.StatusBadRequest, "Cannot change the owner of a resource")
}

func ForeignOwnership(resource string) *Error {
	return New(KindForeignOwnershipViolation, fiber.StatusBadRequest, fmt.Sprintf("The %s does not belong to you", resource))
}

func DuplicateName(message string) *Error {
	return New(KindDuplicateName, fiber.StatusBadRequest, message)
}

func NotFound(resource string) *Error {
	return New(KindNotFound, fiber.StatusNotFound, fmt.Sprintf("%s not found", resource))
}

func Unauthorized() *Error {
	return New(KindUnauthorized, fiber.StatusUnauthorized, "Unauthorized")
}

func TypeMismatch(field string) *Error {
	return New(KindTypeMismatch, fiber.StatusUnprocessableEntity, fmt.Sprintf("'%s' expected to be a string", field))
}

func WhitespaceViolation(field string) *Error {
	return New(KindWhitespaceViolation, fiber.StatusUnprocessableEntity, fmt.Sprintf("'%s' cannot have whitespace before or after", field))
}

func TooShort(field string, min int) *Error {
	return New(KindTooShort, fiber.StatusUnprocessableEntity, fmt.Sprintf("'%s' must be at least %d characters", field, min))
}

func LengthOutOfRange(field string, min, max int) *Error {
	return New(KindLengthOutOfRange, fiber.StatusUnprocessableEntity, fmt.Sprintf("'%s' must be between %d and %d characters", field, min, max))
}

func Unclassified() *Error {
	return New(KindUnclassified, fiber.StatusInternalServerError, "Internal Server Error")
}

// As unwraps err into an *Error if it is one.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}
