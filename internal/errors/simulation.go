package errors

import (
	"errors"
)

// UnknownID reports a catalog identifier that could not be resolved.
// kind is one of "character", "light cone", "relic set" or "ornament".
func UnknownID(kind, id string) *Error {
	return InvalidArgumentf("unknown %s %q", kind, id).
		WithMeta(MetaCategory, CategoryConfiguration).
		WithMeta(MetaKind, kind).
		WithMeta(MetaID, id)
}

// Malformed reports a configuration that could not be decoded or is
// structurally invalid.
func Malformed(field string, cause error) *Error {
	err := WrapWithCode(cause, CodeInvalidArgument, "malformed configuration")
	if err == nil {
		err = InvalidArgument("malformed configuration")
	}
	return err.
		WithMeta(MetaCategory, CategoryConfiguration).
		WithMeta(MetaField, field)
}

// NothingToSimulate is returned when no slot of the party holds a character.
func NothingToSimulate() *Error {
	return FailedPrecondition("nothing to simulate: no character selected in any slot").
		WithMeta(MetaCategory, CategoryNothingToSimulate)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsConfiguration reports whether err is a bad-configuration failure.
// Validation failures count as configuration errors too.
func IsConfiguration(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsNothingToSimulate reports whether err is the empty-party failure.
func IsNothingToSimulate(err error) bool {
	if GetCode(err) != CodeFailedPrecondition {
		return false
	}
	return GetMeta(err)[MetaCategory] == CategoryNothingToSimulate
}
