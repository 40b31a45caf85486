package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Metadata keys shared by the simulation error constructors
const (
	MetaCategory = "category"
	MetaKind     = "kind"
	MetaID       = "id"
	MetaField    = "field"
)

// Categories distinguish the two user-facing failure classes of a run.
const (
	CategoryConfiguration     = "configuration"
	CategoryNothingToSimulate = "nothing_to_simulate"
)
