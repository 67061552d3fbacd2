package waypoint

import "errors"

// A Code classifies the outcome of an operation into one of a small set of
// canonical categories shared across waypoint packages.
type Code int

const (
	CodeOK Code = iota
	CodeCancelled
	CodeUnknown
	CodeInvalidArgument
	CodeDeadlineExceeded
	CodeNotFound
	CodeAlreadyExists
	CodePermissionDenied
	CodeResourceExhausted
	CodeFailedPrecondition
	CodeAborted
	CodeOutOfRange
	CodeUnimplemented
	CodeInternal
	CodeUnavailable
	CodeDataLoss
)

func (c Code) String() string {
	return map[Code]string{
		CodeOK:                 "OK",
		CodeCancelled:          "CANCELLED",
		CodeUnknown:            "UNKNOWN",
		CodeInvalidArgument:    "INVALID_ARGUMENT",
		CodeDeadlineExceeded:   "DEADLINE_EXCEEDED",
		CodeNotFound:           "NOT_FOUND",
		CodeAlreadyExists:      "ALREADY_EXISTS",
		CodePermissionDenied:   "PERMISSION_DENIED",
		CodeResourceExhausted:  "RESOURCE_EXHAUSTED",
		CodeFailedPrecondition: "FAILED_PRECONDITION",
		CodeAborted:            "ABORTED",
		CodeOutOfRange:         "OUT_OF_RANGE",
		CodeUnimplemented:      "UNIMPLEMENTED",
		CodeInternal:           "INTERNAL",
		CodeUnavailable:        "UNAVAILABLE",
		CodeDataLoss:           "DATA_LOSS",
	}[c]
}

func (c Code) Valid() error {
	if c < CodeOK || c > CodeDataLoss {
		return ErrNotValid
	}

	return nil
}

// A Status is an error carrying a canonical Code alongside its message.
//
// A nil *Status is the OK outcome; constructors for failure codes never
// return nil. Two Statuses match under [errors.Is] when their Codes match,
// so callers can branch on the category without matching message text.
type Status struct {
	code Code
	msg  string
}

// NewStatus constructs a *Status from the provided Code and message.
func NewStatus(code Code, msg string) *Status { return &Status{code: code, msg: msg} }

func (s *Status) Code() Code { return s.code }

func (s *Status) Message() string { return s.msg }

// Error implements the error interface.
func (s *Status) Error() string {
	if s.msg == "" {
		return s.code.String()
	}

	return s.code.String() + ": " + s.msg
}

// Is matches target when it is a *Status with the same Code.
//
// Is implements the interface [errors.Is] consults.
func (s *Status) Is(target error) bool {
	var other *Status
	if !errors.As(target, &other) {
		return false
	}

	return other.code == s.code
}

// StatusCode pulls the canonical Code out of err.
// A nil err is CodeOK; an err that is not a *Status is CodeUnknown.
func StatusCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var s *Status
	if !errors.As(err, &s) {
		return CodeUnknown
	}

	return s.code
}

// Aborted constructs a *Status with CodeAborted.
func Aborted(msg string) *Status { return NewStatus(CodeAborted, msg) }

// Cancelled constructs a *Status with CodeCancelled.
func Cancelled(msg string) *Status { return NewStatus(CodeCancelled, msg) }

// DataLoss constructs a *Status with CodeDataLoss.
func DataLoss(msg string) *Status { return NewStatus(CodeDataLoss, msg) }

// DeadlineExceeded constructs a *Status with CodeDeadlineExceeded.
func DeadlineExceeded(msg string) *Status { return NewStatus(CodeDeadlineExceeded, msg) }

// FailedPrecondition constructs a *Status with CodeFailedPrecondition.
func FailedPrecondition(msg string) *Status { return NewStatus(CodeFailedPrecondition, msg) }

// Internal constructs a *Status with CodeInternal.
func Internal(msg string) *Status { return NewStatus(CodeInternal, msg) }

// InvalidArgument constructs a *Status with CodeInvalidArgument.
func InvalidArgument(msg string) *Status { return NewStatus(CodeInvalidArgument, msg) }

// NotFound constructs a *Status with CodeNotFound.
func NotFound(msg string) *Status { return NewStatus(CodeNotFound, msg) }

// OutOfRange constructs a *Status with CodeOutOfRange.
func OutOfRange(msg string) *Status { return NewStatus(CodeOutOfRange, msg) }

// PermissionDenied constructs a *Status with CodePermissionDenied.
func PermissionDenied(msg string) *Status { return NewStatus(CodePermissionDenied, msg) }

// ResourceExhausted constructs a *Status with CodeResourceExhausted.
func ResourceExhausted(msg string) *Status { return NewStatus(CodeResourceExhausted, msg) }

// Unavailable constructs a *Status with CodeUnavailable.
func Unavailable(msg string) *Status { return NewStatus(CodeUnavailable, msg) }

// Unimplemented constructs a *Status with CodeUnimplemented.
func Unimplemented(msg string) *Status { return NewStatus(CodeUnimplemented, msg) }

// Unknown constructs a *Status with CodeUnknown.
func Unknown(msg string) *Status { return NewStatus(CodeUnknown, msg) }
