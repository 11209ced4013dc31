package failure

import (
	"errors"
	"net/http"
)

// Kinds give API clients a stable value to branch on, independent of the
// human-readable message.
const (
	KindValidation        = "validation"
	KindNotFound          = "not_found"
	KindNameFloorConflict = "name_floor_conflict"
	KindRoomUnavailable   = "room_unavailable"
	KindScheduleRule      = "schedule_rule"
	KindCapacityExceeded  = "capacity_exceeded"
	KindScheduleConflict  = "schedule_conflict"
	KindInternal          = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid limit parameter"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: msg,
	}
}

// Conflict returns a new Failure with code for conflicting resource state.
func Conflict(kind, msg string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    kind,
		Message: msg,
	}
}

// BusinessRule returns a new Failure for a violated business rule. The kind
// identifies the rule family, the message names the specific rule.
func BusinessRule(kind, msg string) error {
	return &Failure{
		Code:    http.StatusUnprocessableEntity,
		Kind:    kind,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the HTTP status code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface, or KindInternal
// for errors that are not Failures.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}
