package entities

import (
	"errors"
	"fmt"
)

// ErrorCode is the fixed vocabulary of structured rejections returned by the
// submission gateway.
type ErrorCode string

const (
	CodeDuplicateRequest     ErrorCode = "DUPLICATE_REQUEST"
	CodeNoItems              ErrorCode = "NO_ITEMS"
	CodeMissingStructure     ErrorCode = "MISSING_STRUCTURE"
	CodeMissingDesignation   ErrorCode = "MISSING_DESIGNATION"
	CodeIneligibleWorkType   ErrorCode = "INELIGIBLE_WORK_TYPE"
	CodeInvalidTransition    ErrorCode = "INVALID_TRANSITION"
	CodeAccessDenied         ErrorCode = "ACCESS_DENIED"
	CodeBranchAccessDenied   ErrorCode = "BRANCH_ACCESS_DENIED"
	CodeDestinationMismatch  ErrorCode = "DESTINATION_MISMATCH"
	CodeWorkOrderExists      ErrorCode = "WORK_ORDER_EXISTS"
	CodeManufacturingStarted ErrorCode = "MANUFACTURING_STARTED"
	CodeWorkTypeLocked       ErrorCode = "WORK_TYPE_LOCKED"
	CodeTakeoffNotFound      ErrorCode = "TAKEOFF_NOT_FOUND"
	CodeInvalidRequest       ErrorCode = "INVALID_REQUEST"
)

// GenericFailureMessage is shown for unknown codes and transport failures.
const GenericFailureMessage = "Something went wrong. Please try again."

var codeMessages = map[ErrorCode]string{
	CodeDuplicateRequest:     "This takeoff has already been submitted.",
	CodeNoItems:              "At least one item is required before submitting.",
	CodeMissingStructure:     "Every sign must have a structure selected before sending to the Build Shop.",
	CodeMissingDesignation:   "Every permanent sign must have a sign designation before sending to the Sign Shop.",
	CodeIneligibleWorkType:   "This work type cannot be sent to the Build Shop.",
	CodeInvalidTransition:    "This action is not allowed in the takeoff's current status.",
	CodeAccessDenied:         "You do not have permission to perform this action.",
	CodeBranchAccessDenied:   "You do not have access to this branch's takeoffs.",
	CodeDestinationMismatch:  "This takeoff is not routed to the Sign Shop.",
	CodeWorkOrderExists:      "A work order already exists for this takeoff.",
	CodeManufacturingStarted: "Manufacturing has already started; create a revision instead of reopening.",
	CodeWorkTypeLocked:       "The work type cannot be changed after the takeoff has been saved.",
	CodeTakeoffNotFound:      "Takeoff not found.",
	CodeInvalidRequest:       "The request is missing required information.",
}

// UserMessage maps a code to its user-facing message.
func UserMessage(code ErrorCode) string {
	if m, ok := codeMessages[code]; ok {
		return m
	}
	return GenericFailureMessage
}

// GatewayError is a structured rejection. WorkOrderID and WorkOrderNumber are
// set only for WORK_ORDER_EXISTS.
type GatewayError struct {
	Code            ErrorCode `json:"code"`
	Message         string    `json:"message"`
	WorkOrderID     string    `json:"work_order_id,omitempty"`
	WorkOrderNumber string    `json:"work_order_number,omitempty"`

	err error
}

func NewGatewayError(code ErrorCode, detail string) *GatewayError {
	msg := UserMessage(code)
	if detail != "" {
		msg = detail
	}
	return &GatewayError{Code: code, Message: msg}
}

// WrapGatewayError tags err with a code and keeps it reachable through errors.Is.
func WrapGatewayError(code ErrorCode, err error) *GatewayError {
	return &GatewayError{Code: code, Message: err.Error(), err: err}
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.err
}

// AsGatewayError extracts a structured rejection from err, if any.
func AsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// HasCode reports whether err is a structured rejection with the given code.
func HasCode(err error, code ErrorCode) bool {
	ge, ok := AsGatewayError(err)
	return ok && ge.Code == code
}
