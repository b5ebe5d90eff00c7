package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeUnknown     = "UNKNOWN_ERROR"
	CodeNetwork     = "NETWORK_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeUnsupported = "UNSUPPORTED_IN_MOCK"
	CodeInvalid     = "INVALID_ARGUMENT"

	networkFallbackMessage = "check your network connection"
)

// Kind classifies every failure the query layer can produce.
type Kind int

const (
	// KindNetwork means no response was ever received.
	KindNetwork Kind = iota + 1
	// KindResponse is a failure signalled by a remote server.
	KindResponse
	// KindNotFound is an id lookup miss.
	KindNotFound
	// KindUnsupported is an operation the in-memory repository refuses.
	KindUnsupported
	// KindInvalid is a request rejected before reaching any data source.
	KindInvalid
)

var kindNames = map[Kind]string{
	KindNetwork:     "network",
	KindResponse:    "response",
	KindNotFound:    "not_found",
	KindUnsupported: "unsupported",
	KindInvalid:     "invalid",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error is the single error shape crossing the request/transport boundary.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	Details interface{}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (status %d): %s", e.Code, e.Status, e.Message)
}

// Body is the wire representation written by servers and parsed by clients.
type Body struct {
	Code    string      `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func (e *Error) Body() Body {
	return Body{Code: e.Code, Message: e.Message, Details: e.Details}
}

// HTTPStatus is the status a server should answer with for this error.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNetwork:
		return http.StatusBadGateway
	case KindResponse:
		if e.Status >= http.StatusBadRequest {
			return e.Status
		}
		return http.StatusBadGateway
	case KindNotFound:
		return http.StatusNotFound
	case KindUnsupported:
		return http.StatusNotImplemented
	case KindInvalid:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Network wraps a transport failure. An *Error passes through unchanged.
func Network(cause error) error {
	if e, ok := As(cause); ok {
		return e
	}

	msg := networkFallbackMessage
	if cause != nil && cause.Error() != "" {
		msg = cause.Error()
	}
	return &Error{
		Kind:    KindNetwork,
		Status:  0,
		Code:    CodeNetwork,
		Message: msg,
	}
}

// FromResponse builds an error from a non-success response and its decoded body.
func FromResponse(status int, statusText string, body Body) *Error {
	code := body.Code
	if code == "" {
		code = CodeUnknown
	}
	msg := body.Message
	if msg == "" {
		msg = fmt.Sprintf("HTTP %d: %s", status, statusText)
	}
	return &Error{
		Kind:    KindResponse,
		Status:  status,
		Code:    code,
		Message: msg,
		Details: body.Details,
	}
}

// NotFound reports that no record of the given resource has the id.
func NotFound(resource, id string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("could not find %s with id %q", resource, id),
	}
}

// Unsupported reports an operation the in-memory repository does not provide.
func Unsupported(op, resource string) *Error {
	return &Error{
		Kind:    KindUnsupported,
		Status:  http.StatusNotImplemented,
		Code:    CodeUnsupported,
		Message: fmt.Sprintf("%s %s is not supported in mock mode", op, resource),
	}
}

// Invalid reports a request rejected by local validation.
func Invalid(msg string, details interface{}) *Error {
	return &Error{
		Kind:    KindInvalid,
		Status:  http.StatusBadRequest,
		Code:    CodeInvalid,
		Message: msg,
		Details: details,
	}
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err carries an *Error of kind k.
func IsKind(err error, k Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == k
}
