package exceptions

import (
	"fmt"
	"nutrivida-service/internal/pkg/constvars"
	"runtime"
)

// Kind groups errors into the taxonomy the delivery layer and clients act on.
type Kind string

const (
	KindValidation       Kind = "validation"
	KindPersistence      Kind = "persistence"
	KindNotFound         Kind = "not_found"
	KindUnauthenticated  Kind = "unauthenticated"
	KindAlreadyCompleted Kind = "already_completed"
	KindInternal         Kind = "internal"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	Kind          Kind     `json:"kind,omitempty"`
	Retryable     bool     `json:"retryable,omitempty"`
	RedirectTo    string   `json:"redirect_to,omitempty"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Kind:          KindInternal,
		Location:      getLocation(2),
	}
}

func WrapWithError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    fmt.Sprintf("%s: %s", devMessage, err.Error()),
		Kind:          KindInternal,
		Location:      getLocation(2),
	}
}

// BuildNewCustomError is the constructor every error case in types.go goes
// through; err may be nil for guard-style failures.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	devDetail := devMessage
	if err != nil {
		devDetail = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devDetail,
		Kind:          KindInternal,
		Location:      getLocation(3),
	}
}

// WithKind tags the error taxonomy; returns the receiver for chaining inside
// the constructors in types.go.
func (e *CustomError) WithKind(kind Kind) *CustomError {
	e.Kind = kind
	return e
}

func (e *CustomError) AsRetryable() *CustomError {
	e.Retryable = true
	return e
}

func (e *CustomError) WithRedirect(path string) *CustomError {
	e.RedirectTo = path
	return e
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
