package playground

import (
	"time"

	validator "github.com/go-playground/validator/v10"
)

// Kind names one of the exercises
type Kind string

// Exercise kinds
const (
	KindCounter  Kind = "counter"
	KindMultiply Kind = "multiply"
	KindTotal    Kind = "total"
	KindUser     Kind = "user"
	KindColor    Kind = "color"
	KindLives    Kind = "lives"
	KindMessages Kind = "messages"
	KindPocket   Kind = "pocket"
)

// MaxStart bounds the start value of counter, lives and pocket
const MaxStart = 1_000_000_000

// CreateRequest describes a new handle. Only the fields the kind uses are
// read: Start for counter, lives and pocket; Factor for multiply; Amount
// for total; Red, Green and Blue for color.
type CreateRequest struct {
	Kind   Kind    `json:"kind" validate:"required,oneof=counter multiply total user color lives messages pocket"`
	Start  int     `json:"start" validate:"min=-1000000000,max=1000000000"`
	Factor float64 `json:"factor"`
	Amount float64 `json:"amount"`
	Red    int     `json:"red"`
	Green  int     `json:"green"`
	Blue   int     `json:"blue"`
}

// Validate checks the request fields
func (r *CreateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// InvokeRequest carries the optional argument of an operation
type InvokeRequest struct {
	Number *float64 `json:"number,omitempty"`
	Text   *string  `json:"text,omitempty"`
}

// Snapshot is the readable state of a handle
type Snapshot struct {
	ID         string         `json:"id"`
	Kind       Kind           `json:"kind"`
	State      map[string]any `json:"state"`
	CreatedAt  time.Time      `json:"created_at"`
	LastUsedAt time.Time      `json:"last_used_at"`
}

// InvokeResult is the outcome of one operation. Rejected is set when a
// guard turned the operation into a no-op.
type InvokeResult struct {
	Operation string   `json:"operation"`
	Result    any      `json:"result"`
	Rejected  bool     `json:"rejected"`
	Handle    Snapshot `json:"handle"`
}

// KindInfo lists what a kind supports
type KindInfo struct {
	Kind       Kind     `json:"kind"`
	Create     []string `json:"create"`
	Operations []string `json:"operations"`
}

// Domain errors for the playground with appropriate HTTP status codes
var (
	ErrHandleNotFound   = NewPlaygroundErrorWithCode("handle not found", 404)
	ErrUnknownKind      = NewPlaygroundErrorWithCode("unknown exercise kind", 400)
	ErrUnknownOperation = NewPlaygroundErrorWithCode("unknown operation", 400)
	ErrMissingArgument  = NewPlaygroundErrorWithCode("missing argument", 400)
	ErrInvalidArgument  = NewPlaygroundErrorWithCode("invalid argument", 400)
	ErrInvalidRequest   = NewPlaygroundErrorWithCode("invalid request", 400)
	ErrLimitReached     = NewPlaygroundErrorWithCode("handle limit reached", 429)
)

// PlaygroundError represents a playground error with HTTP status code
type PlaygroundError struct {
	Message string
	Code    int // HTTP status code
}

func (e *PlaygroundError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for this error
func (e *PlaygroundError) StatusCode() int {
	return e.Code
}

// NewPlaygroundErrorWithCode creates a new playground error with a specific HTTP status code
func NewPlaygroundErrorWithCode(message string, code int) *PlaygroundError {
	return &PlaygroundError{Message: message, Code: code}
}
