package exchange

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport wraps connection and timeout failures reported by the transport.
	ErrTransport = errors.New("transport error")
	// ErrUpstream is the kind of every non-2xx exchange response.
	ErrUpstream = errors.New("upstream error")
	// ErrMalformedResponse means a 2xx body lacked the fields the decoder needs.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrValidation is returned before any request is sent.
	ErrValidation = errors.New("validation error")
	// ErrUnsupportedOperation is returned by drivers outside their capability set.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrConfiguration covers unknown driver names and missing credentials.
	ErrConfiguration = errors.New("configuration error")
	// ErrUnknownExchange is the configuration error for names outside Names.
	ErrUnknownExchange = fmt.Errorf("%w: unknown exchange", ErrConfiguration)
)

// UpstreamError carries the message an exchange returned with a non-2xx status.
// Message is the raw body when the exchange did not send a message field.
type UpstreamError struct {
	Exchange   Name
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Exchange, e.StatusCode, e.Message)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedResponse, fmt.Sprintf(format, args...))
}

func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Misconfigured(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// Unsupported reports that the named driver does not implement op.
func Unsupported(name Name, op Operation) error {
	return fmt.Errorf("%w: %s does not implement %s", ErrUnsupportedOperation, name, op)
}
