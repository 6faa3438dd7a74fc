package ai

import "fmt"

// ValidationError reports missing or empty caller input. Handlers map it to 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// ModelInvocationError wraps any provider-side failure (transport, auth,
// throttling, malformed provider response). Handlers map it to 502.
type ModelInvocationError struct {
	Err error
}

func (e *ModelInvocationError) Error() string {
	return fmt.Sprintf("model invocation failed: %v", e.Err)
}

func (e *ModelInvocationError) Unwrap() error { return e.Err }

// ResponseParseError means the model returned text that does not satisfy the
// expected JSON contract. Raw keeps the original output for server-side
// diagnostics; it must never be echoed to the caller.
type ResponseParseError struct {
	Raw string
	Err error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("failed to parse model response: %v", e.Err)
}

func (e *ResponseParseError) Unwrap() error { return e.Err }
