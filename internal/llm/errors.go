package llm

import "fmt"

// APICallError represents a failed call to the model provider
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// EmptyResponseError is returned when the provider answers without text
type EmptyResponseError struct {
	Reason string
}

func (e *EmptyResponseError) Error() string {
	return fmt.Sprintf("empty model response: %s", e.Reason)
}
