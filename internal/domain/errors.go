package domain

import "fmt"

// ConfigError reports a missing or invalid configuration value.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// TransportError reports a failed schema fetch: a network failure, a non-200
// status or a response that is not JSON.
type TransportError struct {
	URL         string
	StatusCode  int
	ContentType string
	Err         error
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
	case e.StatusCode != 200:
		return fmt.Sprintf("request to %s failed with status code %d", e.URL, e.StatusCode)
	default:
		return fmt.Sprintf("invalid content-type from %s: expected application/json but got %q", e.URL, e.ContentType)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports a document that is not valid JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse swagger document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
