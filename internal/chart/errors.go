package chart

import "fmt"

// NotFoundError reports a chart whose backing source does not exist.
type NotFoundError struct {
	Name string // Logical chart name, empty when loaded by path
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("chart %q not found at %s: %v", e.Name, e.Path, e.Err)
	}
	return fmt.Sprintf("chart not found at %s: %v", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// FormatError reports a chart document that is malformed.
type FormatError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed chart %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed chart %s: %s", e.Path, e.Reason)
}

func (e *FormatError) Unwrap() error { return e.Err }
