package service

import "fmt"

// UpstreamError carries the normalized status/message of a failed
// upstream call across the service boundary.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error %d: %s", e.Status, e.Message)
}

func errUpstream(status int, message string) error {
	return &UpstreamError{Status: status, Message: message}
}
