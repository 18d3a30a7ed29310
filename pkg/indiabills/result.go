package indiabills

// Result is the normalized outcome of an upstream call. It is a tagged
// union: either Ok with Data, or an error with Status and Message.
// Callers branch on IsOk, never on exceptions, and cannot mistake an
// error payload for success data.
type Result[T any] struct {
	ok      bool
	data    T
	status  int
	message string
}

// Ok builds a success result.
func Ok[T any](data T) Result[T] {
	return Result[T]{ok: true, data: data, status: 200}
}

// Err builds a failure result with an HTTP-ish status and message.
func Err[T any](status int, message string) Result[T] {
	if status == 0 {
		status = 500
	}
	return Result[T]{ok: false, status: status, message: message}
}

// IsOk reports whether the call succeeded.
func (r Result[T]) IsOk() bool { return r.ok }

// Data returns the payload. Zero value when the result is an error.
func (r Result[T]) Data() T { return r.data }

// Status returns the upstream HTTP status, or 500 for transport errors.
func (r Result[T]) Status() int { return r.status }

// Message returns the upstream error message, empty on success.
func (r Result[T]) Message() string { return r.message }
