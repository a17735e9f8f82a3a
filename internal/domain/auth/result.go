package auth

// Result holds exactly one of a DomainError failure or a success value.
// The zero value is a success carrying the zero value of S; use Ok and
// Fail to construct meaningful results.
type Result[S any] struct {
	failure DomainError
	success S
}

// Ok wraps a success value.
func Ok[S any](value S) Result[S] {
	return Result[S]{success: value}
}

// Fail wraps a domain failure.
func Fail[S any](err DomainError) Result[S] {
	return Result[S]{failure: err}
}

// IsFailure reports whether the result carries a failure.
func (r Result[S]) IsFailure() bool {
	return r.failure != nil
}

// IsSuccess reports whether the result carries a success value.
func (r Result[S]) IsSuccess() bool {
	return r.failure == nil
}

// Err returns the failure, or nil for a success.
func (r Result[S]) Err() DomainError {
	return r.failure
}

// Value returns the success value, or the zero value of S for a failure.
func (r Result[S]) Value() S {
	return r.success
}
