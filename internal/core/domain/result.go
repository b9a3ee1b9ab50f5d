package domain

// ResultState tags the outcome of a lookup for a resource that may legitimately not exist yet.
type ResultState int

const (
	StateError ResultState = iota
	StateFound
	StateNotFound
)

func (s ResultState) String() string {
	switch s {
	case StateFound:
		return "found"
	case StateNotFound:
		return "not_found"
	default:
		return "error"
	}
}

// Result is Found(T) | NotFound | Error(E) for optional one-to-one resources.
type Result[T any] struct {
	state ResultState
	value T
	err   error
}

func Found[T any](v T) Result[T] {
	return Result[T]{state: StateFound, value: v}
}

func NotFound[T any]() Result[T] {
	return Result[T]{state: StateNotFound}
}

func Failed[T any](err error) Result[T] {
	return Result[T]{state: StateError, err: err}
}

func (r Result[T]) State() ResultState { return r.state }
func (r Result[T]) IsFound() bool      { return r.state == StateFound }
func (r Result[T]) IsNotFound() bool   { return r.state == StateNotFound }
func (r Result[T]) Err() error         { return r.err }

// Get returns the value and whether it was found.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.state == StateFound
}

// Ptr returns a pointer to the value, or nil unless found. Used where JSON output
// needs the API's "null when absent" shape.
func (r Result[T]) Ptr() *T {
	if r.state != StateFound {
		return nil
	}
	v := r.value
	return &v
}
