package resources

import "fmt"

// ErrorKind classifies why a resource could not be acquired, so callers can
// decide whether a transport problem should be fatal while a plain missing
// asset degrades to a placeholder.
type ErrorKind int

const (
	ErrNotFound  ErrorKind = iota // asset does not exist (missing file, 404)
	ErrTransport                  // network or I/O failure reaching the asset
	ErrMalformed                  // URI itself cannot be interpreted
)

func (k ErrorKind) String() string {
	switch k {
	case ErrTransport:
		return "transport"
	case ErrMalformed:
		return "malformed"
	default:
		return "not-found"
	}
}

// FetchError is the classified acquisition failure retained on a Resource.
type FetchError struct {
	Kind ErrorKind
	URI  string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("resource %q: %s: %v", e.URI, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
