package dictionary

import "errors"

// Lookup error sentinels. Sources and the mapper wrap these so callers can
// classify a failure with errors.Is.
var (
	ErrTransport = errors.New("definition source unavailable")
	ErrNotFound  = errors.New("no definition found")
	ErrMapping   = errors.New("malformed definition payload")
)

// ErrorKind is the user-facing category of a failed lookup.
type ErrorKind int

const (
	NoError ErrorKind = iota
	TransportError
	NotFoundError
	MappingError
)

func (k ErrorKind) String() string {
	switch k {
	case TransportError:
		return "transport_error"
	case NotFoundError:
		return "not_found"
	case MappingError:
		return "mapping_error"
	default:
		return "none"
	}
}

// Classify maps an error onto its ErrorKind. Unknown errors count as
// transport failures.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return NoError
	case errors.Is(err, ErrNotFound):
		return NotFoundError
	case errors.Is(err, ErrMapping):
		return MappingError
	default:
		return TransportError
	}
}
