package journal

// ErrKind classifies a failed service operation.
type ErrKind int

const (
	// LoadError means the persisted document could not be read or parsed.
	LoadError ErrKind = iota + 1
	// SaveError means a background write of the document failed.
	SaveError
	// ExportError means the CSV artifact could not be written.
	ExportError
	// DeleteError means the document could not be removed. It carries
	// no message.
	DeleteError
)

func (k ErrKind) String() string {
	switch k {
	case LoadError:
		return "load error"
	case SaveError:
		return "save error"
	case ExportError:
		return "export error"
	case DeleteError:
		return "delete error"
	default:
		return "unknown error"
	}
}

// OpError is the single stored failure the presentation layer observes.
// A new failure overwrites the previous one; the service never clears
// it on its own.
type OpError struct {
	Kind    ErrKind
	Message string
}

func (e *OpError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Message
}
