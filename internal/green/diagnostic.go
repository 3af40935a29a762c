package green

import "fmt"

// Severity is the level of a Diagnostic.
type Severity uint8

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return fmt.Sprintf("Severity(%d)", uint8(s))
	}
}

// Diagnostic is an out-of-band report attached to a byte range. It never
// participates in tree identity: two structurally identical nodes that
// differ only in attached diagnostics still intern to the same handle.
type Diagnostic struct {
	Code     uint16
	Severity Severity
	Offset   uint32
	Length   uint32
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("PDF%04d: %s", d.Code, d.Message)
}
