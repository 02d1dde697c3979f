package core

// Severity classifies a console line
type Severity int8

const (
	// Plain for unlabeled output in the sink's default color
	Plain Severity = iota
	// Error for failure messages (red, "ERROR:" label)
	Error
	// Warning for warning messages (yellow, "WARNING:" label)
	Warning
	// Success for completion messages (light green, "SUCCESS:" label)
	Success
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case Plain:
		return "PLAIN"
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Success:
		return "SUCCESS"
	default:
		return "UNKNOWN"
	}
}

// LabelKey returns the translation key for the severity's uppercase
// line prefix. Plain output carries no label and returns "".
func (s Severity) LabelKey() string {
	switch s {
	case Error:
		return "_ERRORUC"
	case Warning:
		return "_WARNINGUC"
	case Success:
		return "_SUCCESSUC"
	default:
		return ""
	}
}

// Color returns the fixed display color for the severity.
func (s Severity) Color() Color {
	switch s {
	case Error:
		return ColorRed
	case Warning:
		return ColorYellow
	case Success:
		return ColorLightGreen
	default:
		return ColorDefault
	}
}

// Color identifies a text attribution color for a single append run.
// ColorDefault means "use the sink's own foreground color"; sinks
// resolve it to whatever their default actually is.
type Color int8

const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorLightGreen
)

// String returns the string representation of the color
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorYellow:
		return "yellow"
	case ColorLightGreen:
		return "lightgreen"
	default:
		return "unknown"
	}
}
