package domain

// OutputFormat report layout.
type OutputFormat string

const (
	// OutputFormatText styled, human-oriented report.
	OutputFormatText OutputFormat = "text"
	// OutputFormatPlain unstyled label: value lines.
	OutputFormatPlain OutputFormat = "plain"
	// OutputFormatYAML yaml document.
	OutputFormatYAML OutputFormat = "yaml"
)

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// IsValid checks if the OutputFormat value is valid.
func (f OutputFormat) IsValid() bool {
	return f == OutputFormatText || f == OutputFormatPlain || f == OutputFormatYAML
}
