package domain

// OutputFormat controls how matches are written.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatPlain writes each matching line as-is, one per line.
	OutputFormatPlain OutputFormat = "plain"

	// OutputFormatJSON writes all matches as a single JSON array.
	OutputFormatJSON OutputFormat = "json"
)

// IsValid returns true if the format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatPlain, OutputFormatJSON:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// AppSettings holds values read from the optional settings file.
type AppSettings struct {
	// Verbose enables diagnostic logging on stderr.
	Verbose bool

	// Format is the default output format.
	Format OutputFormat
}

// DefaultAppSettings returns the settings used when no file exists.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Verbose: false,
		Format:  OutputFormatPlain,
	}
}
