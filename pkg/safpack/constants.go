package safpack

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Conversion/validation completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration
	ExitInputMissing     = 11 // Input spreadsheet or directory not found
	ExitValidationFailed = 12 // Package tree failed structural validation
)

const (
	// MetadataFileName is the metadata document written into every package.
	MetadataFileName = "dublin_core.xml"

	// ManifestFileName is the per-package manifest listing copied bitstreams.
	ManifestFileName = "contents"

	// DefaultSchema is the metadata schema identifier. Columns whose base
	// form starts with DefaultSchema + "." are metadata-bearing.
	DefaultSchema = "dc"

	// DefaultLanguage is the language attribute stamped on every field node.
	DefaultLanguage = "en"

	// DefaultMaxHeaderScan bounds how many leading rows the header detector
	// inspects before falling back to row 0.
	DefaultMaxHeaderScan = 25

	// DefaultFilesDir is where bitstreams are read from.
	DefaultFilesDir = "bitstreams"

	// DefaultOutputDir is where per-record packages are written.
	DefaultOutputDir = "saf"

	// DefaultLogFileName is the process log written alongside the run.
	DefaultLogFileName = "safpack_process.log"
)

// DefaultRequiredFields are the metadata specifiers every record should
// carry. Absence is warned about, never fatal. A specifier is either a bare
// element ("title") or element.qualifier ("date.issued").
func DefaultRequiredFields() []string {
	return []string{"title", "creator", "date.issued"}
}

// DefaultAllowedExtensions is the ordered probe list used when a file token
// carries no extension. Order matters: the first existing candidate wins.
func DefaultAllowedExtensions() []string {
	return []string{
		".cr2", ".cr3", ".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png",
		".gif", ".tiff", ".mp3", ".mp4", ".wav", ".avi", ".mov", ".mpeg",
		".mpg", ".txt", ".rtf", ".xls", ".xlsx", ".zip", ".rar", ".7z",
	}
}
