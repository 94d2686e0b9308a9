package errors

import (
	"strings"
	"unicode"
)

// Output formats understood by the converter.
const (
	FormatDOT  = "dot"
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

var validFormats = map[string]bool{
	FormatDOT:  true,
	FormatJSON: true,
	FormatSVG:  true,
	FormatPNG:  true,
}

// ValidateFormat checks that f names a supported output format.
func ValidateFormat(f string) error {
	if f == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !validFormats[strings.ToLower(f)] {
		return New(ErrCodeInvalidFormat, "invalid format: %s (must be 'dot', 'json', 'svg', or 'png')", f)
	}
	return nil
}

// ValidateGraphName validates a graph name template.
// An empty template is allowed and means "use the document's own ids".
//
// Validation rules:
//   - Maximum length of 256 characters
//   - No control characters (they cannot be written to DOT unescaped)
func ValidateGraphName(name string) error {
	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "graph name too long (max 256 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "graph name contains invalid control characters")
		}
	}
	return nil
}

// ValidatePath validates an input or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}
