package sandbox

import (
	"path/filepath"
	"strings"

	"github.com/computerscienceiscool/scriptkit/internal/errors"
)

// allowedExtensions is the fixed allow-list for guarded file operations.
// Declaration order is kept for error messages.
var allowedExtensions = []string{".txt", ".json", ".rtf"}

// AllowedExtensions returns a copy of the extension allow-list.
func AllowedExtensions() []string {
	return append([]string(nil), allowedExtensions...)
}

// Ext returns the lowercased extension of filePath. A dot in the first
// position of the base name does not start an extension, so ".txt" and
// ".env" have none while "..txt" has ".txt".
func Ext(filePath string) string {
	base := filepath.Base(filePath)
	if base == "." || base == ".." {
		return ""
	}
	lastDot := strings.LastIndex(base, ".")
	if lastDot <= 0 {
		return ""
	}
	return strings.ToLower(base[lastDot:])
}

// ValidateExtension checks that filePath has an allowed extension. It never
// touches the file system.
func ValidateExtension(filePath string) error {
	ext := Ext(filePath)
	for _, allowedExt := range allowedExtensions {
		if allowedExt == ext {
			return nil
		}
	}

	return &errors.ExtensionError{
		Path:    filePath,
		Ext:     ext,
		Allowed: AllowedExtensions(),
	}
}
