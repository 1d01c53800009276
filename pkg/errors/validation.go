package errors

import (
	"strings"
	"unicode"
)

// ValidateNodeID validates a node identifier read from a graph file.
// Identifiers end up in SVG element ids and log lines, so control
// characters are rejected.
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidGraph, "node ID cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidGraph, "node ID too long (max 256 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidGraph, "node ID %q contains control characters", id)
		}
	}

	return nil
}

// ValidateOutputPath validates a file path the CLI is about to write.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "path %q names a directory", path)
	}

	return nil
}
