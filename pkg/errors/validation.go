package errors

import (
	"strings"
	"unicode"
)

// ValidateSource validates a dataset source: a local path, "-" for stdin, or
// an http(s) URL.
//
// The rules are intentionally conservative:
//   - No empty sources
//   - No control characters or null bytes
//   - Maximum length of 2048 characters
//   - URLs must use http or https
func ValidateSource(src string) error {
	if src == "" {
		return New(ErrCodeInvalidSource, "source cannot be empty")
	}

	const maxSourceLength = 2048
	if len(src) > maxSourceLength {
		return New(ErrCodeInvalidSource, "source too long (max %d characters)", maxSourceLength)
	}

	for _, r := range src {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidSource, "source contains invalid control characters")
		}
	}

	if strings.Contains(src, "://") {
		return ValidateURL(src)
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
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidSource, "URL must use http or https scheme")
	}

	return nil
}
