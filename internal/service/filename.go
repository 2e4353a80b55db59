package service

import (
	"fmt"
	"strings"
)

const maxFilenameLen = 255

// ValidateFilename rejects names that could address anything outside the
// document directory. Names are otherwise taken as given.
func ValidateFilename(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty", ErrInvalidFilename)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	case len(name) > maxFilenameLen:
		return fmt.Errorf("%w: longer than %d bytes", ErrInvalidFilename, maxFilenameLen)
	case strings.ContainsAny(name, "/\\\x00"):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidFilename, name)
	}
	return nil
}
