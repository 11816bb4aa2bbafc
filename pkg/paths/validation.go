package paths

import (
	"strings"

	"github.com/arthur-debert/bmad-swarm/pkg/errors"
)

// ValidateName ensures an agent or plugin name is usable as a file stem.
// Names must not be empty, must not contain path separators or control
// characters, and must not be "." or "..".
func ValidateName(name string) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return errors.Newf(errors.ErrInvalidInput, "name %q cannot contain path separators", name)
	}

	if name == "." || name == ".." {
		return errors.New(errors.ErrInvalidInput, "name cannot be '.' or '..'")
	}

	invalidChars := ":*?\"<>|"
	if strings.ContainsAny(name, invalidChars) {
		return errors.Newf(errors.ErrInvalidInput,
			"name %q contains invalid characters: %s", name, invalidChars)
	}

	for _, r := range name {
		if r < 32 {
			return errors.New(errors.ErrInvalidInput, "name contains control characters")
		}
	}

	return nil
}
