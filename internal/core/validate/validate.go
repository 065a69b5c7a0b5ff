// Package validate provides the name validation used by form dialogs. Each
// routine applies its checks in order and reports the first failure.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hay-kot/criterio"
)

// Result is the outcome of a validation routine.
type Result struct {
	Valid   bool
	Message string
}

// Err returns nil for a valid result and the message as an error otherwise.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	return errors.New(r.Message)
}

func ok() Result { return Result{Valid: true} }

func fail(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...)}
}

const (
	maxFolderNameLength = 255
	minGroupNameLength  = 2
	maxGroupNameLength  = 50

	folderForbiddenChars = `\/:*?"<>|`
)

var (
	reservedFolderNames = map[string]bool{
		"CON": true, "PRN": true, "AUX": true, "NUL": true,
		"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
		"COM6": true, "COM7": true, "COM8": true, "COM9": true,
		"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
		"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
	}

	groupNamePattern = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} _.\-]*$`)
)

// FolderName validates a folder name. siblings are the names already used in
// the destination; a case-insensitive match is a conflict.
func FolderName(name string, siblings ...string) Result {
	if strings.TrimSpace(name) == "" {
		return fail("Folder name is required")
	}
	if utf8.RuneCountInString(name) > maxFolderNameLength {
		return fail("Folder name must be %d characters or fewer", maxFolderNameLength)
	}
	if strings.ContainsAny(name, folderForbiddenChars) {
		return fail("Folder name cannot contain any of the following characters: %s", spaced(folderForbiddenChars))
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return fail("Folder name cannot contain control characters")
	}
	if name == "." || name == ".." {
		return fail("Folder name cannot be %q", name)
	}
	if name != strings.TrimSpace(name) {
		return fail("Folder name cannot start or end with a space")
	}
	if strings.HasSuffix(name, ".") {
		return fail("Folder name cannot end with a period")
	}

	base, _, _ := strings.Cut(name, ".")
	if reservedFolderNames[strings.ToUpper(base)] {
		return fail("%q is a reserved name", base)
	}

	if contains(siblings, name) {
		return fail("A folder named %q already exists", name)
	}
	return ok()
}

// GroupName validates a group name against the names of existing groups.
func GroupName(name string, existing ...string) Result {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fail("Group name is required")
	}

	n := utf8.RuneCountInString(trimmed)
	if n < minGroupNameLength {
		return fail("Group name must be at least %d characters", minGroupNameLength)
	}
	if n > maxGroupNameLength {
		return fail("Group name must be %d characters or fewer", maxGroupNameLength)
	}
	if !groupNamePattern.MatchString(trimmed) {
		return fail("Group name must start with a letter or number and contain only letters, numbers, spaces, hyphens, underscores, and periods")
	}
	if strings.Contains(trimmed, "  ") {
		return fail("Group name cannot contain consecutive spaces")
	}
	if contains(existing, trimmed) {
		return fail("A group named %q already exists", trimmed)
	}
	return ok()
}

// FolderNameField returns a criterio validator for folder names.
func FolderNameField(field, name string, siblings ...string) error {
	return criterio.Run(field, name, func(v string) error {
		return FolderName(v, siblings...).Err()
	})
}

// GroupNameField returns a criterio validator for group names.
func GroupNameField(field, name string, existing ...string) error {
	return criterio.Run(field, name, func(v string) error {
		return GroupName(v, existing...).Err()
	})
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), name) {
			return true
		}
	}
	return false
}

func spaced(chars string) string {
	parts := make([]string, 0, len(chars))
	for _, r := range chars {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, " ")
}
