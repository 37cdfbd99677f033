package translate

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var emailShape = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(?:\.[A-Za-z0-9-]+)+$`)

// isUUIDShaped reports whether value is a string in canonical dashed
// UUID form.
func isUUIDShaped(value any) bool {
	s, ok := value.(string)
	if !ok || len(s) != 36 {
		return false
	}
	return uuid.Validate(s) == nil
}

// isEmailShaped reports whether value is a plausible email address.
// Consecutive dots disqualify a candidate even when the overall shape
// matches.
func isEmailShaped(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	if !emailShape.MatchString(s) {
		return false
	}
	return !strings.Contains(s, "..")
}

// isArrayValue reports whether value carries multiple values. Reference
// filtering rejects such inputs regardless of how the slice is typed.
func isArrayValue(value any) bool {
	switch value.(type) {
	case nil:
		return false
	case []any, []string:
		return true
	}
	kind := reflect.ValueOf(value).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}
