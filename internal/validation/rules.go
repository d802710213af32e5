// Package validation provides custom validation rules built on jellydator/validation.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	validation "github.com/jellydator/validation"
)

var (
	// emailRegex accepts local@domain.tld with no whitespace anywhere.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// TrimmedLength checks the rune count of a string after surrounding
// whitespace is removed. Max of zero means unbounded.
type TrimmedLength struct {
	Min int
	Max int
}

// Validate implements validation.Rule.
func (r TrimmedLength) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_trimmed_length_type", "must be a string")
	}

	n := utf8.RuneCountInString(strings.TrimSpace(s))
	if n < r.Min {
		return validation.NewError(
			"validation_trimmed_length_min",
			fmt.Sprintf("must be at least %d characters", r.Min),
		)
	}
	if r.Max > 0 && n > r.Max {
		return validation.NewError(
			"validation_trimmed_length_max",
			fmt.Sprintf("must be at most %d characters", r.Max),
		)
	}
	return nil
}

// Email validates email format using regex
var Email = validation.NewStringRuleWithError(
	func(s string) bool {
		return emailRegex.MatchString(s)
	},
	validation.NewError("validation_email_format", "must be a valid email address"),
)
