package page

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// jsSpace matches the characters browsers treat as whitespace in patterns.
const jsSpace = `\t\n\v\f\r \p{Zs}\x{FEFF}\x{2028}\x{2029}`

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	emailShapePattern = regexp.MustCompile(`^[^` + jsSpace + `@]+@[^` + jsSpace + `@]+\.[^` + jsSpace + `@]+$`)
)

// rule is one ordered check for a field. The first failing rule decides the
// field's status and message.
type rule struct {
	tag     string
	status  Status
	message string
	// againstPassword compares the value with the live password instead of checking it alone.
	againstPassword bool
}

type fieldRuleSet struct {
	trim  bool
	rules []rule
}

var fieldRuleSets = [fieldCount]fieldRuleSet{
	FieldName: {
		trim: true,
		rules: []rule{
			{tag: "required", status: StatusEmpty, message: "Name is required."},
			{tag: "min_units=2", status: StatusRuleViolation, message: "Name must be at least 2 characters."},
		},
	},
	FieldEmail: {
		trim: true,
		rules: []rule{
			{tag: "required", status: StatusEmpty, message: "Email is required."},
			{tag: "email_shape", status: StatusRuleViolation, message: "Please enter a valid email address."},
		},
	},
	FieldPassword: {
		rules: []rule{
			{tag: "required", status: StatusEmpty, message: "Password is required."},
			{tag: "min_units=8", status: StatusRuleViolation, message: "Password must be at least 8 characters."},
		},
	},
	FieldConfirmPassword: {
		rules: []rule{
			{tag: "required", status: StatusEmpty, message: "Please confirm your password."},
			{tag: "eqcsfield", status: StatusRuleViolation, message: "Passwords do not match.", againstPassword: true},
		},
	},
}

// validatorInstance configures and returns the shared validator used for field rules.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("email_shape", func(fl validator.FieldLevel) bool {
			return emailShapePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("min_units", func(fl validator.FieldLevel) bool {
			limit, err := strconv.Atoi(fl.Param())
			if err != nil {
				return false
			}
			return utf16Len(fl.Field().String()) >= limit
		})

		validateInst = v
	})

	return validateInst
}

// evaluate runs the field's rules against value and returns the resulting state.
func evaluate(field Field, value, password string) (Status, string) {
	set := fieldRuleSets[field]
	v := validatorInstance()

	subject := value
	if set.trim {
		subject = strings.TrimFunc(value, isJSSpace)
	}

	for _, r := range set.rules {
		var err error
		if r.againstPassword {
			err = v.VarWithValue(subject, password, r.tag)
		} else {
			err = v.Var(subject, r.tag)
		}
		if err != nil {
			return r.status, r.message
		}
	}

	return StatusValid, ""
}

// isJSSpace reports whether browsers strip r when trimming. Unlike
// unicode.IsSpace it includes U+FEFF and excludes U+0085.
func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// utf16Len counts UTF-16 code units, the unit browsers measure lengths in.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
