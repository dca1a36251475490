package page

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/pagekit/internal/ports"
)

// Field identifies one of the form's inputs.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldPassword
	FieldConfirmPassword

	fieldCount = iota
)

// Fields lists every field in submission order.
var Fields = []Field{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword}

var fieldNames = [fieldCount]string{"name", "email", "password", "confirm_password"}

var fieldLabels = [fieldCount]string{"Name", "Email", "Password", "Confirm Password"}

func (f Field) String() string {
	if f < 0 || int(f) >= fieldCount {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldNames[f]
}

// Label returns the human readable field label.
func (f Field) Label() string {
	if f < 0 || int(f) >= fieldCount {
		return ""
	}
	return fieldLabels[f]
}

// ParseField resolves a field identifier such as "confirm_password".
func ParseField(name string) (Field, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for i, candidate := range fieldNames {
		if candidate == normalized {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Status is a field's validation state.
type Status int

const (
	// StatusPristine marks a field not validated since the form was built or cleared.
	StatusPristine Status = iota
	StatusEmpty
	StatusRuleViolation
	StatusValid
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusRuleViolation:
		return "rule_violation"
	case StatusValid:
		return "valid"
	default:
		return "pristine"
	}
}

// Border colours projected from a field's status.
const (
	BorderError   = "#e91e63"
	BorderNeutral = "#ccc"
)

// DefaultSuccessDisplay is how long the success message stays visible.
const DefaultSuccessDisplay = 5 * time.Second

// FieldState is the current value and validation outcome of one field.
type FieldState struct {
	Value   string
	Status  Status
	Message string
}

// Valid reports whether the last validation passed.
func (s FieldState) Valid() bool {
	return s.Status == StatusValid
}

// Invalid reports whether the last validation failed.
func (s FieldState) Invalid() bool {
	return s.Status == StatusEmpty || s.Status == StatusRuleViolation
}

// BorderColor returns the input border colour for the state.
func (s FieldState) BorderColor() string {
	if s.Invalid() {
		return BorderError
	}
	return BorderNeutral
}

// SubmitResult describes the outcome of a submission.
type SubmitResult struct {
	Submitted bool
	Message   string
	Invalid   []Field
}

// Form validates the four inputs and gates submission on all of them.
type Form struct {
	fields       [fieldCount]FieldState
	scheduler    ports.Scheduler
	successDelay time.Duration

	successMessage string
	successVisible bool
}

// NewForm creates an empty form.
func NewForm(scheduler ports.Scheduler, successDelay time.Duration) *Form {
	if successDelay <= 0 {
		successDelay = DefaultSuccessDisplay
	}
	return &Form{scheduler: scheduler, successDelay: successDelay}
}

// SetValue stores a value without validating it.
func (f *Form) SetValue(field Field, value string) error {
	if err := checkField(field); err != nil {
		return err
	}
	f.fields[field].Value = value
	return nil
}

// Input stores a value and validates that field only. A password change does
// not re-validate the confirmation field.
func (f *Form) Input(field Field, value string) (bool, error) {
	if err := f.SetValue(field, value); err != nil {
		return false, err
	}
	return f.Validate(field)
}

// Validate runs the field's rules against its current value and records the outcome.
func (f *Form) Validate(field Field) (bool, error) {
	if err := checkField(field); err != nil {
		return false, err
	}

	state := &f.fields[field]
	state.Status, state.Message = evaluate(field, state.Value, f.fields[FieldPassword].Value)

	return state.Valid(), nil
}

// State returns the field's current state.
func (f *Form) State(field Field) FieldState {
	if checkField(field) != nil {
		return FieldState{}
	}
	return f.fields[field]
}

// Submit validates every field in order and, when all pass, shows the success
// message, clears the form and schedules the message to hide again.
func (f *Form) Submit() SubmitResult {
	var invalid []Field
	for _, field := range Fields {
		if ok, _ := f.Validate(field); !ok {
			invalid = append(invalid, field)
		}
	}

	if len(invalid) > 0 {
		f.successVisible = false
		return SubmitResult{Invalid: invalid}
	}

	name := strings.TrimFunc(f.fields[FieldName].Value, isJSSpace)
	f.successMessage = fmt.Sprintf("✅ Thank you, %s! Form submitted successfully.", name)
	f.successVisible = true
	f.clear()

	f.scheduler.AfterFunc(f.successDelay, func() {
		f.successVisible = false
	})

	return SubmitResult{Submitted: true, Message: f.successMessage}
}

// SuccessMessage returns the success text and whether it is visible.
func (f *Form) SuccessMessage() (string, bool) {
	return f.successMessage, f.successVisible
}

func (f *Form) clear() {
	for i := range f.fields {
		f.fields[i] = FieldState{}
	}
}

func checkField(field Field) error {
	if field < 0 || int(field) >= fieldCount {
		return fmt.Errorf("%w: %d", ErrUnknownField, int(field))
	}
	return nil
}
