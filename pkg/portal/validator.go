package portal

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator and records the last run's field
// errors so handlers can return them as structured response data.
type Validator struct {
	engine *validator.Validate
	errors map[string]any
}

func GetDefaultValidator() *Validator {
	return MakeValidatorFrom(
		validator.New(validator.WithRequiredStructEnabled()),
	)
}

func MakeValidatorFrom(engine *validator.Validate) *Validator {
	return &Validator{
		engine: engine,
		errors: make(map[string]any),
	}
}

// Passes validates the given struct and reports whether it is valid. Field
// errors from the run are retained until the next call.
func (v *Validator) Passes(subject any) (bool, error) {
	v.errors = make(map[string]any)

	err := v.engine.Struct(subject)
	if err == nil {
		return true, nil
	}

	if fieldErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range fieldErrors {
			v.errors[fieldErr.Field()] = fieldErr.Tag()
		}
	}

	return false, err
}

// Rejects is the negated form of Passes, for guard-style call sites.
func (v *Validator) Rejects(subject any) (bool, error) {
	ok, err := v.Passes(subject)

	return !ok, err
}

func (v *Validator) GetErrors() map[string]any {
	return v.errors
}

func (v *Validator) GetErrorsAsJson() string {
	data, err := json.Marshal(v.errors)
	if err != nil {
		return "{}"
	}

	return string(data)
}
