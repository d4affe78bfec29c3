package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = newValidator()

// newValidator reports fields under their yaml names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads, validates and maps the run file at path.
func Load(path string) (Run, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Run{}, &OpError{Op: "config.load_run", Path: path, Kind: ErrNotFound, Err: err}
	}

	return Parse(path, b)
}

// Parse is Load on an in-memory document; path only labels errors.
// Unknown keys are rejected.
func Parse(path string, data []byte) (Run, error) {
	var dto YAMLRun
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil {
		return Run{}, &OpError{Op: "config.load_run", Path: path, Kind: ErrInvalidConfig, Err: err}
	}
	if err := validate.Struct(dto); err != nil {
		return Run{}, &OpError{Op: "config.validate_run", Path: path, Kind: ErrInvalidConfig, Err: formatValidationError(err)}
	}

	return MapRun(path, dto)
}

// formatValidationError joins every field failure into one message.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.TrimPrefix(e.Namespace(), "YAMLRun.")

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	case "lt":
		return fmt.Sprintf("%s must be < %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, e.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be >= %s", field, strings.ToLower(e.Param()))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
