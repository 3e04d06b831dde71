package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/de-mickey/lstime/internal/format"
)

var validate = newValidator()

// newValidator reports fields by their config key instead of the Go name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		return name
	})
	return v
}

// Validate checks every value set in c.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.ItemFormat != nil {
		if err := format.ValidateItemFormat(*c.ItemFormat); err != nil {
			return fmt.Errorf("%w: item_format: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("%w: invalid %s %q: must be %s",
			ErrInvalidConfig, fe.Field(), fe.Value(), formatOptions(strings.Fields(fe.Param())))
	case "max":
		return fmt.Errorf("%w: %s is longer than %s bytes", ErrInvalidConfig, fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%w: %s fails %q", ErrInvalidConfig, fe.Field(), fe.Tag())
	}
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
