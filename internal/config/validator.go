package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/iw2rmb/numspin/format"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the profile tags
// registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
			_, err := language.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("notation", func(fl validator.FieldLevel) bool {
			_, ok := format.ParseNotation(fl.Field().String())
			return ok
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks f against its struct tags.
func Validate(f *File) error {
	return validatorInstance().Struct(f)
}

// convertValidationError names the first failing field by its yaml path.
func convertValidationError(path string, err error) error {
	if err == nil {
		return nil
	}
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		return &Error{
			Path:  path,
			Field: yamlishFieldName(fe),
			Err:   fmt.Errorf("failed validation for tag '%s'", fe.Tag()),
		}
	}
	return &Error{Path: path, Err: err}
}

// yamlishFieldName turns File.Widgets[0].AnyDecimal into
// widgets[0].any_decimal.
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
				sb.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
