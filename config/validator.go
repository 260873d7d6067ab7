package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-theft-auto/grid"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	workbookExts = map[string]struct{}{".xlsx": {}, ".xlsm": {}}
)

// validatorInstance returns the shared validator with the grid-specific tags registered.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report YAML keys rather than Go field names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("fit_criterion", func(fl validator.FieldLevel) bool {
			_, err := grid.ParseFitCriterion(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("theme_mode", func(fl validator.FieldLevel) bool {
			_, err := grid.ParseThemeMode(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			_, err := colorful.Hex(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("workbook", func(fl validator.FieldLevel) bool {
			_, ok := workbookExts[strings.ToLower(filepath.Ext(fl.Field().String()))]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidationError names the first offending field of a document.
type ValidationError struct {
	Field string
	Tag   string
	Value any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s failed validation for tag '%s' (value %v)", grid.ErrInvalidConfig, e.Field, e.Tag, e.Value)
}

// Unwrap lets callers match grid.ErrInvalidConfig.
func (e *ValidationError) Unwrap() error { return grid.ErrInvalidConfig }

// Validate checks a document against its struct tags.
func Validate(f *File) error {
	if f == nil {
		return fmt.Errorf("%w: document is nil", grid.ErrInvalidConfig)
	}
	return convertValidationError(validatorInstance().Struct(f))
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return &ValidationError{Field: fieldPath(fe), Tag: fe.Tag(), Value: fe.Value()}
	}
	return fmt.Errorf("%w: %v", grid.ErrInvalidConfig, err)
}

// fieldPath drops the root type from the namespace: "File.palettes.dark.row" → "palettes.dark.row".
func fieldPath(fe validator.FieldError) string {
	_, rest, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return rest
}
