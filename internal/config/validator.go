package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/prismbox/internal/color"
	"github.com/alexisbeaulieu97/prismbox/internal/frame"
	"github.com/alexisbeaulieu97/prismbox/internal/grapheme"
	prismerrors "github.com/alexisbeaulieu97/prismbox/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	themeNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			return themeNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("colorspec", func(fl validator.FieldLevel) bool {
			_, err := color.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("border_style", func(fl validator.FieldLevel) bool {
			_, err := frame.LookupBorder(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("alignment", func(fl validator.FieldLevel) bool {
			_, err := grapheme.ParseAlign(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use
// outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateTheme performs schema and cross-field validation on a theme.
func ValidateTheme(theme *Theme) error {
	if theme == nil {
		return prismerrors.NewValidationError("theme", "theme is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(theme); err != nil {
		return convertValidationError(err)
	}

	fc := theme.Frame
	if fc.MinWidth > 0 && fc.MaxWidth > 0 && fc.MinWidth > fc.MaxWidth {
		return prismerrors.NewValidationError("frame.min_width", fmt.Sprintf("min_width %d exceeds max_width %d", fc.MinWidth, fc.MaxWidth), nil)
	}

	if g := theme.Gradient; g != nil {
		if g.Rainbow && len(g.Stops) > 0 {
			return prismerrors.NewValidationError("gradient.stops", "rainbow gradients take no stops", nil)
		}
		if !g.Rainbow && len(g.Stops) == 0 {
			return prismerrors.NewValidationError("gradient.stops", "gradient needs stops or rainbow: true", nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return prismerrors.NewValidationError(field, msg, err)
	}

	return prismerrors.NewValidationError("theme", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
