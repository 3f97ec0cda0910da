package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ValidationErrors wraps the validator's ValidationErrors
type ValidationErrors []playgroundvalidator.FieldError

// CustomValidator wraps go-playground/validator
type CustomValidator struct {
	validator *playgroundvalidator.Validate
}

var permissionTitleRe = regexp.MustCompile(`^[a-zA-Z]+-[a-z]+$`)

// NewValidator creates a new validator instance
func NewValidator() echo.Validator {
	v := playgroundvalidator.New()

	// Report json field names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("admin_status", validateAdminStatus); err != nil {
		return nil
	}
	if err := v.RegisterValidation("permission_title", validatePermissionTitle); err != nil {
		return nil
	}
	if err := v.RegisterValidation("recycle_model", validateRecycleModel); err != nil {
		return nil
	}

	return &CustomValidator{validator: v}
}

func validateAdminStatus(fl playgroundvalidator.FieldLevel) bool {
	status := fl.Field().String()
	return status == "Active" || status == "Inactive"
}

func validatePermissionTitle(fl playgroundvalidator.FieldLevel) bool {
	return permissionTitleRe.MatchString(fl.Field().String())
}

func validateRecycleModel(fl playgroundvalidator.FieldLevel) bool {
	model := fl.Field().String()
	return model == "category" || model == "folder" || model == "file" || model == "document"
}

// Validate implements echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		var validationErrors playgroundvalidator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return ValidationErrors(validationErrors)
		}
		return err
	}
	return nil
}

// Error implements the error interface for ValidationErrors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}
	var fields []string
	for _, err := range ve {
		fields = append(fields, err.Field())
	}
	return fmt.Sprintf("validation failed on fields: %s", strings.Join(fields, ", "))
}
