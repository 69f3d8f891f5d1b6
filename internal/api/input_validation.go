package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var payloadValidator = newPayloadValidator()

func newPayloadValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

func parsePayload(c *fiber.Ctx, payload any) error {
	if err := c.BodyParser(payload); err != nil {
		return fmt.Errorf("malformed request body: %w", err)
	}
	return payloadValidator.Struct(payload)
}

func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return "invalid request body"
	}

	fieldError := fieldErrors[0]
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldError.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldError.Field(), fieldError.Param())
	}
	return fmt.Sprintf("%s is invalid", fieldError.Field())
}
