// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// structValidator implements [Validator] on top of go-playground/validator.
type structValidator struct {
	validate *validator.Validate
}

// NewValidator builds a [Validator] that reports fields by their JSON names.
func NewValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &structValidator{validate: v}
}

// Validate checks v against its struct tags. When fields are given only
// those struct fields are checked.
func (s *structValidator) Validate(ctx context.Context, v any, fields ...string) error {
	if !isStruct(v) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}

	var err error
	if len(fields) > 0 {
		if err = checkFieldsExist(v, fields); err != nil {
			return err
		}
		err = s.validate.StructPartialCtx(ctx, v, fields...)
	} else {
		err = s.validate.StructCtx(ctx, v)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	out := &FieldsError{Fields: make([]FieldError, 0, len(validationErrors))}
	for _, fe := range validationErrors {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		if fe.Param() == "1" {
			return "This field cannot be empty"
		}
		return "Value is too short, min: " + fe.Param()
	case "max":
		return "Value is too long, max: " + fe.Param()
	case "email":
		return "Value must be a valid email address"
	default:
		return "Invalid value provided"
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func isStruct(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func checkFieldsExist(v any, fields []string) error {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}
