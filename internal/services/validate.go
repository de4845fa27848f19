package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"blogger/internal/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields under their JSON names, which is what clients send
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// checkStruct runs struct validation and returns the JSON names of every
// failing field, in declaration order.
func checkStruct(s any) ([]string, error) {
	err := validate.Struct(s)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}

	fields := make([]string, 0, len(verrs))
	seen := map[string]bool{}
	for _, fe := range verrs {
		if !seen[fe.Field()] {
			seen[fe.Field()] = true
			fields = append(fields, fe.Field())
		}
	}
	return fields, nil
}

// missingFieldsError is the ValidationError for a request body that lacks
// required fields. Every offending field is named, not just the first.
func missingFieldsError(fields []string) *apperr.Error {
	return apperr.Validation(
		"Missing required fields",
		fmt.Sprintf("The following fields are required: %s", strings.Join(fields, ", ")),
		fields...,
	)
}

// normalizeCategories trims names, drops blanks and keeps the first
// occurrence of each name.
func normalizeCategories(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, c := range in {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
