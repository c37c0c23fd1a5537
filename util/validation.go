package util

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single violated constraint: the dotted path of the
// offending field plus a human-readable message.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationDetails flattens a binding error into per-field details.
// Non-validator errors (malformed JSON, wrong types) collapse into a single
// body-level entry so the caller still gets a 400 with an explanation.
func ValidationDetails(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Path: "body", Message: "Invalid request body"}}
	}

	details := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, FieldError{
			Path:    fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return details
}

// fieldPath derives the dotted JSON path from the validator namespace,
// e.g. "createNoteRequest.FileSize" -> "fileSize".
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = lowerFirst(p)
	}
	return strings.Join(parts, ".")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func fieldMessage(fe validator.FieldError) string {
	field := lowerFirst(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, fe.Param())
	case "datetime":
		if fe.Param() == "2006-01-02" {
			return fmt.Sprintf("%s must be in YYYY-MM-DD format", field)
		}
		return fmt.Sprintf("%s must be a valid ISO datetime", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
