package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nestera/nestera-web/errors"
)

// FieldError names one failing field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldsError folds failures into one INVALID_INPUT error whose
// Details["fields"] lists them in order.
func fieldsError(fields []FieldError) *errors.AppError {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return errors.Validation(strings.Join(parts, "; ")).WithDetail("fields", fields)
}

// Params checks request parameters and collects every failure.
type Params struct {
	fields []FieldError
}

// NewParams returns an empty checker.
func NewParams() *Params {
	return &Params{}
}

// Fail records a failure for field.
func (p *Params) Fail(field, message string) *Params {
	p.fields = append(p.fields, FieldError{Field: field, Message: message})
	return p
}

// Check records message for field unless ok.
func (p *Params) Check(ok bool, field, message string) *Params {
	if !ok {
		p.Fail(field, message)
	}
	return p
}

// Int parses raw as a base-10 integer within [lo, hi] and stores it in out.
// out is left untouched on failure.
func (p *Params) Int(field, raw string, lo, hi int, out *int) *Params {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return p.Fail(field, "must be an integer")
	}
	if n < lo || n > hi {
		return p.Fail(field, fmt.Sprintf("must be between %d and %d", lo, hi))
	}
	*out = n
	return p
}

// Fields returns the failures recorded so far.
func (p *Params) Fields() []FieldError {
	return p.fields
}

// Err returns nil when every check passed, otherwise an INVALID_INPUT
// AppError.
func (p *Params) Err() *errors.AppError {
	if len(p.fields) == 0 {
		return nil
	}
	return fieldsError(p.fields)
}
