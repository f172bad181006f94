package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/GlebRadaev/piggybank/internal/domain"
)

const (
	minNameLen = 2
	maxNameLen = 40

	// MaxBodyBytes bounds a JSON request body.
	MaxBodyBytes int64 = 64 << 10
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes a request body into dst, rejecting unknown fields and
// trailing data, then runs struct tag validation. At most MaxBodyBytes are
// read.
func DecodeJSON(r io.Reader, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after request body")
	}
	return Struct(dst)
}

func Struct(s any) error {
	return validate.Struct(s)
}

func Var(field any, tag string) error {
	return validate.Var(field, tag)
}

// Details flattens validator errors into field -> failed tag, the shape
// returned to clients.
func Details(err error) map[string]string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return nil
	}
	details := make(map[string]string, len(vErrs))
	for _, e := range vErrs {
		details[e.Field()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
	}
	return details
}

// Name trims an account display name and enforces its length in characters.
func Name(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	n := utf8.RuneCountInString(trimmed)
	if n < minNameLen || n > maxNameLen {
		return "", domain.ErrInvalidName
	}
	return trimmed, nil
}
