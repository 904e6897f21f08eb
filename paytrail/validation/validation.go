// Package validation holds the fail-fast rule runner shared by all request
// models.
package validation

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"
	"github.com/ogen-go/ogen/validate"
)

// DateLayout is the Y-m-d form used by settlement and report queries.
const DateLayout = "2006-01-02"

// Validatable is implemented by every request model and nested value object.
type Validatable interface {
	Validate() error
}

// Error reports the first rule a model failed.
type Error struct {
	Field   string
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func New(field, message string) *Error {
	return &Error{Field: field, Message: message}
}

// Wrap keeps the underlying check result as the cause.
func Wrap(cause error, field, message string) *Error {
	return &Error{Field: field, Message: message, cause: cause}
}

// Rule is one check; it returns nil when satisfied.
type Rule func() error

// Run evaluates rules in order and stops at the first failure.
func Run(rules ...Rule) error {
	for _, r := range rules {
		if err := r(); err != nil {
			return err
		}
	}
	return nil
}

// Nested runs v.Validate and propagates its error unchanged.
func Nested(v Validatable) Rule {
	return func() error {
		if v == nil {
			return nil
		}
		return v.Validate()
	}
}

// Each validates every element in order.
func Each[T Validatable](items []T) Rule {
	return func() error {
		for _, item := range items {
			if err := item.Validate(); err != nil {
				return err
			}
		}
		return nil
	}
}

// Check fails with message when ok is false.
func Check(ok bool, field, message string) Rule {
	return func() error {
		if !ok {
			return New(field, message)
		}
		return nil
	}
}

func NotEmpty(v, field, message string) Rule {
	return Check(v != "", field, message)
}

func OneOf(v string, allowed []string, field, message string) Rule {
	return func() error {
		for _, a := range allowed {
			if v == a {
				return nil
			}
		}
		return New(field, message)
	}
}

// Min fails when v < min.
func Min(v, min int64, field, message string) Rule {
	return func() error {
		if err := (validate.Int{MinSet: true, Min: min}).Validate(v); err != nil {
			return Wrap(err, field, message)
		}
		return nil
	}
}

// Max fails when v > max.
func Max(v, max int64, field, message string) Rule {
	return func() error {
		if err := (validate.Int{MaxSet: true, Max: max}).Validate(v); err != nil {
			return Wrap(err, field, message)
		}
		return nil
	}
}

func MinFloat(v, min float64, field, message string) Rule {
	return func() error {
		if err := (validate.Float{MinSet: true, Min: min}).Validate(v); err != nil {
			return Wrap(err, field, message)
		}
		return nil
	}
}

// MaxLength counts runes, not bytes.
func MaxLength(v string, max int, field, message string) Rule {
	return func() error {
		if err := (validate.String{MaxLengthSet: true, MaxLength: max}).Validate(v); err != nil {
			return Wrap(err, field, message)
		}
		return nil
	}
}

var vars = validator.New()

// Email checks syntax only.
func Email(v, field, message string) Rule {
	return func() error {
		if err := vars.Var(v, "email"); err != nil {
			return Wrap(err, field, message)
		}
		return nil
	}
}

// URL requires an absolute URL with a scheme.
func URL(v, field, message string) Rule {
	return func() error {
		if err := vars.Var(v, "url"); err != nil {
			return Wrap(err, field, message)
		}
		return nil
	}
}

// Date requires v to parse with DateLayout.
func Date(v, field, message string) Rule {
	return func() error {
		if _, err := time.Parse(DateLayout, v); err != nil {
			return Wrap(err, field, message)
		}
		return nil
	}
}

// When evaluates rules only if cond holds.
func When(cond bool, rules ...Rule) Rule {
	return func() error {
		if !cond {
			return nil
		}
		return Run(rules...)
	}
}

// Lazy defers building rules until evaluated, so composite checks never see
// fields that earlier rules have not vetted.
func Lazy(build func() Rule) Rule {
	return func() error {
		return build()()
	}
}

// IsError reports whether err carries a validation failure.
func IsError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}
