package validation

import (
	"strings"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_StopsAtFirstFailure(t *testing.T) {
	calls := 0
	counting := func() error { calls++; return nil }

	err := Run(counting, Check(false, "a", "first"), Check(false, "b", "second"), counting)

	require.Error(t, err)
	assert.Equal(t, "first", err.Error())
	assert.Equal(t, 1, calls)
}

func TestRun_NoRules(t *testing.T) {
	assert.NoError(t, Run())
}

func TestError_Field(t *testing.T) {
	err := Run(NotEmpty("", "stamp", "Stamp is empty"))

	var ve *Error
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "stamp", ve.Field)
	assert.Equal(t, "Stamp is empty", ve.Message)
	assert.True(t, IsError(err))
	assert.False(t, IsError(errors.New("other")))
}

func TestMinMax(t *testing.T) {
	assert.NoError(t, Max(99999999, 99999999, "unitPrice", "too big")())
	assert.EqualError(t, Max(100000000, 99999999, "unitPrice", "too big")(), "too big")
	assert.NoError(t, Min(0, 0, "units", "negative")())
	assert.EqualError(t, Min(-1, 0, "units", "negative")(), "negative")

	var ve *Error
	require.True(t, errors.As(Min(-1, 0, "units", "negative")(), &ve))
	assert.Error(t, errors.Unwrap(ve))
}

func TestMinFloat(t *testing.T) {
	assert.NoError(t, MinFloat(0, 0, "vat", "negative")())
	assert.NoError(t, MinFloat(25.5, 0, "vat", "negative")())
	assert.Error(t, MinFloat(-0.5, 0, "vat", "negative")())
}

func TestMaxLength(t *testing.T) {
	assert.NoError(t, MaxLength(strings.Repeat("a", 1000), 1000, "description", "long")())
	assert.NoError(t, MaxLength(strings.Repeat("ä", 1000), 1000, "description", "long")())
	assert.Error(t, MaxLength(strings.Repeat("a", 1001), 1000, "description", "long")())
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("test@example.com", "email", "bad")())
	assert.Error(t, Email("not-an-email", "email", "bad")())
}

func TestURL(t *testing.T) {
	assert.NoError(t, URL("https://ecom.example.com/cart/success", "success", "bad")())
	assert.Error(t, URL("ecom.example.com/cart", "success", "bad")())
	assert.Error(t, URL("not a url", "success", "bad")())
}

func TestDate(t *testing.T) {
	assert.NoError(t, Date("2022-05-30", "startDate", "bad")())
	assert.Error(t, Date("30.5.2022", "startDate", "bad")())
	assert.Error(t, Date("2022-13-01", "startDate", "bad")())
}

func TestOneOf(t *testing.T) {
	assert.NoError(t, OneOf("FI", []string{"FI", "SV", "EN"}, "language", "bad")())
	assert.Error(t, OneOf("DE", []string{"FI", "SV", "EN"}, "language", "bad")())
	assert.Error(t, OneOf("", []string{"FI"}, "language", "bad")())
}

type stub struct{ err error }

func (s stub) Validate() error { return s.err }

func TestNestedAndEach(t *testing.T) {
	failure := New("x", "nested failed")

	assert.NoError(t, Nested(nil)())
	assert.NoError(t, Nested(stub{})())
	assert.Same(t, failure, Nested(stub{err: failure})())

	assert.NoError(t, Each([]stub{{}, {}})())
	assert.Same(t, failure, Each([]stub{{}, {err: failure}, {err: New("y", "later")}})())
}

func TestWhenAndLazy(t *testing.T) {
	assert.NoError(t, When(false, Check(false, "a", "skipped"))())
	assert.Error(t, When(true, Check(false, "a", "run"))())

	built := false
	rule := Lazy(func() Rule {
		built = true
		return Check(true, "a", "ok")
	})
	assert.False(t, built)
	assert.NoError(t, rule())
	assert.True(t, built)
}
