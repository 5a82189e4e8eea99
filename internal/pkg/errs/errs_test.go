package errs_test

import (
	"errors"
	"testing"

	"food/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderID", "5c57359b-19f6-4205-bd01-5a92b7b0b647")

		assert.Equal(t, "orderID", err.ParamName)
		assert.Equal(t, "5c57359b-19f6-4205-bd01-5a92b7b0b647", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 5c57359b-19f6-4205-bd01-5a92b7b0b647", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("productID", "42", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: productID, ID is: 42 (cause: record not found)",
			err.Error())
	})

	t.Run("classified with errors.Is", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("categoryID", "42")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New(`"COOKING" is not a valid status`)
		err := errs.NewValueIsInvalidErrorWithCause("status is invalid", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, `value is invalid: status is invalid (cause: "COOKING" is not a valid status)`, err.Error())
	})

	t.Run("classified with errors.Is", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("amount is invalid")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("size", 500, 1, 100)

		assert.Equal(t, "size", err.ParamName)
		assert.Equal(t, 500, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 500 is size, min value is 1, max value is 100", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("negative page")
		err := errs.NewValueIsOutOfRangeErrorWithCause("page", -1, 0, nil, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "(cause: negative page)")
	})

	t.Run("multi-line values are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("title", "first\nsecond", 0, 10)
		assert.Contains(t, err.Error(), "first second")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("classified with errors.Is", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("size", 0, 1, 100)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.NotErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerTaxID")

		assert.Equal(t, "customerTaxID", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: customerTaxID", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("nil uuid")
		err := errs.NewValueIsRequiredErrorWithCause("orderID", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: orderID (cause: nil uuid)", err.Error())
	})

	t.Run("classified with errors.Is", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("title")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}
