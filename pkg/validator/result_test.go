package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/konform/pkg/validator"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	emp := Employee{Name: "Alice", Age: 30}
	res := validator.Success(emp)

	v, err := res.Unwrap()
	require.NoError(t, err)
	assert.Equal(t, emp, v)
	assert.Equal(t, emp, res.MustUnwrap())
	assert.Equal(t, emp, res.Source())
	assert.True(t, res.Reasons().IsEmpty())

	for range 3 {
		assert.True(t, res.WasSuccessful())
		assert.Equal(t, &emp, res.OrNil())
	}
}

func TestResult_ZeroValue(t *testing.T) {
	t.Parallel()

	var res validator.Result[Employee]

	assert.False(t, res.WasSuccessful())
	assert.Nil(t, res.OrNil())
	assert.ErrorIs(t, res.Err(), validator.ErrValidationFailed)

	v, err := res.Unwrap()
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
	assert.Equal(t, Employee{}, v)
	assert.PanicsWithValue(t, validator.ErrValidationFailed, func() { res.MustUnwrap() })
}

func TestFailure(t *testing.T) {
	t.Parallel()

	emp := Employee{Name: "Bob", Age: 5}
	reasons := validator.NewReasons(validator.Simple{Text: adultRequirement})
	res := validator.Failure(emp, reasons)

	t.Run("accessors", func(t *testing.T) {
		for range 3 {
			assert.False(t, res.WasSuccessful())
			assert.Nil(t, res.OrNil())
		}
		assert.Equal(t, emp, res.Source())
		assert.True(t, res.Reasons().Equal(reasons))
	})

	t.Run("unwrap returns validation error", func(t *testing.T) {
		v, err := res.Unwrap()
		require.Error(t, err)
		assert.Equal(t, Employee{}, v)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.True(t, validator.IsValidationError(err))

		verr := validator.ExtractValidationError(err)
		require.NotNil(t, verr)
		assert.Equal(t, emp, verr.Source)
		assert.Equal(t, "Bob failed 1 validation checks: \n- should be 18 or older", verr.Error())
		assert.Equal(t, []string{"- should be 18 or older"}, verr.Report())
	})

	t.Run("must unwrap panics with validation error", func(t *testing.T) {
		defer func() {
			r := recover()
			err, ok := r.(error)
			require.True(t, ok)
			assert.ErrorIs(t, err, validator.ErrValidationFailed)
		}()
		res.MustUnwrap()
	})

	t.Run("err is wrappable", func(t *testing.T) {
		wrapped := fmt.Errorf("create employee: %w", res.Err())
		assert.True(t, errors.Is(wrapped, validator.ErrValidationFailed))
		assert.NotNil(t, validator.ExtractValidationError(wrapped))
	})

	t.Run("reasons are frozen", func(t *testing.T) {
		got := res.Reasons()
		got.Add(validator.Simple{Text: "extra"})
		assert.Equal(t, 1, res.Reasons().Len())

		reasons.Add(validator.Simple{Text: "also extra"})
		assert.Equal(t, 1, res.Reasons().Len())
	})

	t.Run("message is stable", func(t *testing.T) {
		first := res.Err().Error()
		assert.Equal(t, first, res.Err().Error())
	})
}

func TestFailure_PanicsWithoutReasons(t *testing.T) {
	t.Parallel()
	assert.PanicsWithValue(t, validator.ErrEmptyFailure, func() {
		validator.Failure(1, validator.Reasons{})
	})
}

func TestExtractValidationError(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationError(nil))
	assert.Nil(t, validator.ExtractValidationError(errors.New("other")))
	assert.False(t, validator.IsValidationError(errors.New("other")))
	assert.False(t, validator.IsValidationError(nil))
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	company := Company{Name: "Acme", Employees: []Employee{{Name: "Alice", Age: 30}, {Name: "Bob", Age: 5}}}
	res := validator.Validate(company, func(b *validator.Builder[Company]) {
		b.Check("must be listed", false)
		validator.Each(b, "employees", employees, employeeChecks)
	})

	_, err := res.Unwrap()
	require.Error(t, err)
	assert.Equal(t,
		"Acme failed 2 validation checks: \n"+
			"- must be listed\n"+
			"- 1 members of collection 'employees' failed validation:\n"+
			"  - [0] Bob\n"+
			"    - should be 18 or older",
		err.Error())
}
