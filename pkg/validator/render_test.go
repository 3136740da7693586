package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/konform/pkg/validator"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("renders simple reason", func(t *testing.T) {
		lines := validator.Render(validator.NewReasons(validator.Simple{Text: "x"}))
		assert.Equal(t, []string{"- x"}, lines)
	})

	t.Run("renders group with one element", func(t *testing.T) {
		group := validator.Group{
			Name: "employees",
			Elements: []validator.Element{{
				Index:   3,
				Member:  Employee{Name: "Bob", Age: 5},
				Reasons: validator.NewReasons(validator.Simple{Text: "a"}, validator.Simple{Text: "b"}),
			}},
		}

		assert.Equal(t, []string{
			"- 1 members of collection 'employees' failed validation:",
			"  - [0] Bob",
			"    - a",
			"    - b",
		}, validator.Render(validator.NewReasons(group)))
	})

	t.Run("enumerates members positionally", func(t *testing.T) {
		reason := validator.NewReasons(validator.Simple{Text: "odd"})
		group := validator.Group{
			Name: "numbers",
			Elements: []validator.Element{
				{Index: 1, Member: 1, Reasons: reason},
				{Index: 5, Member: 5, Reasons: reason},
			},
		}

		assert.Equal(t, []string{
			"- top",
			"- 2 members of collection 'numbers' failed validation:",
			"  - [0] 1",
			"    - odd",
			"  - [1] 5",
			"    - odd",
		}, validator.Render(validator.NewReasons(validator.Simple{Text: "top"}, group)))
	})

	t.Run("renders empty set", func(t *testing.T) {
		assert.Empty(t, validator.Render(validator.Reasons{}))
		assert.Equal(t, "", validator.RenderText(validator.Reasons{}))
	})

	t.Run("joins text with line separator", func(t *testing.T) {
		text := validator.RenderText(validator.NewReasons(validator.Simple{Text: "a"}, validator.Simple{Text: "b"}))
		assert.Equal(t, "- a"+validator.LineSeparator+"- b", text)
	})
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bob", validator.Display(Employee{Name: "Bob"}))
	assert.Equal(t, "42", validator.Display(42))
	assert.Equal(t, "<nil>", validator.Display(nil))
}
