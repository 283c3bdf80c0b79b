package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{name: "valid date", input: "2025-03-14"},
		{name: "first of year", input: "2024-01-01"},
		{name: "end of year", input: "2024-12-31"},
		{name: "leap day in leap year", input: "2024-02-29"},
		{name: "leap day divisible by 400", input: "2000-02-29"},
		{name: "thirty day month", input: "2025-04-30"},
		{name: "leap day in common year", input: "2025-02-29", expectError: true},
		{name: "leap day century non-leap", input: "1900-02-29", expectError: true},
		{name: "day thirty one in april", input: "2025-04-31", expectError: true},
		{name: "month zero", input: "2025-00-10", expectError: true},
		{name: "month thirteen", input: "2025-13-10", expectError: true},
		{name: "day zero", input: "2025-06-00", expectError: true},
		{name: "too short", input: "2025-6-1", expectError: true},
		{name: "too long", input: "2025-06-011", expectError: true},
		{name: "wrong separators", input: "2025/06/01", expectError: true},
		{name: "letters in year", input: "20a5-06-01", expectError: true},
		{name: "letters in day", input: "2025-06-0x", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				assert.True(t, d.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, d.String())
			assert.False(t, d.IsZero())
		})
	}
}

func TestDateOrdering(t *testing.T) {
	earlier := mustDate(t, "2024-12-31")
	later := mustDate(t, "2025-01-01")

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
}

func TestDateZeroValue(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())
}
