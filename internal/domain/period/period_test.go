package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		p, err := New(date(2024, time.June, 1), date(2024, time.June, 15))
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.June, 1), p.StartDate)
		assert.Equal(t, date(2024, time.June, 15), p.EndDate)
	})

	t.Run("single day range is valid", func(t *testing.T) {
		_, err := New(date(2024, time.June, 1), date(2024, time.June, 1))
		assert.NoError(t, err)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := New(date(2024, time.June, 15), date(2024, time.June, 1))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		start := time.Date(2024, time.June, 1, 23, 59, 0, 0, time.UTC)
		end := time.Date(2024, time.June, 1, 0, 1, 0, 0, time.UTC)
		_, err := New(start, end)
		assert.NoError(t, err)
	})
}

func TestFromDateSemiMonthly(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "first of month maps to first half",
			input:     date(2024, time.June, 1),
			wantStart: date(2024, time.June, 1),
			wantEnd:   date(2024, time.June, 15),
		},
		{
			name:      "fifteenth maps to first half",
			input:     date(2024, time.June, 15),
			wantStart: date(2024, time.June, 1),
			wantEnd:   date(2024, time.June, 15),
		},
		{
			name:      "sixteenth maps to second half",
			input:     date(2024, time.June, 16),
			wantStart: date(2024, time.June, 16),
			wantEnd:   date(2024, time.June, 30),
		},
		{
			name:      "thirty-first of a long month",
			input:     date(2024, time.July, 31),
			wantStart: date(2024, time.July, 16),
			wantEnd:   date(2024, time.July, 31),
		},
		{
			name:      "leap-year February second half",
			input:     date(2024, time.February, 20),
			wantStart: date(2024, time.February, 16),
			wantEnd:   date(2024, time.February, 29),
		},
		{
			name:      "non-leap February second half",
			input:     date(2023, time.February, 20),
			wantStart: date(2023, time.February, 16),
			wantEnd:   date(2023, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromDateSemiMonthly(tt.input)
			assert.Equal(t, tt.wantStart, p.StartDate)
			assert.Equal(t, tt.wantEnd, p.EndDate)
		})
	}
}

func TestHalves(t *testing.T) {
	first := FirstHalf(2024, time.June)
	assert.Equal(t, date(2024, time.June, 1), first.StartDate)
	assert.Equal(t, date(2024, time.June, 15), first.EndDate)

	second := SecondHalf(2024, time.February)
	assert.Equal(t, date(2024, time.February, 16), second.StartDate)
	assert.Equal(t, date(2024, time.February, 29), second.EndDate)
}

func TestKey(t *testing.T) {
	p := FirstHalf(2024, time.June)
	assert.Equal(t, "240601-240615", p.Key())

	q := SecondHalf(2024, time.December)
	assert.Equal(t, "241216-241231", q.Key())
}

func TestIncludes(t *testing.T) {
	p := FirstHalf(2024, time.June)

	assert.True(t, p.Includes(date(2024, time.June, 1)))
	assert.True(t, p.Includes(date(2024, time.June, 15)))
	assert.True(t, p.Includes(time.Date(2024, time.June, 15, 23, 0, 0, 0, time.UTC)))
	assert.False(t, p.Includes(date(2024, time.May, 31)))
	assert.False(t, p.Includes(date(2024, time.June, 16)))
}

func TestEqual(t *testing.T) {
	a := FirstHalf(2024, time.June)
	b, err := New(date(2024, time.June, 1), date(2024, time.June, 15))
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(SecondHalf(2024, time.June)))
}
