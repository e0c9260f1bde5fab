package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"08:30", 510},
		{"12:05", 725},
		{"18:00", 1080},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ToMinutes(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestToMinutesRejectsMalformedInput(t *testing.T) {
	bad := []string{"", "9:00", "09-00", "ab:cd", "24:00", "09:60", "09:0", "099:0"}
	for _, in := range bad {
		_, err := ToMinutes(in)
		assert.ErrorIs(t, err, ErrBadTimeFormat, in)
	}
}

func TestFormatMinutesZeroPads(t *testing.T) {
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "08:05", FormatMinutes(485))
	assert.Equal(t, "18:00", FormatMinutes(1080))
}

func TestFormatIsInverseOfParse(t *testing.T) {
	for m := 0; m < 24*60; m += 7 {
		got, err := ToMinutes(FormatMinutes(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}
