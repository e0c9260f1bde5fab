package rangestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayNameRoundTrip(t *testing.T) {
	for editor, wire := range wireDays {
		gotWire, err := ToWireDay(editor)
		require.NoError(t, err)
		assert.Equal(t, wire, gotWire)

		gotEditor, err := FromWireDay(wire)
		require.NoError(t, err)
		assert.Equal(t, editor, gotEditor)
	}
}

func TestUnknownDayNamesRejected(t *testing.T) {
	_, err := ToWireDay("MONDAY") // wire spelling is not editor spelling
	assert.ErrorIs(t, err, ErrUnknownDay)

	_, err = FromWireDay("Monday")
	assert.ErrorIs(t, err, ErrUnknownDay)

	_, err = FromWireDay("someday")
	assert.ErrorIs(t, err, ErrUnknownDay)
}
