package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	pos, err := ParsePosition("39.9334", "32.8597")
	require.NoError(t, err)
	assert.Equal(t, 39.9334, pos.Lat)
	assert.Equal(t, 32.8597, pos.Lon)
}

func TestParsePosition_Missing(t *testing.T) {
	_, err := ParsePosition("", "32.8")
	assert.ErrorIs(t, err, ErrPositionUnavailable)

	_, err = ParsePosition("39.9", "")
	assert.ErrorIs(t, err, ErrPositionUnavailable)
}

func TestParsePosition_Unparsable(t *testing.T) {
	_, err := ParsePosition("north", "32.8")
	assert.ErrorIs(t, err, ErrPositionUnavailable)
}

func TestParsePosition_OutOfRange(t *testing.T) {
	_, err := ParsePosition("91", "0")
	assert.ErrorIs(t, err, ErrPositionOutOfRange)

	_, err = ParsePosition("0", "181")
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
}
