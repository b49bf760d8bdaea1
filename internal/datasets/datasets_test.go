package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wasi-apps/internal/domain"
)

func TestDatasetSizes(t *testing.T) {
	assert.Equal(t, 59, WG59().Len())
	assert.Equal(t, 128, SGB128().Len())

	first := WG59().Points()[0]
	assert.Equal(t, "Augsburg", first.Name)
	assert.Equal(t, domain.Point{X: 54, Y: -65}, first.Point)

	last := SGB128().Points()[127]
	assert.Equal(t, "Ravenna, OH", last.Name)
}

func TestPointsReturnsCopy(t *testing.T) {
	pts := WG59().Points()
	pts[0].Name = "changed"
	pts[0].X = 1e9

	again := WG59().Points()
	assert.Equal(t, "Augsburg", again[0].Name)
	assert.Equal(t, 54.0, again[0].X)
}

func TestLookup(t *testing.T) {
	d, err := Lookup(" SGB128 ")
	require.NoError(t, err)
	assert.Equal(t, NameSGB128, d.Name)

	_, err = Lookup("atlantis")
	require.ErrorIs(t, err, ErrUnknownDataset)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	assert.Equal(t, []string{NameWG59, NameSGB128}, Names())
}
