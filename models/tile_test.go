package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTilesDefaults(t *testing.T) {
	assert.Equal(t, DefaultTiles(), DecodeTiles(""))
	assert.Equal(t, DefaultTiles(), DecodeTiles("{not json"))
	assert.Equal(t, DefaultTiles(), DecodeTiles("[]"))
}

func TestDecodeTilesFiltersRetiredTile(t *testing.T) {
	layout := append(DefaultTiles(), DashboardTile{ID: RetiredTileID, Label: "रोग माहिती", IsVisible: true})
	document, err := json.Marshal(layout)
	require.NoError(t, err)

	decoded := DecodeTiles(string(document))
	assert.Len(t, decoded, len(DefaultTiles()))
	for _, tile := range decoded {
		assert.NotEqual(t, RetiredTileID, tile.ID)
	}
}

func TestDecodeTilesKeepsSavedOrder(t *testing.T) {
	layout := DefaultTiles()
	layout[0], layout[1] = layout[1], layout[0]
	document, err := json.Marshal(layout)
	require.NoError(t, err)

	decoded := DecodeTiles(string(document))
	assert.Equal(t, layout, decoded)
}

func TestMoveTileUpEdges(t *testing.T) {
	tiles := DefaultTiles()
	first := tiles[0].ID

	tiles = MoveTileUp(tiles, 0)
	assert.Equal(t, first, tiles[0].ID)

	tiles = MoveTileUp(tiles, 1)
	assert.Equal(t, first, tiles[1].ID)
}

func TestMoveTileDownEdges(t *testing.T) {
	tiles := DefaultTiles()
	last := tiles[len(tiles)-1].ID

	tiles = MoveTileDown(tiles, len(tiles)-1)
	assert.Equal(t, last, tiles[len(tiles)-1].ID)

	tiles = MoveTileDown(tiles, len(tiles)-2)
	assert.Equal(t, last, tiles[len(tiles)-2].ID)
}

func TestMoveTileUpThenDownRestoresOrder(t *testing.T) {
	tiles := DefaultTiles()
	want := append([]DashboardTile(nil), tiles...)

	tiles = MoveTileUp(tiles, 3)
	tiles = MoveTileDown(tiles, 2)
	assert.Equal(t, want, tiles)
}

func TestMoveTileOutOfRange(t *testing.T) {
	tiles := DefaultTiles()
	want := append([]DashboardTile(nil), tiles...)

	assert.Equal(t, want, MoveTileUp(tiles, -1))
	assert.Equal(t, want, MoveTileUp(tiles, len(tiles)))
	assert.Equal(t, want, MoveTileDown(tiles, -1))
	assert.Equal(t, want, MoveTileDown(tiles, len(tiles)))
}

func TestToggleTileVisibility(t *testing.T) {
	tiles := DefaultTiles()
	tiles = ToggleTileVisibility(tiles, "market")
	for _, tile := range tiles {
		if tile.ID == "market" {
			assert.False(t, tile.IsVisible)
		} else {
			assert.True(t, tile.IsVisible)
		}
	}

	tiles = ToggleTileVisibility(tiles, "market")
	for _, tile := range tiles {
		assert.True(t, tile.IsVisible)
	}
}

func TestToggleTileVisibilityUnknownID(t *testing.T) {
	tiles := DefaultTiles()
	want := append([]DashboardTile(nil), tiles...)
	assert.Equal(t, want, ToggleTileVisibility(tiles, "missing"))
}

func TestValidateTiles(t *testing.T) {
	assert.True(t, ValidateTiles(DefaultTiles()))

	duplicated := append(DefaultTiles(), DashboardTile{ID: "market"})
	assert.False(t, ValidateTiles(duplicated))
}
