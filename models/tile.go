package models

import "encoding/json"

// RetiredTileID is filtered out of stored layouts; the disease library
// screen lost its dashboard shortcut but older layouts may still carry it.
const RetiredTileID = "diseases"

// DashboardTile is one dashboard shortcut entry. Array order is
// display order.
type DashboardTile struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	IsVisible bool   `json:"isVisible"`
}

// DefaultTiles returns the default dashboard layout.
func DefaultTiles() []DashboardTile {
	return []DashboardTile{
		{ID: "sowing", Label: "पेरणी (Sowing)", Icon: "Zap", Color: "bg-orange-500", IsVisible: true},
		{ID: "fertilizer", Label: "खत नियोजन", Icon: "FlaskConical", Color: "bg-cyan-600", IsVisible: true},
		{ID: "smart_calc", Label: "स्मार्ट पीक सल्ला", Icon: "Calculator", Color: "bg-emerald-600", IsVisible: true},
		{ID: "crop_ai", Label: "एआय पीक तपासणी", Icon: "Camera", Color: "bg-indigo-600", IsVisible: true},
		{ID: "market", Label: "बाजारभाव", Icon: "TrendingUp", Color: "bg-amber-600", IsVisible: true},
		{ID: "news", Label: "कृषी बातम्या", Icon: "Newspaper", Color: "bg-blue-600", IsVisible: true},
		{ID: "weather", Label: "हवामान", Icon: "CloudSun", Color: "bg-sky-500", IsVisible: true},
		{ID: "assistant", Label: "एआय सहाय्यक", Icon: "MessageSquare", Color: "bg-violet-600", IsVisible: true},
		{ID: "basic_calc", Label: "गणक", Icon: "Plus", Color: "bg-gray-600", IsVisible: true},
		{ID: "notepad", Label: "शेती नोटपॅड", Icon: "FileText", Color: "bg-rose-600", IsVisible: true},
	}
}

// DecodeTiles parses a stored tile layout. Absent, malformed or empty
// documents yield the default layout; the retired tile id is dropped
// for backward compatibility with older persisted layouts.
func DecodeTiles(document string) []DashboardTile {
	if document == "" {
		return DefaultTiles()
	}
	var tiles []DashboardTile
	if err := json.Unmarshal([]byte(document), &tiles); err != nil || len(tiles) == 0 {
		return DefaultTiles()
	}
	kept := tiles[:0]
	for _, tile := range tiles {
		if tile.ID != RetiredTileID {
			kept = append(kept, tile)
		}
	}
	if len(kept) == 0 {
		return DefaultTiles()
	}
	return kept
}

// MoveTileUp swaps the tile at index with its predecessor. Moving the
// first tile is a no-op.
func MoveTileUp(tiles []DashboardTile, index int) []DashboardTile {
	if index <= 0 || index >= len(tiles) {
		return tiles
	}
	tiles[index-1], tiles[index] = tiles[index], tiles[index-1]
	return tiles
}

// MoveTileDown swaps the tile at index with its successor. Moving the
// last tile is a no-op.
func MoveTileDown(tiles []DashboardTile, index int) []DashboardTile {
	if index < 0 || index >= len(tiles)-1 {
		return tiles
	}
	tiles[index], tiles[index+1] = tiles[index+1], tiles[index]
	return tiles
}

// ToggleTileVisibility flips the visibility flag of the tile with the
// given id, if present.
func ToggleTileVisibility(tiles []DashboardTile, id string) []DashboardTile {
	for i := range tiles {
		if tiles[i].ID == id {
			tiles[i].IsVisible = !tiles[i].IsVisible
			break
		}
	}
	return tiles
}

// ValidateTiles reports whether all tile ids are unique.
func ValidateTiles(tiles []DashboardTile) bool {
	seen := make(map[string]bool, len(tiles))
	for _, tile := range tiles {
		if seen[tile.ID] {
			return false
		}
		seen[tile.ID] = true
	}
	return true
}
