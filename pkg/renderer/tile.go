package renderer

import "image"

// Tile represents one fixed-size rectangular batch of pixel work
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds; may extend past the image edge
}

// NewTileGrid creates a grid of fixed-size square tiles covering the
// entire image. Edge tiles keep their full size even when the image
// dimensions are not a multiple of tileSize, so the grid may overhang the
// image; the renderer skips the overhanging pixels instead of clamping
// the grid.
func NewTileGrid(width, height, tileSize int) []Tile {
	var tiles []Tile
	tileID := 0

	// Calculate number of tiles in each dimension (ceiling division)
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			bounds := image.Rect(x0, y0, x0+tileSize, y0+tileSize)
			tiles = append(tiles, Tile{ID: tileID, Bounds: bounds})
			tileID++
		}
	}

	return tiles
}
