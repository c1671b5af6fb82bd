package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
)

// LevelDir is where level resources live inside the asset filesystem.
const LevelDir = "levels"

// TextPath and TMXPath name the resources for a level id.
func TextPath(id int) string { return path.Join(LevelDir, fmt.Sprintf("Level%d.txt", id)) }
func TMXPath(id int) string { return path.Join(LevelDir, fmt.Sprintf("Level%d.tmx", id)) }

// Load reads level id from fsys. The text form is preferred; a TMX map
// with the same id is used when no text resource exists.
func Load(fsys fs.FS, id int, grid Grid, cls Classifier) (*Level, error) {
	txt := TextPath(id)
	f, err := fsys.Open(txt)
	if err == nil {
		defer f.Close()
		level, err := Parse(f, grid, cls)
		if err != nil {
			return nil, &ResourceError{ID: id, Path: txt, Err: err}
		}
		level.ID = id
		return level, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, &ResourceError{ID: id, Path: txt, Err: err}
	}

	tmx := TMXPath(id)
	if _, err := fs.Stat(fsys, tmx); err != nil {
		return nil, &ResourceError{ID: id, Path: txt, Err: ErrMissing}
	}
	level, err := LoadTMX(fsys, tmx, grid, cls)
	if err != nil {
		return nil, &ResourceError{ID: id, Path: tmx, Err: err}
	}
	level.ID = id
	return level, nil
}

// LoadTMX parses the first tile layer of a Tiled map. Local tile ids map to
// sheet coordinates through the tileset column count; empty cells become
// decorative. Tiled stores rows top-down, so the last row is placed first.
// A "kind" property on a tileset tile overrides the classifier.
func LoadTMX(fsys fs.FS, tmxPath string, grid Grid, cls Classifier) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if len(levelMap.Layers) == 0 {
		return nil, fmt.Errorf("%w: %s has no tile layers", ErrMalformed, tmxPath)
	}
	if levelMap.Width != grid.Columns {
		return nil, fmt.Errorf("%w: %s is %d wide, grid has %d columns",
			ErrMalformed, tmxPath, levelMap.Width, grid.Columns)
	}

	layer := levelMap.Layers[0]
	empty := TexCoord{X: cls.NoCollisionX}
	coords := make([]TexCoord, 0, len(layer.Tiles))
	kinds := make([]Kind, 0, len(layer.Tiles))

	for y := levelMap.Height - 1; y >= 0; y-- {
		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() || tile.Tileset == nil || tile.Tileset.Columns == 0 {
				coords = append(coords, empty)
				kinds = append(kinds, KindDecorative)
				continue
			}

			id := int(tile.ID)
			tc := TexCoord{X: id % tile.Tileset.Columns, Y: id / tile.Tileset.Columns}
			kind := cls.Kind(tc)
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				if override, ok := ParseKind(tilesetTile.Properties.GetString("kind")); ok {
					kind = override
				}
			}
			coords = append(coords, tc)
			kinds = append(kinds, kind)
		}
	}

	level := &Level{Tiles: make([]Tile, 0, len(coords))}
	place(level, coords, kinds, grid, cls)
	return level, nil
}
