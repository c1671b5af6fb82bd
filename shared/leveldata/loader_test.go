package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two rows of three. Local id = y*16 + x on a 16-column sheet, gid = id+1.
// Top row: empty, door (6,0) -> gid 7, spikes tagged through a property.
// Bottom row: solid (1,0) -> gid 2 three times.
const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="3" height="2" tilewidth="32" tileheight="32" infinite="0">
 <tileset firstgid="1" name="tiles" tilewidth="32" tileheight="32" tilecount="256" columns="16">
  <image source="tiles.png" width="512" height="512"/>
  <tile id="20">
   <properties>
    <property name="kind" value="lethal"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="tiles" width="3" height="2">
  <data encoding="csv">
0,7,21,
2,2,2
</data>
 </layer>
</map>`

func TestLoadTMXFallback(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/Level3.tmx": {Data: []byte(testTMX)},
	}
	grid := Grid{TileSize: 32, Columns: 3, Origin: geom.Vec2{X: 16, Y: 16}}

	level, err := Load(fsys, 3, grid, DefaultClassifier)
	require.NoError(t, err)
	require.Len(t, level.Tiles, 6)

	for i := 0; i < 3; i++ {
		assert.Equal(t, TexCoord{1, 0}, level.Tiles[i].Tex)
		assert.Equal(t, KindSolid, level.Tiles[i].Kind)
		assert.Equal(t, 16.0, level.Tiles[i].Box.Center.Y)
	}

	assert.Equal(t, KindDecorative, level.Tiles[3].Kind)
	assert.Equal(t, KindDoor, level.Tiles[4].Kind)
	assert.Equal(t, TexCoord{6, 0}, level.Tiles[4].Tex)
	assert.Equal(t, KindLethal, level.Tiles[5].Kind)
	assert.Equal(t, TexCoord{4, 1}, level.Tiles[5].Tex)
	assert.Equal(t, []int{4}, level.Doors)
}

func TestLoadTMXRejectsWrongWidth(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/Level3.tmx": {Data: []byte(testTMX)},
	}

	_, err := Load(fsys, 3, DefaultGrid, DefaultClassifier)
	assert.ErrorIs(t, err, ErrMalformed)
}
