package progress

import (
	"testing"

	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/stretchr/testify/assert"
)

func TestDoorZones(t *testing.T) {
	doors := []geom.AABB{
		geom.NewAABB(272, 48, 32, 32),
		geom.NewAABB(272, 80, 32, 32),
	}
	zones := NewDoorZones(doors, 320, 240, 32)
	assert.Equal(t, 2, zones.Len())

	tests := []struct {
		name     string
		actor    geom.Vec2
		expected bool
	}{
		{"standing in the lower door", geom.Vec2{X: 270, Y: 40}, true},
		{"overlapping the upper door", geom.Vec2{X: 250, Y: 90}, true},
		{"touching the door edge only", geom.Vec2{X: 248, Y: 48}, false},
		{"clear of the door", geom.Vec2{X: 100, Y: 40}, false},
		{"far away", geom.Vec2{X: 40, Y: 200}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			box := geom.AABB{Center: tc.actor, Size: geom.Vec2{X: 16, Y: 16}}
			assert.Equal(t, tc.expected, zones.InDoor(box))
		})
	}
}

func TestDoorZonesEmpty(t *testing.T) {
	zones := NewDoorZones(nil, 320, 240, 32)
	assert.False(t, zones.InDoor(geom.NewAABB(100, 100, 16, 16)))
}
