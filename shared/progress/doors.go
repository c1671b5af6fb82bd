package progress

import (
	"math"

	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/solarlune/resolv"
)

// ResolvDoor tags door trigger objects in the zone space.
const ResolvDoor = "door"

// DoorZones answers "is the actor standing in a door" for one loaded level.
// A resolv space does the broad phase; candidates are confirmed with an
// exact box overlap.
type DoorZones struct {
	space *resolv.Space
	probe *resolv.Object
	boxes []geom.AABB
}

// NewDoorZones indexes door boxes in a space covering width×height world
// units, bucketed by cell.
func NewDoorZones(doors []geom.AABB, width, height float64, cell int) *DoorZones {
	if cell <= 0 {
		cell = 32
	}
	space := resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cell, cell)

	z := &DoorZones{space: space, boxes: doors}
	for i, b := range doors {
		obj := resolv.NewObject(b.Left(), b.Bottom(), b.Size.X, b.Size.Y, ResolvDoor)
		obj.Data = i
		space.Add(obj)
	}

	z.probe = resolv.NewObject(0, 0, 1, 1)
	space.Add(z.probe)
	return z
}

// Len is the number of door tiles indexed.
func (z *DoorZones) Len() int { return len(z.boxes) }

// Boxes returns the indexed door boxes.
func (z *DoorZones) Boxes() []geom.AABB { return z.boxes }

// InDoor reports whether actor overlaps any door tile.
func (z *DoorZones) InDoor(actor geom.AABB) bool {
	if len(z.boxes) == 0 {
		return false
	}

	z.probe.X = actor.Left()
	z.probe.Y = actor.Bottom()
	z.probe.W = actor.Size.X
	z.probe.H = actor.Size.Y
	z.probe.Update()

	check := z.probe.Check(0, 0, ResolvDoor)
	if check == nil {
		return false
	}
	for _, obj := range check.ObjectsByTags(ResolvDoor) {
		idx, ok := obj.Data.(int)
		if !ok {
			continue
		}
		if geom.Overlaps(z.boxes[idx], actor) {
			return true
		}
	}
	return false
}
