package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/fonts"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the collision overlay.
func UpdateDebug(ecs *ecs.ECS) {
	debug := GetOrCreateDebug(ecs)
	if GetAction(getOrCreateInput(ecs), cfg.ActionToggleDebug).JustPressed {
		debug.Enabled = !debug.Enabled
	}
}

// DrawDebug outlines tile boxes, door zones and the actor hitbox, and
// prints the machine state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(ecs).Enabled {
		return
	}

	if entry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(entry)
		if level.Current != nil {
			for _, tile := range level.Current.Tiles {
				if !tile.Collides() {
					continue
				}
				outlineBox(screen, tile.Box, cfg.Debug.TileColor)
			}
		}
		if level.Doors != nil {
			for _, door := range level.Doors.Boxes() {
				outlineBox(screen, door, cfg.Debug.DoorColor)
			}
		}
	}

	lines := []string{}
	if entry, ok := components.Actor.First(ecs.World); ok {
		actor := components.Actor.Get(entry)
		outlineBox(screen, actor.Box(cfg.Actor.Hitbox), cfg.Debug.HitboxColor)
		lines = append(lines,
			fmt.Sprintf("pos %.1f,%.1f vel %.1f,%.1f", actor.Pos.X, actor.Pos.Y, actor.Vel.X, actor.Vel.Y),
			fmt.Sprintf("grounded %t passes %d contacts %d", actor.Grounded, actor.LastResult.Passes, actor.LastResult.Contacts),
		)
	}
	if prog := GetProgress(ecs); prog != nil {
		lines = append(lines, prog.Machine.State().String())
	}

	face := fonts.Small.Get()
	x := screen.Bounds().Dx() / 2
	for i, line := range lines {
		text.Draw(screen, line, face, x, 12+i*int(cfg.HUD.LineGap), cfg.Debug.TextColor)
	}
}

// GetOrCreateDebug returns the singleton Debug component, creating it with
// the configured default.
func GetOrCreateDebug(ecs *ecs.ECS) *components.DebugData {
	entry, ok := components.Debug.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Debug))
		components.Debug.SetValue(entry, components.DebugData{Enabled: cfg.Debug.Enabled})
	}
	return components.Debug.Get(entry)
}
