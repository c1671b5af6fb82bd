package archetypes

import (
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Actor = newArchetype(
		tags.Actor,
		components.Actor,
	)
	Level = newArchetype(
		components.Level,
	)
	Progress = newArchetype(
		components.Progress,
	)
	Session = newArchetype(
		components.Session,
	)
	Minigame = newArchetype(
		tags.Minigame,
		components.Minigame,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
