package systems

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/shared/geom"
	"github.com/mlinden4/cs181g-unit3/shared/progress"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for the save slot
func InitPersistence() error {
	if !cfg.Save.Enabled {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Save.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// SavedProgress is the save slot: the stage reached and where to respawn in it.
type SavedProgress struct {
	Geometry string  `json:"geometry"`
	RespawnX float64 `json:"respawnX"`
	RespawnY float64 `json:"respawnY"`
	Deaths   int     `json:"deaths"`
}

// Stage returns the saved geometry, or false when the name is unknown.
func (p *SavedProgress) Stage() (progress.Geometry, bool) {
	return progress.ParseGeometry(p.Geometry)
}

// Respawn returns the saved respawn position.
func (p *SavedProgress) Respawn() geom.Vec2 {
	return geom.Vec2{X: p.RespawnX, Y: p.RespawnY}
}

// LoadProgress reads the save slot. A missing or unreadable slot is nil.
func LoadProgress() (*SavedProgress, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Save.Key)
	if err != nil {
		log.Warn("Could not load game progress", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved SavedProgress
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Warn("Could not parse saved progress", "err", err)
		return nil, err
	}
	if _, ok := saved.Stage(); !ok {
		log.Warn("Saved progress names an unknown stage", "geometry", saved.Geometry)
		return nil, nil
	}

	return &saved, nil
}

// SaveProgress writes p to the save slot
func SaveProgress(p SavedProgress) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Warn("Could not serialize game progress", "err", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Save.Key, data); err != nil {
		log.Warn("Could not save game progress", "err", err)
		return err
	}

	log.Debug("Progress saved", "geometry", p.Geometry)
	return nil
}

// SaveCurrentProgress saves the stage and respawn of the running game.
func SaveCurrentProgress(ecs *ecs.ECS) {
	prog := GetProgress(ecs)
	if prog == nil {
		return
	}
	saved := SavedProgress{Geometry: prog.Machine.State().Geometry.String()}
	if entry, ok := components.Actor.First(ecs.World); ok {
		actor := components.Actor.Get(entry)
		saved.RespawnX = actor.Respawn.X
		saved.RespawnY = actor.Respawn.Y
		saved.Deaths = actor.Deaths
	}
	_ = SaveProgress(saved)
}

// HasSaveGame returns true if a saved game progress exists
func HasSaveGame() bool {
	p, err := LoadProgress()
	return err == nil && p != nil
}

// ClearGameProgress removes any saved game progress
func ClearGameProgress() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	// Save empty/nil data to clear the progress
	if err := gdataManager.SaveItem(cfg.Save.Key, nil); err != nil {
		log.Warn("Could not clear game progress", "err", err)
		return err
	}

	return nil
}
