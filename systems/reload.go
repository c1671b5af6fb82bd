package systems

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mlinden4/cs181g-unit3/assets"
	"github.com/mlinden4/cs181g-unit3/components"
	cfg "github.com/mlinden4/cs181g-unit3/config"
	"github.com/mlinden4/cs181g-unit3/shared/leveldata"
	"github.com/mlinden4/cs181g-unit3/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

var levelWatcher *leveldata.Watcher

// StartLevelWatcher switches level loading to dir and watches its levels
// for changes.
func StartLevelWatcher(dir string) error {
	if err := assets.UseLevelDir(dir); err != nil {
		return err
	}
	leveldata.WatchDebounce = cfg.Watch.Debounce

	w, err := leveldata.NewWatcher(filepath.Join(dir, leveldata.LevelDir))
	if err != nil {
		return err
	}
	levelWatcher = w
	log.Info("Watching levels", "dir", dir)
	return nil
}

// StopLevelWatcher stops watching, if a watcher was started.
func StopLevelWatcher() {
	if levelWatcher == nil {
		return
	}
	if err := levelWatcher.Close(); err != nil {
		log.Warn("Could not stop level watcher", "err", err)
	}
	levelWatcher = nil
}

// UpdateReload reloads the current level when its file changed on disk.
// A level that fails to parse is logged and the old one kept.
func UpdateReload(ecs *ecs.ECS) {
	if levelWatcher == nil {
		return
	}

	for {
		select {
		case path, ok := <-levelWatcher.Events:
			if !ok {
				return
			}
			reloadChanged(ecs, path)
		case err, ok := <-levelWatcher.Errors:
			if !ok {
				return
			}
			log.Warn("Level watcher error", "err", err)
		default:
			return
		}
	}
}

func reloadChanged(ecs *ecs.ECS, path string) {
	id, ok := leveldata.LevelIDFromPath(path)
	if !ok {
		return
	}
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	if level.Current == nil || level.Current.ID != id {
		return
	}

	if err := factory.LoadLevel(ecs, id); err != nil {
		log.Warn("Level reload failed, keeping previous", "id", id, "err", err)
		return
	}
	log.Info("Level reloaded", "id", id, "path", path)
}
