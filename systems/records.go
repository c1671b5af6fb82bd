package systems

import (
	"github.com/charmbracelet/log"
	"github.com/mlinden4/cs181g-unit3/shared/progress"
	"github.com/mlinden4/cs181g-unit3/storage"
)

var recordStore *storage.Store

// InitRecords opens the minigame record database at path.
func InitRecords(path string) error {
	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	recordStore = store
	return nil
}

// CloseRecords closes the record database if it is open.
func CloseRecords() {
	if recordStore == nil {
		return
	}
	if err := recordStore.Close(); err != nil {
		log.Warn("Could not close records", "err", err)
	}
	recordStore = nil
}

// RecordMinigame stores one minigame attempt. Failures are logged only.
func RecordMinigame(mode progress.Mode, stage progress.Geometry, won bool, ticks int) {
	if recordStore == nil {
		return
	}
	if _, err := recordStore.SaveRecord(mode.String(), stage.String(), won, ticks); err != nil {
		log.Warn("Could not save minigame record", "mode", mode, "err", err)
	}
}

// BestTicks returns the fastest recorded win for mode, or zero.
func BestTicks(mode progress.Mode) int {
	if recordStore == nil {
		return 0
	}
	best, err := recordStore.BestTimes(mode.String(), 1)
	if err != nil {
		log.Warn("Could not read minigame records", "mode", mode, "err", err)
		return 0
	}
	if len(best) == 0 {
		return 0
	}
	return best[0].Ticks
}
