package festival

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/festival-crush/internal/games/festival/core"
)

// logHooks records level lifecycle. It stands where music playback and
// interstitials would attach.
type logHooks struct {
	logger *log.Logger
}

func (h logHooks) GameBegan(levelID, music string) {
	h.logger.Info("level started", "level", levelID, "music", music)
}

func (h logHooks) GameOver(o core.Outcome) {
	h.logger.Info("level finished",
		"level", o.LevelID,
		"result", o.Result,
		"score", o.Score,
		"stars", o.Stars,
		"moves_left", o.MovesLeft,
	)
}
