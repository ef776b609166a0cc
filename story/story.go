// Package story holds the custom logic of levels whose story needs more
// than "walk to the exit". Refer to LevelOne when writing a new level.
package story

import (
	"github.com/rhpo/tilequest/geom"
	"github.com/rhpo/tilequest/internal/logs"
	"github.com/rhpo/tilequest/levels"
)

var logger = logs.Get("story")

// Handlers is the composition table handed to levels.NewRegistry.
// Every call returns fresh handlers with no events fired yet.
func Handlers() map[levels.ID]levels.Handler {
	return map[levels.ID]levels.Handler{
		1: &LevelOne{},
		4: &LevelFour{},
		5: &LevelFive{},
	}
}

// reachedExit is true once the player box touches the exit box.
func reachedExit(s levels.State) bool {
	side, _ := geom.Distance(s.Player(), s.Exit())
	return side == geom.Intersection
}

func exitDistance(s levels.State) float64 {
	_, d := geom.Distance(s.Player(), s.Exit())
	return d
}

func say(s levels.State, text string) {
	logger.Debugf("level %d: %s", s.Level(), text)
	s.Emit(levels.Event{Type: levels.EventDialogue, Level: s.Level(), Text: text})
}

func completeLevel(s levels.State) {
	logger.Infof("level %d complete at frame %d", s.Level(), s.Tick().Frame)
	s.Emit(levels.Event{Type: levels.EventLevelComplete, Level: s.Level()})
}
