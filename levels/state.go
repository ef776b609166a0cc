package levels

import (
	"time"

	"github.com/rhpo/tilequest/geom"
)

// Tick describes the frame a handler is called for.
type Tick struct {
	Frame  int64
	Time   time.Time
	Delta  float64
	Millis int64
}

// State is the slice of game state a Handler may read, plus the hook it
// uses to trigger story events.
type State interface {
	Level() ID
	Tick() Tick
	Player() geom.Rect
	Exit() geom.Rect
	QuestDone(name string) bool
	Emit(ev Event)
}
