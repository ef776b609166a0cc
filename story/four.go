package story

import "github.com/rhpo/tilequest/levels"

const QuestLever = "LEVER"

// LevelFour: the exit gate stays shut until the lever is pulled.
type LevelFour struct {
	gateOpen bool
	done     bool
}

func (l *LevelFour) HandleEvent(s levels.State) {
	if l.done {
		return
	}

	if !l.gateOpen {
		if !s.QuestDone(QuestLever) {
			return
		}
		l.gateOpen = true
		s.Emit(levels.Event{Type: levels.EventQuestComplete, Level: s.Level(), Quest: QuestLever})
		say(s, "Something rumbles in the distance. The gate is open.")
	}

	if reachedExit(s) {
		l.done = true
		completeLevel(s)
	}
}
