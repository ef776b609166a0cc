package story

import "github.com/rhpo/tilequest/levels"

const (
	QuestTrampoline = "TRAMPOLINE"

	// hintRange is how close to the exit the player gets reminded of the
	// trampoline when it is still missing.
	hintRange = 64
)

// LevelOne: fix the trampoline, then leave through the exit.
type LevelOne struct {
	trampolineSaid bool
	hintSaid       bool
	done           bool
}

func (l *LevelOne) HandleEvent(s levels.State) {
	if l.done {
		return
	}

	if s.QuestDone(QuestTrampoline) {
		if !l.trampolineSaid {
			l.trampolineSaid = true
			s.Emit(levels.Event{Type: levels.EventQuestComplete, Level: s.Level(), Quest: QuestTrampoline})
			say(s, "The trampoline is fixed. Time to bounce out of here!")
		}
	} else if !l.hintSaid && exitDistance(s) <= hintRange {
		l.hintSaid = true
		say(s, "The exit is too high. Maybe that trampoline can be repaired?")
	}

	if reachedExit(s) {
		l.done = true
		completeLevel(s)
	}
}
