package story

import "github.com/rhpo/tilequest/levels"

const QuestBoss = "BOSS"

// LevelFive is the last level: beating the boss ends the game.
type LevelFive struct {
	done bool
}

func (l *LevelFive) HandleEvent(s levels.State) {
	if l.done || !s.QuestDone(QuestBoss) {
		return
	}
	l.done = true
	say(s, "The boss is defeated. Thanks for playing!")
	s.Emit(levels.Event{Type: levels.EventGameComplete, Level: s.Level()})
}
