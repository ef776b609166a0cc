// Package play runs the level progression: the loading bar, the level
// being played, its story handler and the switch to the next level.
package play

import (
	"github.com/rhpo/tilequest/config"
	"github.com/rhpo/tilequest/geom"
	"github.com/rhpo/tilequest/internal/logs"
	"github.com/rhpo/tilequest/levels"
)

var logger = logs.Get("play")

type Phase int

const (
	Loading Phase = iota
	Playing
	Finished
)

const LoadingStep = 2.0 // percent per frame

type Session struct {
	cfg      *config.Config
	registry *levels.Registry
	ids      []levels.ID
	events   *levels.Emitter

	phase    Phase
	loading  float64
	index    int
	stage    *Stage
	handler  levels.Handler
	dialogue string

	pendingLevelSwitch *int
}

// NewSession plays ids in order, running the handler registry holds for
// each of them.
func NewSession(cfg *config.Config, registry *levels.Registry, ids []levels.ID) *Session {
	if cfg == nil {
		cfg = config.New(nil)
	}
	if registry == nil {
		registry = levels.NewRegistry(nil)
	}

	s := &Session{
		cfg:      cfg,
		registry: registry,
		ids:      ids,
		events:   levels.NewEmitter(),
		phase:    Loading,
	}

	s.events.On(levels.EventDialogue, func(ev levels.Event) {
		s.dialogue = ev.Text
	})
	s.events.On(levels.EventQuestComplete, func(ev levels.Event) {
		logger.Infof("level %d: quest %s complete", ev.Level, ev.Quest)
	})
	s.events.On(levels.EventLevelComplete, func(ev levels.Event) {
		s.NextLevel()
	})
	s.events.On(levels.EventGameComplete, func(ev levels.Event) {
		s.finish("You won!")
	})
	return s
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Loading() float64 { return s.loading }
func (s *Session) Stage() *Stage { return s.stage }
func (s *Session) Index() int { return s.index }
func (s *Session) Len() int { return len(s.ids) }
func (s *Session) Dialogue() string { return s.dialogue }

// NextLevel queues the following discovered level, or ends the game after
// the last one. The switch happens at the start of the next Step.
func (s *Session) NextLevel() {
	if s.index+1 >= len(s.ids) {
		s.finish("All levels complete!")
		return
	}
	next := s.index + 1
	s.pendingLevelSwitch = &next
}

func (s *Session) finish(msg string) {
	s.phase = Finished
	s.dialogue = msg
	s.pendingLevelSwitch = nil
}

func (s *Session) selectLevel(index int) {
	s.index = index
	id := s.ids[index]
	s.stage = newStage(id, s.cfg, s.events)
	s.dialogue = ""

	handler, ok := s.registry.Handler(id)
	if ok {
		s.handler = handler
	} else {
		s.handler = nil
	}
	logger.Infof("starting level %d (custom logic: %v)", id, ok)
}

// Step advances one frame, moving the player by dx, dy while a level is
// being played.
func (s *Session) Step(tick levels.Tick, dx, dy float64) {
	switch s.phase {
	case Loading:
		s.stepLoading()
	case Playing:
		s.stepPlaying(tick, dx, dy)
	}
}

func (s *Session) stepLoading() {
	s.loading += LoadingStep
	if s.loading < 100 {
		return
	}
	s.loading = 100

	if len(s.ids) == 0 {
		s.finish("No levels found in " + s.cfg.LevelsDir())
		return
	}
	s.selectLevel(0)
	s.phase = Playing
}

func (s *Session) stepPlaying(tick levels.Tick, dx, dy float64) {
	if s.pendingLevelSwitch != nil {
		index := *s.pendingLevelSwitch
		s.pendingLevelSwitch = nil
		s.selectLevel(index)
		return
	}

	st := s.stage
	st.tick = tick
	st.move(dx, dy)
	st.visitQuests()

	if s.handler != nil {
		s.handler.HandleEvent(st)
		return
	}

	// levels without custom logic end at the exit
	if side, _ := geom.Distance(st.player, st.exit); side == geom.Intersection {
		st.Emit(levels.Event{Type: levels.EventLevelComplete, Level: st.id})
	}
}
