package play

import (
	"github.com/rhpo/tilequest/config"
	"github.com/rhpo/tilequest/geom"
	"github.com/rhpo/tilequest/levels"
	"github.com/rhpo/tilequest/story"
)

const (
	PlayerSize = 32
	exitWidth  = 48
	exitHeight = 96
	questSize  = 56
)

// questsByLevel lists the quest zones placed in each level.
var questsByLevel = map[levels.ID][]string{
	1: {story.QuestTrampoline},
	4: {story.QuestLever},
	5: {story.QuestBoss},
}

type Quest struct {
	Name string
	Zone geom.Rect
	Done bool
}

// Stage is the running state of one level. It is what story handlers see
// through levels.State.
type Stage struct {
	id     levels.ID
	tick   levels.Tick
	bounds geom.Rect
	player geom.Rect
	exit   geom.Rect
	quests []*Quest
	events *levels.Emitter
}

func newStage(id levels.ID, cfg *config.Config, events *levels.Emitter) *Stage {
	w, h := float64(cfg.Width), float64(cfg.Height)

	s := &Stage{
		id:     id,
		bounds: geom.NewRect(0, 0, w, h),
		player: geom.NewRect(24, h/2-PlayerSize/2, PlayerSize, PlayerSize),
		exit:   geom.NewRect(w-exitWidth-16, h/2-exitHeight/2, exitWidth, exitHeight),
		events: events,
	}

	names := questsByLevel[id]
	for i, name := range names {
		// spread zones across the middle of the screen, alternating above and below
		x := w * float64(i+1) / float64(len(names)+1)
		y := h / 4
		if (int(id)+i)%2 == 1 {
			y = h * 3 / 4
		}
		s.quests = append(s.quests, &Quest{
			Name: name,
			Zone: geom.NewRect(x-questSize/2, y-questSize/2, questSize, questSize),
		})
	}
	return s
}

func (s *Stage) Level() levels.ID { return s.id }
func (s *Stage) Tick() levels.Tick { return s.tick }
func (s *Stage) Player() geom.Rect { return s.player }
func (s *Stage) Exit() geom.Rect { return s.exit }

func (s *Stage) QuestDone(name string) bool {
	for _, q := range s.quests {
		if q.Name == name {
			return q.Done
		}
	}
	return false
}

func (s *Stage) Emit(ev levels.Event) {
	s.events.Emit(ev)
}

// Quests returns a snapshot of the quest zones for drawing.
func (s *Stage) Quests() []Quest {
	out := make([]Quest, len(s.quests))
	for i, q := range s.quests {
		out[i] = *q
	}
	return out
}

// move shifts the player, keeping it inside the screen.
func (s *Stage) move(dx, dy float64) {
	p := s.player.Translate(geom.V(dx, dy))
	if p.Min.X < s.bounds.Min.X {
		p = p.Translate(geom.V(s.bounds.Min.X-p.Min.X, 0))
	}
	if p.Max.X > s.bounds.Max.X {
		p = p.Translate(geom.V(s.bounds.Max.X-p.Max.X, 0))
	}
	if p.Min.Y < s.bounds.Min.Y {
		p = p.Translate(geom.V(0, s.bounds.Min.Y-p.Min.Y))
	}
	if p.Max.Y > s.bounds.Max.Y {
		p = p.Translate(geom.V(0, s.bounds.Max.Y-p.Max.Y))
	}
	s.player = p
}

// visitQuests marks every quest zone the player stands on as done.
func (s *Stage) visitQuests() {
	for _, q := range s.quests {
		if !q.Done && s.player.Overlaps(q.Zone) {
			q.Done = true
			logger.Debugf("level %d: quest %s done", s.id, q.Name)
		}
	}
}
