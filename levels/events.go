package levels

import "sync"

type EventType string

const (
	EventQuestComplete EventType = "quest-complete"
	EventDialogue      EventType = "dialogue"
	EventLevelComplete EventType = "level-complete"
	EventGameComplete  EventType = "game-complete"
)

type Event struct {
	Type  EventType
	Level ID
	Quest string
	Text  string
}

type Listener func(ev Event)

type subscription struct {
	id   int
	fn   Listener
	once bool
}

// Emitter fans story events out to listeners, synchronously and in
// registration order.
type Emitter struct {
	mutex  sync.Mutex
	nextID int
	subs   map[EventType][]subscription
}

func NewEmitter() *Emitter {
	return &Emitter{
		subs: make(map[EventType][]subscription),
	}
}

// On registers fn for t and returns an id usable with Off.
func (e *Emitter) On(t EventType, fn Listener) int {
	return e.add(t, fn, false)
}

// Once registers fn for the next event of type t only.
func (e *Emitter) Once(t EventType, fn Listener) int {
	return e.add(t, fn, true)
}

func (e *Emitter) add(t EventType, fn Listener, once bool) int {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	e.nextID++
	e.subs[t] = append(e.subs[t], subscription{id: e.nextID, fn: fn, once: once})
	return e.nextID
}

func (e *Emitter) Off(t EventType, id int) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.remove(t, id)
}

func (e *Emitter) remove(t EventType, id int) {
	subs := e.subs[t]
	for i, s := range subs {
		if s.id == id {
			e.subs[t] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

func (e *Emitter) Emit(ev Event) {
	e.mutex.Lock()
	subs := make([]subscription, len(e.subs[ev.Type]))
	copy(subs, e.subs[ev.Type])
	for _, s := range subs {
		if s.once {
			e.remove(ev.Type, s.id)
		}
	}
	e.mutex.Unlock()

	for _, s := range subs {
		s.fn(ev)
	}
}
