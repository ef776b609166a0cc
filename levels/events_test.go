package levels

import (
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
)

func TestEmitterOrderAndFiltering(t *testing.T) {
	e := NewEmitter()
	var got []string

	e.On(EventDialogue, func(ev Event) { got = append(got, "a:"+ev.Text) })
	e.On(EventDialogue, func(ev Event) { got = append(got, "b:"+ev.Text) })
	e.On(EventLevelComplete, func(ev Event) { got = append(got, "done") })

	e.Emit(Event{Type: EventDialogue, Text: "hi"})

	if !reflect.DeepEqual(got, []string{"a:hi", "b:hi"}) {
		t.Fatalf("unexpected calls %v", got)
	}
}

func TestEmitterOnce(t *testing.T) {
	e := NewEmitter()
	calls := 0
	e.Once(EventGameComplete, func(Event) { calls++ })

	e.Emit(Event{Type: EventGameComplete})
	e.Emit(Event{Type: EventGameComplete})

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestEmitterOff(t *testing.T) {
	e := NewEmitter()
	calls := 0
	id := e.On(EventQuestComplete, func(Event) { calls++ })
	e.Emit(Event{Type: EventQuestComplete})
	e.Off(EventQuestComplete, id)
	e.Emit(Event{Type: EventQuestComplete})

	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestEmitterListenerMayEmit(t *testing.T) {
	e := NewEmitter()
	var order []EventType
	e.On(EventQuestComplete, func(ev Event) {
		order = append(order, ev.Type)
		e.Emit(Event{Type: EventDialogue})
	})
	e.On(EventDialogue, func(ev Event) { order = append(order, ev.Type) })

	e.Emit(Event{Type: EventQuestComplete})

	if !reflect.DeepEqual(order, []EventType{EventQuestComplete, EventDialogue}) {
		t.Fatalf("unexpected order %v", order)
	}
}

func TestEmitterOnceUnderConcurrentEmit(t *testing.T) {
	e := NewEmitter()
	var calls atomic.Int32
	e.Once(EventLevelComplete, func(Event) { calls.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Emit(Event{Type: EventLevelComplete})
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("once listener ran %d times", got)
	}
}
