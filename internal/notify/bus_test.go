package notify

import (
	"reflect"
	"testing"
)

func TestBusDeliversInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(func(m Message) { got = append(got, "first:"+m.Text) })
	bus.Subscribe(func(m Message) { got = append(got, "second:"+m.Text) })

	bus.Emit(KindInfo, "a")
	bus.Emit(KindInfo, "b")

	want := []string{"first:a", "second:a", "first:b", "second:b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("delivery order = %v, want %v", got, want)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	var first, second int
	unsubscribe := bus.Subscribe(func(Message) { first++ })
	bus.Subscribe(func(Message) { second++ })

	bus.Emit(KindInfo, "one")
	unsubscribe()
	bus.Emit(KindInfo, "two")

	if first != 1 {
		t.Errorf("unsubscribed listener received %d messages, want 1", first)
	}
	if second != 2 {
		t.Errorf("remaining listener received %d messages, want 2", second)
	}
}

func TestBusUnsubscribeTwice(t *testing.T) {
	bus := NewBus()
	var count int
	unsubscribe := bus.Subscribe(func(Message) { count++ })
	other := bus.Subscribe(func(Message) {})

	unsubscribe()
	unsubscribe() // must not disturb other registrations

	bus.Emit(KindInfo, "x")
	if count != 0 {
		t.Errorf("listener received %d messages after unsubscribe, want 0", count)
	}
	_ = other
}

func TestBusKindHelpers(t *testing.T) {
	bus := NewBus()
	var got []Message
	bus.Subscribe(func(m Message) { got = append(got, m) })

	bus.Error("boom")
	bus.Success("done")
	bus.Info("fyi")

	want := []Message{
		{Kind: KindError, Text: "boom"},
		{Kind: KindSuccess, Text: "done"},
		{Kind: KindInfo, Text: "fyi"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("messages = %v, want %v", got, want)
	}
}

func TestBusListenerMayUnsubscribeDuringEmit(t *testing.T) {
	bus := NewBus()
	var unsubscribe func()
	var count int
	unsubscribe = bus.Subscribe(func(Message) {
		count++
		unsubscribe()
	})

	bus.Emit(KindInfo, "first")
	bus.Emit(KindInfo, "second")

	if count != 1 {
		t.Errorf("listener ran %d times, want 1", count)
	}
}
