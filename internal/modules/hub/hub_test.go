package hub

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Nur-Nayeem/deploy-ai-image-gen-server/internal/modules/logs"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	logs.Logger = zerolog.New(io.Discard)
	m.Run()
}

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	h := New()
	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	h.Run(ctx, wg)
	t.Cleanup(func() {
		cancel()
		wg.Wait()
	})
	return h, cancel
}

func register(t *testing.T, h *Hub) *Subscriber {
	t.Helper()
	s := &Subscriber{hub: h, send: make(chan []byte, sendBufferSize)}
	select {
	case h.register <- s:
	case <-time.After(time.Second):
		t.Fatalf("register timed out")
	}
	return s
}

func receive(t *testing.T, s *Subscriber) Event {
	t.Helper()
	select {
	case data := <-s.send:
		var ev Event
		if err := jsoniter.Unmarshal(data, &ev); err != nil {
			t.Fatalf("event unmarshal: %v", err)
		}
		return ev
	case <-time.After(time.Second):
		t.Fatalf("no event received")
		return Event{}
	}
}

func expectNothing(t *testing.T, s *Subscriber) {
	t.Helper()
	select {
	case data := <-s.send:
		t.Fatalf("unexpected event: %s", data)
	case <-time.After(50 * time.Millisecond):
	}
}

func waitForCount(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if h.SubscriberCount() == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("subscriber count never reached %d, have %d", want, h.SubscriberCount())
}

func TestHub_FanOut(t *testing.T) {
	h, _ := startHub(t)

	early := register(t, h)
	waitForCount(t, h, 1)

	h.Publish(Event{Type: EventNewImage, URL: "https://host/img123.png", Prompt: "a red fox"})

	ev := receive(t, early)
	if ev.Type != EventNewImage || ev.URL != "https://host/img123.png" || ev.Prompt != "a red fox" {
		t.Fatalf("unexpected event: %+v", ev)
	}

	// A client connecting after the publish never sees it.
	late := register(t, h)
	waitForCount(t, h, 2)
	expectNothing(t, late)

	// The next publish reaches both, exactly once each.
	h.Publish(Event{Type: EventNewImage, URL: "https://host/img124.png"})
	if ev := receive(t, early); ev.URL != "https://host/img124.png" {
		t.Fatalf("unexpected event for early subscriber: %+v", ev)
	}
	if ev := receive(t, late); ev.URL != "https://host/img124.png" {
		t.Fatalf("unexpected event for late subscriber: %+v", ev)
	}
	expectNothing(t, early)
	expectNothing(t, late)
}

func TestHub_SlowSubscriberDropped(t *testing.T) {
	h, _ := startHub(t)

	slow := register(t, h)
	healthy := register(t, h)
	waitForCount(t, h, 2)

	// Drain the healthy subscriber continuously; its channel closes when
	// the hub shuts down at test cleanup.
	var received atomic.Int64
	go func() {
		for range healthy.send {
			received.Add(1)
		}
	}()

	// Never drain slow's buffer; once it is full the hub must drop the
	// subscriber instead of stalling the fan-out.
	for i := 0; i <= sendBufferSize; i++ {
		h.Publish(Event{Type: EventNewImage, URL: "https://host/burst.png"})
	}
	waitForCount(t, h, 1)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) && received.Load() < int64(sendBufferSize+1) {
		time.Sleep(5 * time.Millisecond)
	}
	if received.Load() != int64(sendBufferSize+1) {
		t.Fatalf("healthy subscriber received %d of %d events", received.Load(), sendBufferSize+1)
	}
	_ = slow
}

func TestHub_ShutdownClosesSubscribers(t *testing.T) {
	h := New()
	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}
	h.Run(ctx, wg)

	s := register(t, h)
	waitForCount(t, h, 1)

	cancel()
	wg.Wait()

	select {
	case _, ok := <-s.send:
		if ok {
			t.Fatalf("expected closed send channel")
		}
	case <-time.After(time.Second):
		t.Fatalf("send channel not closed on shutdown")
	}
	if h.SubscriberCount() != 0 {
		t.Fatalf("expected zero subscribers after shutdown")
	}
}
