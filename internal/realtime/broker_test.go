package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hitushen/opscut/internal/models"
)

func receive(t *testing.T, ch <-chan []byte) Event {
	t.Helper()
	select {
	case data := <-ch:
		var evt Event
		if err := json.Unmarshal(data, &evt); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		return evt
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestPublishIsScopedToTopic(t *testing.T) {
	t.Parallel()

	b := NewBroker()
	a, cancelA := b.Subscribe("a")
	defer cancelA()
	other, cancelOther := b.Subscribe("b")
	defer cancelOther()

	b.Publish("a", Event{Type: EventViewChanged, View: "features"})

	if evt := receive(t, a); evt.Type != EventViewChanged || evt.View != "features" {
		t.Fatalf("unexpected event: %+v", evt)
	}
	select {
	case data := <-other:
		t.Fatalf("topic b received %s", data)
	default:
	}
}

func TestSlowSubscriberDropsMessages(t *testing.T) {
	t.Parallel()

	b := NewBroker()
	ch, cancel := b.Subscribe("v")
	defer cancel()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			b.Publish("v", Event{Type: EventScanProgress})
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}
	if len(ch) != cap(ch) {
		t.Fatalf("buffered %d of %d", len(ch), cap(ch))
	}
}

func TestCleanupRemovesSubscriber(t *testing.T) {
	t.Parallel()

	b := NewBroker()
	ch, cancel := b.Subscribe("v")
	if b.Subscribers("v") != 1 {
		t.Fatalf("Subscribers = %d", b.Subscribers("v"))
	}
	cancel()
	cancel()
	if b.Subscribers("v") != 0 {
		t.Fatalf("Subscribers after cleanup = %d", b.Subscribers("v"))
	}
	if _, ok := <-ch; ok {
		t.Fatal("channel not closed")
	}
	b.Publish("v", Event{Type: EventViewChanged})
}

func TestPublisherEvents(t *testing.T) {
	t.Parallel()

	b := NewBroker()
	ch, cancel := b.Subscribe("visitor")
	defer cancel()
	p := NewPublisher(b, "visitor")

	p.ViewChanged(models.Snapshot{View: models.ViewScanning, Domain: "acme.com"})
	p.ScanStepStarted(0, "DNS Resolution")
	p.ScanProgress(models.Progress{Index: 0, Step: "DNS Resolution", Percent: 50})
	p.ScanComplete(models.ScanResult{Domain: "acme.com"})

	want := []struct{ typ, view string }{
		{EventViewChanged, "scanning"},
		{EventScanStep, "scanning"},
		{EventScanProgress, "scanning"},
		{EventScanComplete, "results"},
	}
	for _, w := range want {
		evt := receive(t, ch)
		if evt.Type != w.typ || evt.View != w.view {
			t.Fatalf("got %s/%s, want %s/%s", evt.Type, evt.View, w.typ, w.view)
		}
	}
}
