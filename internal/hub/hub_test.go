package hub

import (
	"testing"
	"time"

	"github.com/luispauloloureiro/unfdashboard/internal/model"
)

func TestHubBroadcast(t *testing.T) {
	h := New()
	sub1 := h.Subscribe()
	sub2 := h.Subscribe()
	defer h.Close()

	h.Publish(model.Refresh{Total: 42})

	for i, sub := range []chan model.Refresh{sub1, sub2} {
		select {
		case r := <-sub:
			if r.Total != 42 {
				t.Errorf("sub%d: expected total 42, got %d", i+1, r.Total)
			}
		case <-time.After(1 * time.Second):
			t.Fatalf("sub%d: timed out", i+1)
		}
	}
}

func TestHubSlowSubscriber(t *testing.T) {
	h := New()
	_ = h.Subscribe() // never read
	defer h.Close()

	for i := 0; i < subscriberBuffer+5; i++ {
		h.Publish(model.Refresh{Total: i})
	}

	if h.Dropped() == 0 {
		t.Error("expected dropped notifications for a full subscriber buffer")
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	h := New()
	sub := h.Subscribe()

	h.Unsubscribe(sub)

	if _, open := <-sub; open {
		t.Error("expected unsubscribed channel to be closed")
	}

	// Publishing after unsubscribe must not panic or drop.
	h.Publish(model.Refresh{Total: 1})
	if h.Dropped() != 0 {
		t.Errorf("expected no drops after unsubscribe, got %d", h.Dropped())
	}
}
