package telemetry

import (
	"sync"
	"testing"
	"time"

	"fleet-console/internal/domain/device"
)

func event(deviceID string, ts int64) device.TelemetryEvent {
	return device.TelemetryEvent{
		DeviceID:     deviceID,
		Timestamp:    ts,
		BatteryLevel: 50,
		NetworkType:  device.NetworkWifi,
	}
}

func TestPublishDeliversToAllSubscribers(t *testing.T) {
	b := NewBroker(4)
	s1 := b.Subscribe("dev-001")
	s2 := b.Subscribe("dev-001")
	other := b.Subscribe("dev-002")
	defer s1.Cancel()
	defer s2.Cancel()
	defer other.Cancel()

	b.Publish("dev-001", event("dev-001", 1))

	for _, sub := range []*Subscription{s1, s2} {
		select {
		case ev := <-sub.Events():
			if ev.DeviceID != "dev-001" || ev.Timestamp != 1 {
				t.Fatalf("unexpected event %+v", ev)
			}
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}

	select {
	case ev := <-other.Events():
		t.Fatalf("subscriber of dev-002 received %+v", ev)
	default:
	}
}

func TestPublishWithoutSubscribersIsNoop(t *testing.T) {
	b := NewBroker(4)
	// Must not panic or block.
	b.Publish("dev-001", event("dev-001", 1))
}

func TestCancelStopsDeliveryAndIsIdempotent(t *testing.T) {
	b := NewBroker(4)
	sub := b.Subscribe("dev-001")

	sub.Cancel()
	sub.Cancel()

	if got := b.SubscriberCount("dev-001"); got != 0 {
		t.Fatalf("SubscriberCount = %d after cancel, want 0", got)
	}

	b.Publish("dev-001", event("dev-001", 1))

	if _, ok := <-sub.Events(); ok {
		t.Fatal("received event after Cancel returned")
	}
}

func TestSubscriberCount(t *testing.T) {
	b := NewBroker(4)
	if got := b.SubscriberCount("dev-001"); got != 0 {
		t.Fatalf("initial count = %d, want 0", got)
	}

	s1 := b.Subscribe("dev-001")
	s2 := b.Subscribe("dev-001")
	fire := b.SubscribeAll()
	defer fire.Cancel()

	if got := b.SubscriberCount("dev-001"); got != 2 {
		t.Fatalf("count = %d, want 2 (firehose excluded)", got)
	}

	s1.Cancel()
	if got := b.SubscriberCount("dev-001"); got != 1 {
		t.Fatalf("count after one cancel = %d, want 1", got)
	}
	s2.Cancel()
	if got := b.SubscriberCount("dev-001"); got != 0 {
		t.Fatalf("count after both cancels = %d, want 0", got)
	}
}

func TestEventsDeliveredInPublishOrder(t *testing.T) {
	b := NewBroker(64)
	sub := b.Subscribe("dev-001")
	defer sub.Cancel()

	for i := int64(1); i <= 50; i++ {
		b.Publish("dev-001", event("dev-001", i))
	}

	for i := int64(1); i <= 50; i++ {
		select {
		case ev := <-sub.Events():
			if ev.Timestamp != i {
				t.Fatalf("event %d has timestamp %d", i, ev.Timestamp)
			}
		case <-time.After(time.Second):
			t.Fatalf("missing event %d", i)
		}
	}
}

func TestFullBufferDropsInsteadOfBlocking(t *testing.T) {
	b := NewBroker(2)
	sub := b.Subscribe("dev-001")
	defer sub.Cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := int64(1); i <= 5; i++ {
			b.Publish("dev-001", event("dev-001", i))
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked on a full subscriber buffer")
	}

	// The two oldest events survive; the rest were dropped.
	for i := int64(1); i <= 2; i++ {
		ev := <-sub.Events()
		if ev.Timestamp != i {
			t.Fatalf("buffered event has timestamp %d, want %d", ev.Timestamp, i)
		}
	}
	select {
	case ev := <-sub.Events():
		t.Fatalf("expected drops, received %+v", ev)
	default:
	}
}

func TestFirehoseReceivesEveryDevice(t *testing.T) {
	b := NewBroker(8)
	fire := b.SubscribeAll()
	defer fire.Cancel()

	b.Publish("dev-001", event("dev-001", 1))
	b.Publish("dev-002", event("dev-002", 2))

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case ev := <-fire.Events():
			seen[ev.DeviceID] = true
		case <-time.After(time.Second):
			t.Fatal("firehose missed an event")
		}
	}
	if !seen["dev-001"] || !seen["dev-002"] {
		t.Fatalf("firehose saw %v, want both devices", seen)
	}
}

func TestConcurrentSubscribePublishCancel(t *testing.T) {
	b := NewBroker(4)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := int64(0); ; i++ {
			select {
			case <-stop:
				return
			default:
				b.Publish("dev-001", event("dev-001", i))
			}
		}
	}()

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := b.Subscribe("dev-001")
			// Drain a little, then cancel mid-publish.
			select {
			case <-sub.Events():
			default:
			}
			sub.Cancel()
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(stop)
	wg.Wait()

	if got := b.SubscriberCount("dev-001"); got != 0 {
		t.Fatalf("SubscriberCount = %d after all cancels, want 0", got)
	}
}
