package telemetry

import (
	"sync"

	"fleet-console/internal/domain/device"
)

// firehoseKey collects subscriptions that want every device's events.
// Device IDs are never empty, so the key cannot collide.
const firehoseKey = ""

// Broker fans simulator ticks out to live subscribers. Each subscription
// owns a buffered channel; Publish never blocks on a slow consumer — a full
// buffer drops the event instead of stalling the tick loop.
type Broker struct {
	mu     sync.RWMutex
	subs   map[string]map[int]*Subscription
	nextID int
	buffer int
}

// Subscription is one live subscriber of a device's telemetry. Cancel is
// idempotent and closes the event channel.
type Subscription struct {
	broker   *Broker
	deviceID string
	id       int
	ch       chan device.TelemetryEvent
	once     sync.Once
}

// NewBroker builds a broker whose subscriptions buffer up to bufferSize
// undelivered events.
func NewBroker(bufferSize int) *Broker {
	if bufferSize <= 0 {
		bufferSize = 16
	}
	return &Broker{
		subs:   make(map[string]map[int]*Subscription),
		buffer: bufferSize,
	}
}

// Subscribe registers interest in one device's telemetry.
func (b *Broker) Subscribe(deviceID string) *Subscription {
	return b.add(deviceID)
}

// SubscribeAll registers a firehose subscription receiving every device's
// events, used by export sinks.
func (b *Broker) SubscribeAll() *Subscription {
	return b.add(firehoseKey)
}

func (b *Broker) add(key string) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &Subscription{
		broker:   b,
		deviceID: key,
		id:       b.nextID,
		ch:       make(chan device.TelemetryEvent, b.buffer),
	}
	b.nextID++

	set := b.subs[key]
	if set == nil {
		set = make(map[int]*Subscription)
		b.subs[key] = set
	}
	set[sub.id] = sub
	return sub
}

// Publish delivers an event to every current subscriber of the device plus
// all firehose subscribers. Zero subscribers is a no-op. The read lock is
// held across the sends so Cancel's close cannot race a send.
func (b *Broker) Publish(deviceID string, ev device.TelemetryEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subs[deviceID] {
		select {
		case sub.ch <- ev:
		default: // full buffer: consumer is dead or stalled, drop
		}
	}
	for _, sub := range b.subs[firehoseKey] {
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

// SubscriberCount reports how many subscriptions are registered for a
// device (firehose subscribers excluded).
func (b *Broker) SubscriberCount(deviceID string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[deviceID])
}

// Events is the subscription's delivery channel. It is closed by Cancel.
func (s *Subscription) Events() <-chan device.TelemetryEvent {
	return s.ch
}

// Cancel removes the subscription and closes its channel. Safe to call any
// number of times; once it returns, no further events are delivered.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		b := s.broker
		b.mu.Lock()
		defer b.mu.Unlock()

		if set, ok := b.subs[s.deviceID]; ok {
			delete(set, s.id)
			if len(set) == 0 {
				delete(b.subs, s.deviceID)
			}
		}
		close(s.ch)
	})
}
