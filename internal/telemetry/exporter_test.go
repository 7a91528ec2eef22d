package telemetry

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"fleet-console/internal/domain/device"
)

type capturePublisher struct {
	mu       sync.Mutex
	messages map[string][][]byte
}

func (p *capturePublisher) Publish(topic string, qos byte, retained bool, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.messages == nil {
		p.messages = make(map[string][][]byte)
	}
	p.messages[topic] = append(p.messages[topic], payload)
	return nil
}

func (p *capturePublisher) get(topic string) [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.messages[topic]
}

func TestExporterForwardsEveryDevice(t *testing.T) {
	b := NewBroker(8)
	pub := &capturePublisher{}
	exp := NewExporter(b, pub, "fleet/telemetry", nil)
	exp.Start()

	b.Publish("dev-001", event("dev-001", 1))
	b.Publish("dev-002", event("dev-002", 2))

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if len(pub.get("fleet/telemetry/dev-001")) == 1 && len(pub.get("fleet/telemetry/dev-002")) == 1 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	msgs := pub.get("fleet/telemetry/dev-001")
	if len(msgs) != 1 {
		t.Fatalf("dev-001 topic got %d messages, want 1", len(msgs))
	}
	var ev device.TelemetryEvent
	if err := json.Unmarshal(msgs[0], &ev); err != nil {
		t.Fatalf("payload is not a TelemetryEvent: %v", err)
	}
	if ev.DeviceID != "dev-001" || ev.Timestamp != 1 {
		t.Fatalf("unexpected payload %+v", ev)
	}

	exp.Stop()

	// After Stop the firehose is gone; nothing further is forwarded.
	b.Publish("dev-001", event("dev-001", 3))
	time.Sleep(20 * time.Millisecond)
	if got := len(pub.get("fleet/telemetry/dev-001")); got != 1 {
		t.Fatalf("exporter forwarded after Stop: %d messages", got)
	}
}
