package telemetry

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Publisher is the transport half of the exporter, satisfied by pkg/mqtt.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload []byte) error
}

// Exporter mirrors the telemetry feed to an external MQTT broker: one
// firehose subscription, one JSON message per event on
// <topicPrefix>/<deviceID>. It is only wired when a broker is configured.
type Exporter struct {
	broker      *Broker
	publisher   Publisher
	topicPrefix string
	log         *zap.Logger

	sub  *Subscription
	done chan struct{}
}

func NewExporter(broker *Broker, publisher Publisher, topicPrefix string, log *zap.Logger) *Exporter {
	if topicPrefix == "" {
		topicPrefix = "fleet/telemetry"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{
		broker:      broker,
		publisher:   publisher,
		topicPrefix: topicPrefix,
		log:         log,
		done:        make(chan struct{}),
	}
}

// Start subscribes to the firehose and forwards events until Stop.
func (e *Exporter) Start() {
	e.sub = e.broker.SubscribeAll()
	go e.forward()
	e.log.Info("Telemetry exporter started", zap.String("topic_prefix", e.topicPrefix))
}

// Stop cancels the firehose subscription and waits for the forwarder.
func (e *Exporter) Stop() {
	if e.sub == nil {
		return
	}
	e.sub.Cancel()
	<-e.done
}

func (e *Exporter) forward() {
	defer close(e.done)

	for ev := range e.sub.Events() {
		payload, err := json.Marshal(ev)
		if err != nil {
			e.log.Error("Failed to encode telemetry event", zap.Error(err))
			continue
		}
		topic := e.topicPrefix + "/" + ev.DeviceID
		if err := e.publisher.Publish(topic, 0, false, payload); err != nil {
			e.log.Warn("Failed to publish telemetry event",
				zap.String("topic", topic),
				zap.Error(err),
			)
		}
	}
}
