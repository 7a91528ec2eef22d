// Package telemetry contains the telemetry distribution core: the periodic
// simulator that advances device state, the broker fanning derived events
// out to live subscribers, and the optional MQTT exporter.
package telemetry

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"fleet-console/internal/domain/device"
)

// Simulator is the process-wide periodic task that mutates device state and
// publishes one telemetry event plus one health snapshot per active device
// per tick. It is lazily started by the first stream connection and runs
// for the life of the process.
type Simulator struct {
	registry device.Registry
	health   device.HealthStore
	broker   *Broker
	interval time.Duration
	log      *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand

	startOnce sync.Once
	ctx       context.Context
	cancel    context.CancelFunc
}

// NewSimulator builds a simulator ticking at the given interval with a
// seeded random source, so runs are reproducible under test.
func NewSimulator(registry device.Registry, health device.HealthStore, broker *Broker, interval time.Duration, seed int64, log *zap.Logger) *Simulator {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Simulator{
		registry: registry,
		health:   health,
		broker:   broker,
		interval: interval,
		log:      log,
		rng:      rand.New(rand.NewSource(seed)),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// EnsureStarted launches the tick loop exactly once. Any number of
// concurrent callers observe a single running loop; all but the first are
// no-ops.
func (s *Simulator) EnsureStarted() {
	s.startOnce.Do(func() {
		s.log.Info("Telemetry simulator starting",
			zap.Duration("interval", s.interval),
		)
		go s.run()
	})
}

// Stop cancels the tick loop. There is no stop in the serving path; this
// exists only for graceful process shutdown.
func (s *Simulator) Stop() {
	s.cancel()
}

func (s *Simulator) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			s.Tick(now.UnixMilli())
		case <-s.ctx.Done():
			s.log.Info("Telemetry simulator stopped")
			return
		}
	}
}

// Tick advances every non-offline device once: mutate the registry, derive
// event and health, store the snapshot, then publish. A failure on one
// device never aborts the rest of the tick.
func (s *Simulator) Tick(now int64) {
	for _, d := range s.registry.List() {
		if d.Status == device.StatusOffline {
			continue
		}
		if err := s.tickDevice(d, now); err != nil {
			s.log.Error("Device tick failed",
				zap.String("device_id", d.ID),
				zap.Error(err),
			)
		}
	}
}

func (s *Simulator) tickDevice(d *device.Device, now int64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Device tick panicked",
				zap.String("device_id", d.ID),
				zap.Any("panic", r),
			)
		}
	}()

	battery := clamp(d.BatteryLevel+s.uniform(-1, 1), 0, 100)
	upd := device.TelemetryUpdate{
		BatteryLevel: &battery,
		LastSeenAt:   &now,
	}

	// d is a registry snapshot; keep it in step with the update so the
	// published event reflects post-tick state.
	d.BatteryLevel = battery
	d.LastSeenAt = now

	if d.Location != nil && d.Status == device.StatusOnline {
		lat := d.Location.Latitude + s.uniform(-0.0005, 0.0005)
		lng := d.Location.Longitude + s.uniform(-0.0005, 0.0005)
		upd.Latitude = &lat
		upd.Longitude = &lng
		upd.LocationUpdatedAt = &now

		d.Location.Latitude = lat
		d.Location.Longitude = lng
		d.Location.LastUpdated = now
	}

	if err := s.registry.ApplyTelemetry(d.ID, upd); err != nil {
		return err
	}

	ev := device.TelemetryEvent{
		DeviceID:         d.ID,
		Timestamp:        now,
		BatteryLevel:     int(math.Round(battery)),
		NetworkType:      d.NetworkType,
		CPULoadPct:       int(math.Round(s.uniform(20, 80))),
		StorageFreeGb:    int(math.Round(s.uniform(4, 32))),
		Location:         d.Location,
		IsLostMode:       d.IsLostMode,
		ComplianceStatus: d.ComplianceStatus,
	}

	s.health.Put(DeriveHealth(d, ev))
	s.broker.Publish(d.ID, ev)
	return nil
}

// uniform draws from [min, max). The lock keeps the shared source safe when
// a test drives Tick directly while the loop runs.
func (s *Simulator) uniform(min, max float64) float64 {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return min + s.rng.Float64()*(max-min)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
