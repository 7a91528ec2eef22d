package memstore

import (
	"sync"

	"fleet-console/internal/domain/device"
)

// HealthStore keeps the latest health snapshot per device. Each tick
// overwrites the previous snapshot wholesale.
type HealthStore struct {
	mu      sync.RWMutex
	metrics map[string]*device.HealthMetrics
}

func NewHealthStore() *HealthStore {
	return &HealthStore{metrics: make(map[string]*device.HealthMetrics)}
}

func (s *HealthStore) Put(m *device.HealthMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *m
	s.metrics[m.DeviceID] = &cp
}

// Get returns a copy of the latest snapshot, or device.ErrNoHealthData if
// the device has not been ticked yet.
func (s *HealthStore) Get(deviceID string) (*device.HealthMetrics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.metrics[deviceID]
	if !ok {
		return nil, device.ErrNoHealthData
	}
	cp := *m
	return &cp, nil
}
