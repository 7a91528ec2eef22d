// Package memstore provides the process-lifetime in-memory stores backing
// the fleet console: the device registry, the command log, and the health
// snapshot store. Nothing here survives a restart.
package memstore

import (
	"sync"

	"fleet-console/internal/domain/device"
)

// DeviceRegistry holds the authoritative device set behind a RWMutex.
// Reads hand out deep copies; writes go through ApplyTelemetry so one
// device's fields always change as a unit.
type DeviceRegistry struct {
	mu      sync.RWMutex
	devices map[string]*device.Device
	order   []string
}

// NewDeviceRegistry builds a registry pre-populated with the given fleet.
// Listing order follows seed order.
func NewDeviceRegistry(seed []*device.Device) *DeviceRegistry {
	r := &DeviceRegistry{devices: make(map[string]*device.Device, len(seed))}
	for _, d := range seed {
		if _, dup := r.devices[d.ID]; dup {
			continue
		}
		r.devices[d.ID] = d.Clone()
		r.order = append(r.order, d.ID)
	}
	return r
}

// List returns a snapshot of all devices. Entries are deep copies; callers
// never observe simulator mutation mid-iteration.
func (r *DeviceRegistry) List() []*device.Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*device.Device, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.devices[id].Clone())
	}
	return out
}

// Get returns a copy of one device or device.ErrDeviceNotFound.
func (r *DeviceRegistry) Get(deviceID string) (*device.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.devices[deviceID]
	if !ok {
		return nil, device.ErrDeviceNotFound
	}
	return d.Clone(), nil
}

// ApplyTelemetry mutates the simulator-owned fields of one device as a
// single unit. Location fields are ignored for devices without a location.
func (r *DeviceRegistry) ApplyTelemetry(deviceID string, upd device.TelemetryUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.devices[deviceID]
	if !ok {
		return device.ErrDeviceNotFound
	}

	if upd.BatteryLevel != nil {
		d.BatteryLevel = *upd.BatteryLevel
	}
	if upd.LastSeenAt != nil {
		d.LastSeenAt = *upd.LastSeenAt
	}
	if d.Location != nil {
		if upd.Latitude != nil {
			d.Location.Latitude = *upd.Latitude
		}
		if upd.Longitude != nil {
			d.Location.Longitude = *upd.Longitude
		}
		if upd.LocationUpdatedAt != nil {
			d.Location.LastUpdated = *upd.LocationUpdatedAt
		}
	}
	return nil
}
