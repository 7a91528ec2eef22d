package device

// TelemetryUpdate is the subset of device fields the simulator may mutate on
// a tick. Nil fields are left untouched; the registry applies the update
// atomically per device.
type TelemetryUpdate struct {
	BatteryLevel      *float64
	LastSeenAt        *int64
	Latitude          *float64
	Longitude         *float64
	LocationUpdatedAt *int64
}

// Registry is the authoritative in-memory device set. List and Get return
// defensive copies; mutation is reserved to the simulator through
// ApplyTelemetry.
type Registry interface {
	List() []*Device
	Get(deviceID string) (*Device, error)
	ApplyTelemetry(deviceID string, upd TelemetryUpdate) error
}

// CommandLog is the append-only record of issued commands, newest-first.
type CommandLog interface {
	Append(cmd *Command) *Command
	ListFor(deviceID string) []*Command
}

// HealthStore holds the latest health snapshot per device.
type HealthStore interface {
	Put(metrics *HealthMetrics)
	Get(deviceID string) (*HealthMetrics, error)
}
