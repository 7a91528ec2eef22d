package telemetry

import "fleet-console/internal/domain/device"

// DeriveHealth grades a device's health from the latest telemetry sample.
func DeriveHealth(d *device.Device, ev device.TelemetryEvent) *device.HealthMetrics {
	return &device.HealthMetrics{
		DeviceID:        d.ID,
		BatteryHealth:   batteryHealth(d.BatteryLevel),
		StorageHealth:   storageHealth(ev.StorageFreeGb),
		NetworkHealth:   networkHealth(d.NetworkType),
		SecurityHealth:  securityHealth(d.ComplianceStatus),
		LastHealthCheck: ev.Timestamp,
	}
}

func batteryHealth(level float64) device.HealthRating {
	switch {
	case level > 50:
		return device.HealthGood
	case level > 20:
		return device.HealthFair
	case level > 10:
		return device.HealthPoor
	default:
		return device.HealthCritical
	}
}

func storageHealth(freeGb int) device.HealthRating {
	switch {
	case freeGb > 20:
		return device.HealthGood
	case freeGb > 10:
		return device.HealthFair
	case freeGb > 5:
		return device.HealthPoor
	default:
		return device.HealthCritical
	}
}

func networkHealth(network device.NetworkType) device.HealthRating {
	switch network {
	case device.NetworkNone:
		return device.HealthCritical
	case device.NetworkCellular:
		return device.HealthFair
	default:
		return device.HealthGood
	}
}

func securityHealth(compliance device.ComplianceStatus) device.HealthRating {
	if compliance == device.ComplianceCompliant {
		return device.HealthGood
	}
	return device.HealthPoor
}
