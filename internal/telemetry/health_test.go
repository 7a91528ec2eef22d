package telemetry

import (
	"testing"

	"fleet-console/internal/domain/device"
)

func TestDeriveHealthWorstCase(t *testing.T) {
	d := &device.Device{
		ID:               "dev-001",
		BatteryLevel:     5,
		NetworkType:      device.NetworkNone,
		ComplianceStatus: device.ComplianceNonCompliant,
	}
	ev := device.TelemetryEvent{
		DeviceID:      "dev-001",
		Timestamp:     1234,
		StorageFreeGb: 3,
	}

	m := DeriveHealth(d, ev)

	if m.BatteryHealth != device.HealthCritical {
		t.Errorf("batteryHealth = %s, want critical", m.BatteryHealth)
	}
	if m.StorageHealth != device.HealthCritical {
		t.Errorf("storageHealth = %s, want critical", m.StorageHealth)
	}
	if m.NetworkHealth != device.HealthCritical {
		t.Errorf("networkHealth = %s, want critical", m.NetworkHealth)
	}
	if m.SecurityHealth != device.HealthPoor {
		t.Errorf("securityHealth = %s, want poor", m.SecurityHealth)
	}
	if m.LastHealthCheck != 1234 {
		t.Errorf("lastHealthCheck = %d, want 1234", m.LastHealthCheck)
	}
}

func TestBatteryHealthThresholds(t *testing.T) {
	cases := []struct {
		level float64
		want  device.HealthRating
	}{
		{100, device.HealthGood},
		{50.5, device.HealthGood},
		{50, device.HealthFair},
		{21, device.HealthFair},
		{20, device.HealthPoor},
		{10.5, device.HealthPoor},
		{10, device.HealthCritical},
		{0, device.HealthCritical},
	}
	for _, tc := range cases {
		if got := batteryHealth(tc.level); got != tc.want {
			t.Errorf("batteryHealth(%v) = %s, want %s", tc.level, got, tc.want)
		}
	}
}

func TestStorageHealthThresholds(t *testing.T) {
	cases := []struct {
		freeGb int
		want   device.HealthRating
	}{
		{32, device.HealthGood},
		{21, device.HealthGood},
		{20, device.HealthFair},
		{11, device.HealthFair},
		{10, device.HealthPoor},
		{6, device.HealthPoor},
		{5, device.HealthCritical},
		{0, device.HealthCritical},
	}
	for _, tc := range cases {
		if got := storageHealth(tc.freeGb); got != tc.want {
			t.Errorf("storageHealth(%d) = %s, want %s", tc.freeGb, got, tc.want)
		}
	}
}

func TestNetworkAndSecurityHealth(t *testing.T) {
	if got := networkHealth(device.NetworkNone); got != device.HealthCritical {
		t.Errorf("networkHealth(none) = %s, want critical", got)
	}
	if got := networkHealth(device.NetworkCellular); got != device.HealthFair {
		t.Errorf("networkHealth(cellular) = %s, want fair", got)
	}
	if got := networkHealth(device.NetworkWifi); got != device.HealthGood {
		t.Errorf("networkHealth(wifi) = %s, want good", got)
	}
	if got := networkHealth(device.NetworkEthernet); got != device.HealthGood {
		t.Errorf("networkHealth(ethernet) = %s, want good", got)
	}

	if got := securityHealth(device.ComplianceCompliant); got != device.HealthGood {
		t.Errorf("securityHealth(compliant) = %s, want good", got)
	}
	for _, status := range []device.ComplianceStatus{
		device.ComplianceNonCompliant, device.CompliancePending, device.ComplianceUnknown,
	} {
		if got := securityHealth(status); got != device.HealthPoor {
			t.Errorf("securityHealth(%s) = %s, want poor", status, got)
		}
	}
}
