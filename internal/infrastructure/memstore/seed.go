package memstore

import (
	"time"

	"fleet-console/internal/domain/device"
)

// SeedFleet returns the fixed demo fleet the registry is initialized with.
// Relative timestamps are anchored to process start.
func SeedFleet() []*device.Device {
	now := time.Now().UnixMilli()

	return []*device.Device{
		{
			ID:           "dev-001",
			Name:         "Kiosk Entrance",
			Model:        "Pixel 6",
			Owner:        "Lobby",
			OSVersion:    "Android 14",
			LastSeenAt:   now - 30_000,
			Status:       device.StatusOnline,
			BatteryLevel: 82,
			NetworkType:  device.NetworkWifi,
			IPAddress:    "10.0.0.21",
			Location: &device.Location{
				Latitude:    37.7749,
				Longitude:   -122.4194,
				Accuracy:    10,
				LastUpdated: now - 30_000,
			},
			ComplianceStatus: device.ComplianceCompliant,
			IsLostMode:       false,
			EnrollmentTime:   now - 30*24*time.Hour.Milliseconds(),
			PolicyName:       "Kiosk Policy",
			UserEmail:        "kiosk@company.com",
		},
		{
			ID:               "dev-002",
			Name:             "Warehouse Scanner",
			Model:            "Zebra TC52",
			Owner:            "Warehouse A",
			OSVersion:        "Android 12",
			LastSeenAt:       now - time.Hour.Milliseconds(),
			Status:           device.StatusOffline,
			BatteryLevel:     0,
			NetworkType:      device.NetworkNone,
			ComplianceStatus: device.ComplianceNonCompliant,
			IsLostMode:       false,
			EnrollmentTime:   now - 60*24*time.Hour.Milliseconds(),
			PolicyName:       "Warehouse Policy",
			UserEmail:        "warehouse@company.com",
		},
		{
			ID:           "dev-003",
			Name:         "Field Tablet",
			Model:        "Samsung Tab Active3",
			Owner:        "Field Team",
			OSVersion:    "Android 13",
			LastSeenAt:   now - 5_000,
			Status:       device.StatusOnline,
			BatteryLevel: 56,
			NetworkType:  device.NetworkCellular,
			IPAddress:    "172.16.5.42",
			Location: &device.Location{
				Latitude:    37.7849,
				Longitude:   -122.4094,
				Accuracy:    5,
				LastUpdated: now - 5_000,
			},
			ComplianceStatus: device.ComplianceCompliant,
			IsLostMode:       false,
			EnrollmentTime:   now - 15*24*time.Hour.Milliseconds(),
			PolicyName:       "Field Policy",
			UserEmail:        "field@company.com",
		},
		{
			ID:           "dev-004",
			Name:         "Lost Device",
			Model:        "Pixel 7",
			Owner:        "Sales Team",
			OSVersion:    "Android 14",
			LastSeenAt:   now - 2*time.Hour.Milliseconds(),
			Status:       device.StatusLost,
			BatteryLevel: 23,
			NetworkType:  device.NetworkCellular,
			Location: &device.Location{
				Latitude:    37.7649,
				Longitude:   -122.4294,
				Accuracy:    15,
				LastUpdated: now - 2*time.Hour.Milliseconds(),
			},
			ComplianceStatus: device.ComplianceCompliant,
			IsLostMode:       true,
			EnrollmentTime:   now - 45*24*time.Hour.Milliseconds(),
			PolicyName:       "Sales Policy",
			UserEmail:        "sales@company.com",
		},
	}
}
