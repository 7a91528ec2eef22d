package device

// DeviceStatus represents the connectivity/management state of a device.
type DeviceStatus string

const (
	StatusOnline       DeviceStatus = "online"
	StatusOffline      DeviceStatus = "offline"
	StatusRestricted   DeviceStatus = "restricted"
	StatusUnknown      DeviceStatus = "unknown"
	StatusLost         DeviceStatus = "lost"
	StatusNonCompliant DeviceStatus = "non_compliant"
)

// ComplianceStatus classifies policy adherence, independent of connectivity.
type ComplianceStatus string

const (
	ComplianceCompliant    ComplianceStatus = "compliant"
	ComplianceNonCompliant ComplianceStatus = "non_compliant"
	CompliancePending      ComplianceStatus = "pending"
	ComplianceUnknown      ComplianceStatus = "unknown"
)

// NetworkType represents the active network interface of a device.
type NetworkType string

const (
	NetworkWifi     NetworkType = "wifi"
	NetworkCellular NetworkType = "cellular"
	NetworkEthernet NetworkType = "ethernet"
	NetworkNone     NetworkType = "none"
)

// Location is the last reported position of a device. Timestamps are epoch
// milliseconds here and everywhere else on the wire.
type Location struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Accuracy    float64 `json:"accuracy"`
	LastUpdated int64   `json:"lastUpdated"`
}

// Device is one managed unit in the fleet.
type Device struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Model            string           `json:"model"`
	Owner            string           `json:"owner"`
	OSVersion        string           `json:"osVersion"`
	LastSeenAt       int64            `json:"lastSeenAt"`
	Status           DeviceStatus     `json:"status"`
	BatteryLevel     float64          `json:"batteryLevel"`
	NetworkType      NetworkType      `json:"networkType"`
	IPAddress        string           `json:"ipAddress,omitempty"`
	Location         *Location        `json:"location,omitempty"`
	ComplianceStatus ComplianceStatus `json:"complianceStatus"`
	IsLostMode       bool             `json:"isLostMode"`
	EnrollmentTime   int64            `json:"enrollmentTime"`
	PolicyName       string           `json:"policyName,omitempty"`
	UserEmail        string           `json:"userEmail,omitempty"`
}

// Clone returns a deep copy so registry snapshots cannot alias live state.
func (d *Device) Clone() *Device {
	cp := *d
	if d.Location != nil {
		loc := *d.Location
		cp.Location = &loc
	}
	return &cp
}

// TelemetryEvent is one ephemeral snapshot of a device's dynamic metrics,
// derived per simulator tick. It is never stored; it only travels to
// subscribers at emission time.
type TelemetryEvent struct {
	DeviceID         string           `json:"deviceId"`
	Timestamp        int64            `json:"timestamp"`
	BatteryLevel     int              `json:"batteryLevel"`
	NetworkType      NetworkType      `json:"networkType"`
	CPULoadPct       int              `json:"cpuLoadPct"`
	StorageFreeGb    int              `json:"storageFreeGb"`
	Location         *Location        `json:"location,omitempty"`
	IsLostMode       bool             `json:"isLostMode"`
	ComplianceStatus ComplianceStatus `json:"complianceStatus"`
}

// HealthRating grades one health dimension of a device.
type HealthRating string

const (
	HealthGood     HealthRating = "good"
	HealthFair     HealthRating = "fair"
	HealthPoor     HealthRating = "poor"
	HealthCritical HealthRating = "critical"
)

// HealthMetrics is the latest-value-wins health snapshot for a device,
// overwritten wholesale on every tick.
type HealthMetrics struct {
	DeviceID        string       `json:"deviceId"`
	BatteryHealth   HealthRating `json:"batteryHealth"`
	StorageHealth   HealthRating `json:"storageHealth"`
	NetworkHealth   HealthRating `json:"networkHealth"`
	SecurityHealth  HealthRating `json:"securityHealth"`
	LastHealthCheck int64        `json:"lastHealthCheck"`
}

// CommandType identifies a remote administration action.
type CommandType string

const (
	CommandLock            CommandType = "lock"
	CommandReboot          CommandType = "reboot"
	CommandWipe            CommandType = "wipe"
	CommandShowMessage     CommandType = "showMessage"
	CommandEnableLostMode  CommandType = "enableLostMode"
	CommandDisableLostMode CommandType = "disableLostMode"
	CommandResetPassword   CommandType = "resetPassword"
	CommandClearAppData    CommandType = "clearAppData"
)

// CommandStatus tracks delivery state of an issued command. In this core
// every command is created "sent" and never transitions further.
type CommandStatus string

const (
	CommandPending      CommandStatus = "pending"
	CommandSent         CommandStatus = "sent"
	CommandAcknowledged CommandStatus = "acknowledged"
	CommandError        CommandStatus = "error"
	CommandQueued       CommandStatus = "queued"
)

// CommandPayload carries the optional arguments of a command.
type CommandPayload struct {
	Message    string `json:"message,omitempty"`
	Title      string `json:"title,omitempty"`
	Password   string `json:"password,omitempty"`
	AppPackage string `json:"appPackage,omitempty"`
}

// Command is one record in the append-only command log.
type Command struct {
	ID           string          `json:"id"`
	DeviceID     string          `json:"deviceId"`
	Type         CommandType     `json:"type"`
	CreatedAt    int64           `json:"createdAt"`
	Status       CommandStatus   `json:"status"`
	Payload      *CommandPayload `json:"payload,omitempty"`
	ExecutedAt   int64           `json:"executedAt,omitempty"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
}
