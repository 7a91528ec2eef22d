package device

import (
	domain "fleet-console/internal/domain/device"
)

// SubmitCommandRequest is the body of POST /devices/:id/commands.
type SubmitCommandRequest struct {
	Type    string                 `json:"type" validate:"required,command_type"`
	Payload *domain.CommandPayload `json:"payload"`
}

// DeviceListResponse wraps the full registry snapshot.
type DeviceListResponse struct {
	Devices []*domain.Device `json:"devices"`
}

// CommandResponse wraps one created command.
type CommandResponse struct {
	Command *domain.Command `json:"command"`
}

// CommandHistoryResponse wraps the newest-first command history.
type CommandHistoryResponse struct {
	Commands []*domain.Command `json:"commands"`
}
