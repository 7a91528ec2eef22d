// Package device implements the fleet use cases: listing devices, issuing
// remote commands, and reading back history and health snapshots.
package device

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "fleet-console/internal/domain/device"
	appErrors "fleet-console/pkg/errors"
	"fleet-console/pkg/utils"
)

// Service implements the device use cases over the in-memory stores.
type Service struct {
	registry domain.Registry
	commands domain.CommandLog
	health   domain.HealthStore
	log      *zap.Logger
}

func NewService(registry domain.Registry, commands domain.CommandLog, health domain.HealthStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		registry: registry,
		commands: commands,
		health:   health,
		log:      log,
	}
}

// ListDevices returns the current fleet snapshot.
func (s *Service) ListDevices(ctx context.Context) []*domain.Device {
	return s.registry.List()
}

// GetDevice returns one device or domain.ErrDeviceNotFound.
func (s *Service) GetDevice(ctx context.Context, deviceID string) (*domain.Device, error) {
	return s.registry.Get(deviceID)
}

// SubmitCommand validates, mints, and appends a command for the device.
// Commands are recorded with status "sent"; no acknowledgement path exists
// in this core.
func (s *Service) SubmitCommand(ctx context.Context, deviceID string, req *SubmitCommandRequest) (*domain.Command, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("INVALID_COMMAND", "Invalid or missing command type", err)
	}

	if _, err := s.registry.Get(deviceID); err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	cmd := &domain.Command{
		ID:        newCommandID(now),
		DeviceID:  deviceID,
		Type:      domain.CommandType(req.Type),
		CreatedAt: now,
		Status:    domain.CommandSent,
		Payload:   req.Payload,
	}
	s.commands.Append(cmd)

	s.log.Info("Command issued",
		zap.String("command_id", cmd.ID),
		zap.String("device_id", deviceID),
		zap.String("type", req.Type),
	)

	return cmd, nil
}

// CommandHistory returns the device's commands newest-first. The device
// must exist; history for a known device with no commands is empty, not an
// error.
func (s *Service) CommandHistory(ctx context.Context, deviceID string) ([]*domain.Command, error) {
	if _, err := s.registry.Get(deviceID); err != nil {
		return nil, err
	}
	return s.commands.ListFor(deviceID), nil
}

// GetHealth returns the latest health snapshot for the device.
func (s *Service) GetHealth(ctx context.Context, deviceID string) (*domain.HealthMetrics, error) {
	if _, err := s.registry.Get(deviceID); err != nil {
		return nil, err
	}
	return s.health.Get(deviceID)
}

// newCommandID mints an identifier that is unique and orderable by creation
// time: cmd-<unix millis>-<random suffix>.
func newCommandID(nowMillis int64) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("cmd-%d-%s", nowMillis, suffix)
}
