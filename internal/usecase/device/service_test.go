package device

import (
	"context"
	"errors"
	"testing"

	domain "fleet-console/internal/domain/device"
	"fleet-console/internal/infrastructure/memstore"
	appErrors "fleet-console/pkg/errors"
)

func newTestService() *Service {
	return NewService(
		memstore.NewDeviceRegistry(memstore.SeedFleet()),
		memstore.NewCommandLog(),
		memstore.NewHealthStore(),
		nil,
	)
}

func TestSubmitCommandRejectsInvalidType(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	for _, req := range []*SubmitCommandRequest{
		{Type: ""},
		{Type: "selfDestruct"},
	} {
		_, err := s.SubmitCommand(ctx, "dev-001", req)
		if err == nil {
			t.Fatalf("SubmitCommand(%q) succeeded, want validation error", req.Type)
		}
		var appErr *appErrors.AppError
		if !errors.As(err, &appErr) || appErr.Code != "INVALID_COMMAND" {
			t.Fatalf("SubmitCommand(%q) err = %v, want INVALID_COMMAND", req.Type, err)
		}
	}
}

func TestSubmitCommandUnknownDevice(t *testing.T) {
	s := newTestService()
	_, err := s.SubmitCommand(context.Background(), "dev-999", &SubmitCommandRequest{Type: "lock"})
	if !errors.Is(err, domain.ErrDeviceNotFound) {
		t.Fatalf("err = %v, want ErrDeviceNotFound", err)
	}
}

func TestSubmitCommandCreatesSentCommand(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	cmd, err := s.SubmitCommand(ctx, "dev-001", &SubmitCommandRequest{
		Type:    "showMessage",
		Payload: &domain.CommandPayload{Message: "return to lobby", Title: "Notice"},
	})
	if err != nil {
		t.Fatalf("SubmitCommand: %v", err)
	}
	if cmd.DeviceID != "dev-001" || cmd.Type != domain.CommandShowMessage {
		t.Errorf("command = %+v", cmd)
	}
	if cmd.Status != domain.CommandSent {
		t.Errorf("status = %s, want sent", cmd.Status)
	}
	if cmd.Payload == nil || cmd.Payload.Message != "return to lobby" {
		t.Errorf("payload not echoed: %+v", cmd.Payload)
	}
	if cmd.CreatedAt == 0 || cmd.ID == "" {
		t.Errorf("id/createdAt missing: %+v", cmd)
	}

	history, err := s.CommandHistory(ctx, "dev-001")
	if err != nil {
		t.Fatalf("CommandHistory: %v", err)
	}
	if len(history) != 1 || history[0].ID != cmd.ID {
		t.Fatalf("history = %+v, want the submitted command first", history)
	}
}

func TestCommandIDsAreUnique(t *testing.T) {
	s := newTestService()
	ctx := context.Background()

	seen := make(map[string]bool, 100)
	for i := 0; i < 100; i++ {
		cmd, err := s.SubmitCommand(ctx, "dev-001", &SubmitCommandRequest{Type: "lock"})
		if err != nil {
			t.Fatalf("SubmitCommand #%d: %v", i, err)
		}
		if seen[cmd.ID] {
			t.Fatalf("duplicate command id %s", cmd.ID)
		}
		seen[cmd.ID] = true
	}
}

func TestGetHealthBeforeFirstTick(t *testing.T) {
	s := newTestService()
	if _, err := s.GetHealth(context.Background(), "dev-001"); !errors.Is(err, domain.ErrNoHealthData) {
		t.Fatalf("err = %v, want ErrNoHealthData", err)
	}
	if _, err := s.GetHealth(context.Background(), "dev-999"); !errors.Is(err, domain.ErrDeviceNotFound) {
		t.Fatalf("err = %v, want ErrDeviceNotFound", err)
	}
}

func TestListDevicesReturnsSeededFleet(t *testing.T) {
	s := newTestService()
	devices := s.ListDevices(context.Background())
	if len(devices) != 4 {
		t.Fatalf("ListDevices returned %d, want 4", len(devices))
	}
}
