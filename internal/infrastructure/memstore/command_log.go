package memstore

import (
	"sync"

	"fleet-console/internal/domain/device"
)

// CommandLog is the append-only record of issued commands. New entries are
// stored at the head, so retrieval order is newest-first without sorting.
type CommandLog struct {
	mu       sync.RWMutex
	commands []*device.Command
}

func NewCommandLog() *CommandLog {
	return &CommandLog{}
}

// Append stores the command at the head of the log and returns it unchanged.
func (l *CommandLog) Append(cmd *device.Command) *device.Command {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.commands = append([]*device.Command{cmd}, l.commands...)
	return cmd
}

// ListFor returns all commands for a device in log order (newest-first).
// Unknown devices yield an empty slice, not an error.
func (l *CommandLog) ListFor(deviceID string) []*device.Command {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*device.Command, 0)
	for _, c := range l.commands {
		if c.DeviceID == deviceID {
			out = append(out, c)
		}
	}
	return out
}
