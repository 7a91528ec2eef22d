package device

import "errors"

var (
	ErrDeviceNotFound = errors.New("device not found")
	ErrNoHealthData   = errors.New("no health data recorded for device")
)
