package service

import (
	"context"

	"github.com/pkg/errors"
)

// ErrDeviceTokenInvalid is returned by Send when the push provider no longer
// knows the token.
var ErrDeviceTokenInvalid = errors.New("device token is not registered")

// StaffAlert is a push notification shown on staff devices.
type StaffAlert struct {
	Title string
	Body  string
	Data  map[string]string
}

// AlertReport is the outcome of one multicast.
type AlertReport struct {
	Sent   int
	Failed int
	// InvalidTokens failed because the device is gone. They should be deactivated.
	InvalidTokens []string
}

// NotificationService pushes alerts to staff devices.
type NotificationService interface {
	// Multicast sends alert to every token.
	Multicast(ctx context.Context, tokens []string, alert *StaffAlert) (*AlertReport, error)

	// Send sends alert to a single device.
	Send(ctx context.Context, token string, alert *StaffAlert) error
}
