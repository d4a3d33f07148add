// Package sms dispatches one-time codes to mobile numbers. The gateway
// integration is stubbed: messages are logged, never sent.
package sms

import (
	"context"
	"fmt"

	"github.com/alumnet/backend/internal/pkg/logger"
)

// Dispatcher sends SMS messages
type Dispatcher interface {
	SendOTP(ctx context.Context, msisdn, code string) error
}

// LogDispatcher logs outgoing messages instead of sending them
type LogDispatcher struct{}

// NewLogDispatcher creates a dispatcher that only logs
func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

// SendOTP logs the OTP dispatch. A real integration would call the
// provider API here.
func (d *LogDispatcher) SendOTP(ctx context.Context, msisdn, code string) error {
	logger.Info("SMS dispatch",
		logger.String("msisdn", msisdn),
		logger.String("message", fmt.Sprintf("Your login code is %s. It expires in a few minutes.", code)),
	)
	return nil
}
