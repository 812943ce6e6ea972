package service

import (
	"context"

	"github.com/aussiebroadwan/notitech/pkg/slogx"
)

// Notifier delivers recovery messages to a user's email address.
type Notifier interface {
	Send(ctx context.Context, email, subject, body string) error
}

// LogNotifier writes the message to the request logger instead of sending
// it. Useful in development and as the default until a mail relay exists.
type LogNotifier struct{}

func (LogNotifier) Send(ctx context.Context, email, subject, body string) error {
	slogx.FromContext(ctx).Info("notification", "to", email, "subject", subject, "body", body)
	return nil
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, email, subject, body string) error

func (f NotifierFunc) Send(ctx context.Context, email, subject, body string) error {
	return f(ctx, email, subject, body)
}
