// Package notify delivers messages meant for the school office.
package notify

import (
	"context"
	"log"
)

type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Log writes notifications to a logger. It is the fallback when no chat
// integration is configured.
type Log struct {
	Logger *log.Logger
}

func (l Log) Notify(_ context.Context, text string) error {
	if l.Logger == nil {
		log.Printf("notify: %s", text)
		return nil
	}
	l.Logger.Printf("notify: %s", text)
	return nil
}
