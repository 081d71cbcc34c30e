// Package repository persists users and notes. Every note query is filtered
// by owner; a note owned by someone else is reported as ErrNotFound.
package repository

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound       = errors.New("document not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
