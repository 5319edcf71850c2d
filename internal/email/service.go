package email

import "context"

// Service sends transactional mail. Senders are best-effort; callers log
// and continue on failure.
type Service interface {
	SendWelcome(ctx context.Context, to string, name string) error
}
