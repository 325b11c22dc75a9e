package secondary

import "context"

// SMTPClient defines the interface for outgoing mail
type SMTPClient interface {
	Send(ctx context.Context, to, subject, body string) error
}
