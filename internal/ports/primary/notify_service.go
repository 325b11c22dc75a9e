package primary

import "context"

// NotifyService defines the interface for outgoing notification use cases
type NotifyService interface {
	// NotifyAnnouncement emails an announcement to its audience, best effort.
	NotifyAnnouncement(ctx context.Context, announcementID string) error
	StartReminderScheduler() error
	StopReminderScheduler()
}

// ReconcileService keeps the cached club member counters consistent with the
// approved membership rows.
type ReconcileService interface {
	// ReconcileMemberCounts recomputes every club's member count and fixes
	// drift, returning the number of corrected clubs.
	ReconcileMemberCounts(ctx context.Context) (int, error)
	StartScheduler() error
	StopScheduler()
}
