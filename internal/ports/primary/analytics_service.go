package primary

import (
	"context"

	"github.com/campushub/clubhub/internal/domain/dto"
)

// AnalyticsService defines the read-only dashboard rollups. Everything is
// recomputed from the store per request; absent data yields zero-valued
// buckets, never an error.
type AnalyticsService interface {
	Overview(ctx context.Context) (*dto.AnalyticsOverview, error)
	Events(ctx context.Context) (*dto.EventAnalytics, error)
	Students(ctx context.Context) (*dto.StudentAnalytics, error)
}
