package ports

import (
	"context"
	"wasi-apps/internal/domain"
)

// A RoutePlan as read back from storage.
type ArchivedRoute struct {
	RouteID    int64
	PointCount int
	Plan       domain.RoutePlan
}

// Port: a boundary for persisting solved routes.
type RouteArchive interface {
	// Store a solved route and return its identifier.
	Save(ctx context.Context, plan *domain.RoutePlan) (int64, error)
	// Retrieve the most recently solved routes, newest first.
	Recent(ctx context.Context, limit int) ([]ArchivedRoute, error)
}
