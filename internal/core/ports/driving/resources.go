package driving

import (
	"context"
	"encoding/json"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
)

// ResourceService performs authenticated CRUD against admin resources.
// Bodies follow the APIClient shape rules (a *driven.FormData uploads files).
type ResourceService interface {
	// List returns a resource collection, optionally filtered by query parameters.
	List(ctx context.Context, kind domain.ResourceKind, query map[string]string) (json.RawMessage, error)

	// Get returns a single item.
	Get(ctx context.Context, kind domain.ResourceKind, id string) (json.RawMessage, error)

	// Create adds an item.
	Create(ctx context.Context, kind domain.ResourceKind, body any) (json.RawMessage, error)

	// Update replaces an item.
	Update(ctx context.Context, kind domain.ResourceKind, id string, body any) (json.RawMessage, error)

	// Patch partially updates an item.
	Patch(ctx context.Context, kind domain.ResourceKind, id string, body any) (json.RawMessage, error)

	// Delete removes an item.
	Delete(ctx context.Context, kind domain.ResourceKind, id string) error
}
