package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/domain"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driven"
	"github.com/OsuohaNnamdi/admin-BRB-sub000/internal/core/ports/driving"
)

// Ensure ResourceService implements the interface.
var _ driving.ResourceService = (*ResourceService)(nil)

// ResourceService is a thin authenticated pass-through to admin resources.
type ResourceService struct {
	client driven.APIClient
}

// NewResourceService creates a new resource service.
func NewResourceService(client driven.APIClient) *ResourceService {
	return &ResourceService{client: client}
}

// List returns a resource collection.
func (s *ResourceService) List(
	ctx context.Context, kind domain.ResourceKind, query map[string]string,
) (json.RawMessage, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	var cfg *driven.RequestConfig
	if len(query) > 0 {
		cfg = &driven.RequestConfig{Query: query}
	}
	resp, err := s.client.Get(ctx, kind.CollectionPath(), cfg, true)
	return body(resp, err, "list %s", kind)
}

// Get returns a single item.
func (s *ResourceService) Get(ctx context.Context, kind domain.ResourceKind, id string) (json.RawMessage, error) {
	if err := checkItem(kind, id); err != nil {
		return nil, err
	}
	resp, err := s.client.Get(ctx, kind.ItemPath(id), nil, true)
	return body(resp, err, "get %s %s", kind, id)
}

// Create adds an item.
func (s *ResourceService) Create(ctx context.Context, kind domain.ResourceKind, payload any) (json.RawMessage, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	resp, err := s.client.Post(ctx, kind.CollectionPath(), payload, nil, true)
	return body(resp, err, "create %s", kind)
}

// Update replaces an item.
func (s *ResourceService) Update(
	ctx context.Context, kind domain.ResourceKind, id string, payload any,
) (json.RawMessage, error) {
	if err := checkItem(kind, id); err != nil {
		return nil, err
	}
	resp, err := s.client.Put(ctx, kind.ItemPath(id), payload, nil, true)
	return body(resp, err, "update %s %s", kind, id)
}

// Patch partially updates an item.
func (s *ResourceService) Patch(
	ctx context.Context, kind domain.ResourceKind, id string, payload any,
) (json.RawMessage, error) {
	if err := checkItem(kind, id); err != nil {
		return nil, err
	}
	resp, err := s.client.Patch(ctx, kind.ItemPath(id), payload, nil, true)
	return body(resp, err, "patch %s %s", kind, id)
}

// Delete removes an item.
func (s *ResourceService) Delete(ctx context.Context, kind domain.ResourceKind, id string) error {
	if err := checkItem(kind, id); err != nil {
		return err
	}
	_, err := s.client.Delete(ctx, kind.ItemPath(id), nil, true)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", kind, id, err)
	}
	return nil
}

func checkKind(kind domain.ResourceKind) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: resource %q", domain.ErrUnsupportedType, kind)
	}
	return nil
}

func checkItem(kind domain.ResourceKind, id string) error {
	if err := checkKind(kind); err != nil {
		return err
	}
	switch strings.Trim(id, "/ ") {
	case "":
		return fmt.Errorf("%w: %s id is required", domain.ErrInvalidInput, kind)
	case ".", "..":
		return fmt.Errorf("%w: invalid %s id %q", domain.ErrInvalidInput, kind, id)
	}
	return nil
}

// body returns the raw response body, or wraps err with the operation name.
// An empty 2xx body (e.g. 204) yields nil.
func body(resp *driven.Response, err error, format string, args ...any) (json.RawMessage, error) {
	if err != nil {
		return nil, fmt.Errorf(format+": %w", append(args, err)...)
	}
	if resp == nil || len(resp.Body) == 0 {
		return nil, nil
	}
	return json.RawMessage(resp.Body), nil
}
