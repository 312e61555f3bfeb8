package products

import (
	"context"

	"github.com/go-playground/validator/v10"
)

// Service sequences validation, lookup, merge, and persistence for every
// product operation. Calls are independent; no state crosses operations.
type Service struct {
	repo     Repository
	cache    *ViewCache
	validate *validator.Validate
}

// NewService constructs a Service. Collaborators are injected here; cache
// may be nil when no Redis is configured.
func NewService(repo Repository, cache *ViewCache) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		validate: newValidator(),
	}
}

// List returns every product as a view. An empty catalog is a valid result.
func (s *Service) List(ctx context.Context) ([]View, error) {
	var views []View
	err := s.cache.fetch(ctx, listKey(), &views, func(ctx context.Context) (any, error) {
		list, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		return ToViews(list), nil
	})
	if err != nil {
		return nil, err
	}
	if views == nil {
		views = []View{}
	}
	return views, nil
}

// Get returns the view for id, or ErrNotFound.
func (s *Service) Get(ctx context.Context, id int64) (View, error) {
	var view View
	err := s.cache.fetch(ctx, itemKey(id), &view, func(ctx context.Context) (any, error) {
		p, err := s.repo.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		return ToView(p), nil
	})
	if err != nil {
		return View{}, err
	}
	return view, nil
}

// Create validates the request, persists a draft, and returns the stored
// view. The store is never touched on a validation failure.
func (s *Service) Create(ctx context.Context, req CreateRequest) (View, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return View{}, err
	}
	created, err := s.repo.Create(ctx, ToEntity(req))
	if err != nil {
		return View{}, err
	}
	s.cache.Invalidate(ctx)
	return ToView(created), nil
}

// Update validates the patch, then checks existence, then merges and
// persists. Field rules run before the existence check so a malformed patch
// reports its violations even when the id is unknown.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (View, error) {
	if err := validateRequest(s.validate, req); err != nil {
		return View{}, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return View{}, err
	}
	updated, err := s.repo.Update(ctx, id, MergeUpdate(existing, req))
	if err != nil {
		return View{}, err
	}
	s.cache.Invalidate(ctx)
	return ToView(updated), nil
}

// Delete removes the product, or returns ErrNotFound if no record existed.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}
