// Package mocks provides hand-rolled function-field mocks for the store
// interfaces, used by handler and service tests.
package mocks

import (
	"context"

	"github.com/refarch/movies-api/internal/domain"
	"github.com/refarch/movies-api/internal/store"
)

// MovieStore is a mock implementation of store.MovieStore. Each method
// delegates to the corresponding function field when set and is a no-op
// returning zero values otherwise.
type MovieStore struct {
	CreateFn  func(ctx context.Context, movie *domain.Movie) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Movie, error)
	ListFn    func(ctx context.Context, params store.ListParams) ([]*domain.Movie, int, error)
	UpdateFn  func(ctx context.Context, movie *domain.Movie) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Calls counts invocations per method, letting tests assert that a
	// failed validation gate produced no store traffic.
	Calls struct {
		Create  int
		GetByID int
		List    int
		Update  int
		Delete  int
	}
}

var _ store.MovieStore = (*MovieStore)(nil)

// Create implements store.MovieStore
func (m *MovieStore) Create(ctx context.Context, movie *domain.Movie) error {
	m.Calls.Create++
	if m.CreateFn != nil {
		return m.CreateFn(ctx, movie)
	}
	return nil
}

// GetByID implements store.MovieStore
func (m *MovieStore) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	m.Calls.GetByID++
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, nil
}

// List implements store.MovieStore
func (m *MovieStore) List(ctx context.Context, params store.ListParams) ([]*domain.Movie, int, error) {
	m.Calls.List++
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, 0, nil
}

// Update implements store.MovieStore
func (m *MovieStore) Update(ctx context.Context, movie *domain.Movie) error {
	m.Calls.Update++
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, movie)
	}
	return nil
}

// Delete implements store.MovieStore
func (m *MovieStore) Delete(ctx context.Context, id int64) error {
	m.Calls.Delete++
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}
