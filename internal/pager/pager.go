package pager

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/blobflow/internal/common"
	"github.com/thirdweb-dev/blobflow/internal/metrics"
)

const DEFAULT_LIMIT = 10

var ErrInvalidLimit = errors.New("limit must be greater than zero")

// FetchFunc loads one page. Adapter methods such as Service.LatestBlocks fit directly.
type FetchFunc[T any] func(ctx context.Context, page, limit int) (common.PaginatedResponse[T], error)

// State is a point-in-time copy of the pager.
type State[T any] struct {
	Page       int
	Limit      int
	Data       []T
	Pagination common.Pagination
	IsLoading  bool
	Err        error
}

// Pager holds page/limit navigation state over a FetchFunc. Every transition
// starts a fetch cycle; only the most recently started cycle may write its
// result, older ones are dropped when they resolve.
type Pager[T any] struct {
	name  string
	fetch FetchFunc[T]

	mu         sync.Mutex
	state      State[T]
	generation uint64
}

type Option[T any] func(*Pager[T])

func WithLimit[T any](limit int) Option[T] {
	return func(p *Pager[T]) {
		if limit > 0 {
			p.state.Limit = limit
		}
	}
}

func WithPage[T any](page int) Option[T] {
	return func(p *Pager[T]) {
		p.state.Page = max(page, 1)
	}
}

func New[T any](name string, fetch FetchFunc[T], opts ...Option[T]) *Pager[T] {
	p := &Pager[T]{
		name:  name,
		fetch: fetch,
		state: State[T]{Page: 1, Limit: DEFAULT_LIMIT, Data: []T{}},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns a copy of the current state. The data slice is shared and must
// not be modified.
func (p *Pager[T]) State() State[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Pager[T]) NextPage(ctx context.Context) error {
	return p.transition(ctx, func(s *State[T]) {
		s.Page++
	})
}

// PrevPage never moves below page 1.
func (p *Pager[T]) PrevPage(ctx context.Context) error {
	return p.transition(ctx, func(s *State[T]) {
		s.Page = max(s.Page-1, 1)
	})
}

func (p *Pager[T]) GoToPage(ctx context.Context, page int) error {
	return p.transition(ctx, func(s *State[T]) {
		s.Page = max(page, 1)
	})
}

// ChangeLimit sets the page size and returns to page 1.
func (p *Pager[T]) ChangeLimit(ctx context.Context, limit int) error {
	if limit <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}
	return p.transition(ctx, func(s *State[T]) {
		s.Limit = limit
		s.Page = 1
	})
}

// Refetch reloads the current page without changing navigation state.
func (p *Pager[T]) Refetch(ctx context.Context) error {
	return p.transition(ctx, func(*State[T]) {})
}

// Reset returns to page 1 and replaces the fetch function, used when the
// selected network changes and every view reloads from scratch.
func (p *Pager[T]) Reset(ctx context.Context, fetch FetchFunc[T]) error {
	p.mu.Lock()
	if fetch != nil {
		p.fetch = fetch
	}
	p.state.Data = []T{}
	p.state.Pagination = common.Pagination{}
	p.mu.Unlock()

	return p.transition(ctx, func(s *State[T]) {
		s.Page = 1
	})
}

func (p *Pager[T]) transition(ctx context.Context, apply func(*State[T])) error {
	p.mu.Lock()
	apply(&p.state)
	p.generation++
	token := p.generation
	page, limit := p.state.Page, p.state.Limit
	fetch := p.fetch
	p.state.IsLoading = true
	p.state.Err = nil
	p.mu.Unlock()

	resp, err := fetch(ctx, page, limit)

	p.mu.Lock()
	defer p.mu.Unlock()

	if token != p.generation {
		metrics.PagerStaleResponses.Inc()
		metrics.PagerFetches.WithLabelValues("stale").Inc()
		log.Debug().Str("pager", p.name).Uint64("token", token).Uint64("latest", p.generation).Int("page", page).Msg("Discarding stale page result")
		return err
	}

	p.state.IsLoading = false
	if err != nil {
		metrics.PagerFetches.WithLabelValues("error").Inc()
		log.Error().Err(err).Str("pager", p.name).Int("page", page).Int("limit", limit).Msg("Failed to fetch page")
		// keep the last successful data visible
		p.state.Err = err
		return err
	}

	metrics.PagerFetches.WithLabelValues("success").Inc()
	data := resp.Data
	if data == nil {
		data = []T{}
	}
	p.state.Data = data
	p.state.Pagination = resp.Pagination
	return nil
}
