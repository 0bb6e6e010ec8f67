package client

import (
	"context"
	"sync"

	"quiz-catalog-service/internal/domain"
)

// QuizFetcher loads one catalog page for a pre-encoded query string.
type QuizFetcher interface {
	FetchQuizzes(ctx context.Context, rawQuery string) ([]domain.Quiz, error)
}

// Pager sequences incremental page loads for the quiz listing. Page 0
// means nothing is loaded; each successful fetch advances the page
// monotonically and appends to the accumulated results.
//
// Overlapping scroll-threshold triggers are absorbed two ways: a request
// for a page at or below the current one is a no-op, and FetchNextPage
// does nothing while another fetch is in flight. A FetchFirstPage issued
// mid-flight is different: it is a restart, not a duplicate, so it resets
// the accumulation immediately and bumps the pager's generation; the
// superseded in-flight response resolves against the old generation and is
// discarded. Only an identical first-page request already in flight is
// deduplicated. Each request also carries the query fingerprint it was
// issued under; if the search text or filters change while the request is
// in flight, the late response is discarded instead of being merged into
// results it no longer belongs to.
//
// The pager does not watch QueryState: after any search or filter
// mutation the caller must start over with FetchFirstPage.
type Pager struct {
	query   *QueryState
	fetcher QuizFetcher

	mu       sync.Mutex
	gen      int
	page     int
	lastPage bool
	loading  bool
	inflight string
	quizzes  []domain.Quiz
}

func NewPager(query *QueryState, fetcher QuizFetcher) *Pager {
	return &Pager{query: query, fetcher: fetcher}
}

// FetchFirstPage discards accumulated results and loads page 1 under the
// current query state. The reset takes effect before the fetch, so even
// when a superseded fetch is still in flight the old-filter results are
// gone the moment the restart is requested. On failure the pager is left
// empty at page 0, matching a fresh listing that failed to load.
func (p *Pager) FetchFirstPage(ctx context.Context) error {
	p.mu.Lock()
	rawQuery := p.query.QueryString(1)
	if p.loading && p.inflight == rawQuery {
		p.mu.Unlock()
		return nil
	}
	p.gen++
	gen := p.gen
	p.page = 0
	p.lastPage = false
	p.quizzes = nil
	p.loading = true
	p.inflight = rawQuery
	fingerprint := p.query.Fingerprint()
	p.mu.Unlock()

	results, err := p.fetcher.FetchQuizzes(ctx, rawQuery)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		// A newer restart owns the pager now.
		return nil
	}
	p.loading = false
	if err != nil {
		return err
	}
	if fingerprint != p.query.Fingerprint() {
		return nil
	}
	p.quizzes = results
	p.page = 1
	p.lastPage = len(results) < PageSize
	return nil
}

// FetchNextPage loads the requested page and appends its results. It is a
// silent no-op when nothing is loaded yet, when the last page is already
// loaded, when the requested page is not beyond the current one, or while
// another fetch is in flight. On failure previously loaded pages stay
// intact.
func (p *Pager) FetchNextPage(ctx context.Context, requested int) error {
	p.mu.Lock()
	if p.page == 0 || p.lastPage || requested <= p.page || p.loading {
		p.mu.Unlock()
		return nil
	}
	gen := p.gen
	p.loading = true
	fingerprint := p.query.Fingerprint()
	rawQuery := p.query.QueryString(requested)
	p.inflight = rawQuery
	p.mu.Unlock()

	results, err := p.fetcher.FetchQuizzes(ctx, rawQuery)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		return nil
	}
	p.loading = false
	if err != nil {
		return err
	}
	if fingerprint != p.query.Fingerprint() {
		return nil
	}
	p.quizzes = append(p.quizzes, results...)
	p.page = requested
	p.lastPage = len(results) < PageSize
	return nil
}

// Quizzes returns a copy of the accumulated results.
func (p *Pager) Quizzes() []domain.Quiz {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Quiz, len(p.quizzes))
	copy(out, p.quizzes)
	return out
}

// Page returns the last fully loaded page index, 0 when none is loaded.
func (p *Pager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// IsLastPage reports whether the final page of the series is loaded.
func (p *Pager) IsLastPage() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastPage
}

// Loading reports whether a fetch is in flight.
func (p *Pager) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}
