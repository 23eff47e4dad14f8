// Package pager implements a lazy cursor over the paginated listings served
// by the Datatracker API. Listings arrive as Tastypie envelopes, a meta block
// carrying the next-page link and an objects array carrying the elements:
//
//	{"meta": {"next": "/api/v1/person/person/?limit=100&offset=100", ...},
//	 "objects": [...]}
//
// A Pager yields elements one at a time in remote order, fetching pages on
// demand. Pages are followed until the next link is null. A fetch or decode
// failure is terminal: the failed call and every later call return the same
// error. Next-link cycles and runaway listings are detected and fail with a
// categorized error instead of looping.
//
// A Pager is a single consumer cursor and is not safe for concurrent use.
// Abandoning one part way through a listing needs no cleanup.
package pager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"

	"github.com/csperkins/ietfdata-go/pkg/dterror"
)

// ErrDone is returned by Next when the listing is exhausted. Exhaustion is
// not a failure: a query matching nothing yields ErrDone on the first call.
var ErrDone = errors.New("pager: no more items")

// DefaultMaxPages bounds how many pages a single listing may span. The
// largest real Datatracker tables run to a few thousand pages; hitting this
// bound means the server is handing out next links that do not converge.
const DefaultMaxPages = 100000

// Page is one decoded page of a listing: the elements in remote order plus
// the relative path of the next page, empty when this page is the last.
type Page[T any] struct {
	Items []T
	Next  string
}

// FetchFunc retrieves and decodes the page at a relative path.
type FetchFunc[T any] func(ctx context.Context, path string) (Page[T], error)

// Option configures a Pager.
type Option func(*options)

type options struct {
	maxPages int
	prefetch bool
}

// WithMaxPages overrides DefaultMaxPages. Values below one are ignored.
func WithMaxPages(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxPages = n
		}
	}
}

// WithPrefetch fetches one page ahead of consumption. Ordering is unchanged.
// The prefetch in flight when a pager is abandoned finishes on its own and
// is discarded.
func WithPrefetch() Option {
	return func(o *options) { o.prefetch = true }
}

type pageResult[T any] struct {
	page Page[T]
	err  error
}

// Pager is a lazy cursor over one paginated listing.
type Pager[T any] struct {
	fetch    FetchFunc[T]
	start    string
	buf      []T
	next     string
	done     bool
	err      error
	visited  map[string]struct{}
	pages    int
	maxPages int
	prefetch bool
	pending  chan pageResult[T]
}

// New returns a cursor over the listing that starts at path. Nothing is
// fetched until the first call to Next.
func New[T any](path string, fetch FetchFunc[T], opts ...Option) *Pager[T] {
	o := options{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(&o)
	}
	p := &Pager[T]{
		fetch:    fetch,
		start:    path,
		next:     path,
		visited:  make(map[string]struct{}),
		maxPages: o.maxPages,
		prefetch: o.prefetch,
	}
	if path == "" {
		p.err = dterror.Validation("pager.Next", "", "empty listing path")
	}
	if fetch == nil {
		p.err = dterror.Validation("pager.Next", path, "nil fetch function")
	}
	return p
}

// Next returns the next element of the listing. It returns ErrDone once the
// listing is exhausted. Any other error is terminal and repeats on every
// later call.
func (p *Pager[T]) Next(ctx context.Context) (T, error) {
	var zero T
	for {
		if p.err != nil {
			return zero, p.err
		}
		if len(p.buf) > 0 {
			item := p.buf[0]
			p.buf = p.buf[1:]
			return item, nil
		}
		if p.done {
			return zero, ErrDone
		}
		if err := p.advance(ctx); err != nil {
			p.err = err
			return zero, err
		}
	}
}

// advance fetches the page at p.next, appends its elements to the buffer,
// and records the following link. The visited set and page bound run before
// the fetch so a cycle is reported rather than refetched.
func (p *Pager[T]) advance(ctx context.Context) error {
	path := p.next
	if _, seen := p.visited[path]; seen {
		return dterror.PaginationLoop("pager.Next", path, p.pages)
	}
	if p.pages >= p.maxPages {
		return dterror.PaginationLoop("pager.Next", path, p.pages)
	}
	p.visited[path] = struct{}{}

	page, err := p.load(ctx, path)
	if err != nil {
		return err
	}
	p.pages++
	p.buf = append(p.buf, page.Items...)
	p.next = page.Next
	if p.next == "" {
		p.done = true
	} else if p.prefetch {
		p.startPrefetch(ctx, p.next)
	}
	return nil
}

// load produces the page at path, consuming the in-flight prefetch when one
// was started for it.
func (p *Pager[T]) load(ctx context.Context, path string) (Page[T], error) {
	if p.pending == nil {
		return p.fetch(ctx, path)
	}
	ch := p.pending
	p.pending = nil
	select {
	case res := <-ch:
		return res.page, res.err
	case <-ctx.Done():
		return Page[T]{}, dterror.Fetch("pager.Next", path, ctx.Err())
	}
}

// startPrefetch begins fetching path in the background. The result channel
// is buffered so the goroutine exits as soon as the fetch returns, consumed
// or not.
func (p *Pager[T]) startPrefetch(ctx context.Context, path string) {
	ch := make(chan pageResult[T], 1)
	p.pending = ch
	go func() {
		page, err := p.fetch(ctx, path)
		ch <- pageResult[T]{page: page, err: err}
	}()
}

// All adapts the cursor for range-over-func iteration. Each element is
// yielded with a nil error; a terminal failure is yielded once, with the
// zero element, and ends the sequence. Exhaustion ends the sequence with no
// yield. Breaking out early is safe.
func (p *Pager[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			item, err := p.Next(ctx)
			if errors.Is(err, ErrDone) {
				return
			}
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Collect drains the listing into a slice. A terminal failure discards the
// partial result and returns the error.
func (p *Pager[T]) Collect(ctx context.Context) ([]T, error) {
	var items []T
	for {
		item, err := p.Next(ctx)
		if errors.Is(err, ErrDone) {
			return items, nil
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// First returns the first element of the listing. An exhausted listing maps
// to a not_found failure so lookup-by-key callers get one uniform outcome.
func (p *Pager[T]) First(ctx context.Context) (T, error) {
	item, err := p.Next(ctx)
	if errors.Is(err, ErrDone) {
		var zero T
		return zero, dterror.NotFound("pager.First", p.start)
	}
	return item, err
}

// DecodePage parses one Tastypie envelope into a Page. The envelope must
// carry both the meta block and the objects array; a body without them, such
// as a single entity document, is rejected.
func DecodePage[T any](data []byte) (Page[T], error) {
	var env struct {
		Meta *struct {
			Next *string `json:"next"`
		} `json:"meta"`
		Objects *[]T `json:"objects"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return Page[T]{}, fmt.Errorf("decoding paginated listing: %w", err)
	}
	if env.Meta == nil || env.Objects == nil {
		return Page[T]{}, errors.New("body is not a paginated listing (missing meta or objects)")
	}
	page := Page[T]{Items: *env.Objects}
	if env.Meta.Next != nil {
		page.Next = *env.Meta.Next
	}
	return page, nil
}
