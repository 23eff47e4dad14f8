package datatracker

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/csperkins/ietfdata-go/pkg/dterror"
	"github.com/csperkins/ietfdata-go/pkg/dturi"
)

// Validity is the half-open interval [From, To) during which one snapshot
// was the entity's state. A zero To marks an open-ended range: the snapshot
// is still in force.
type Validity struct {
	From time.Time
	To   time.Time
}

// Open reports whether the range has no end bound.
func (v Validity) Open() bool { return v.To.IsZero() }

// Contains reports whether ts falls inside the range. The start is
// inclusive, the end exclusive.
func (v Validity) Contains(ts time.Time) bool {
	if ts.Before(v.From) {
		return false
	}
	return v.Open() || ts.Before(v.To)
}

// Snapshot is one validity-bounded state of an entity.
type Snapshot[T any] struct {
	Validity Validity
	Record   T
}

// History is the recorded state sequence of one entity, earliest first. The
// snapshots of a well-formed history have contiguous, non-overlapping
// ranges, and only the newest is open-ended.
type History[T any] struct {
	// Identity is the stable identifier the snapshots are states of.
	Identity  dturi.URI
	Snapshots []Snapshot[T]
}

// NewHistory assembles a history from snapshots supplied in any order.
func NewHistory[T any](identity dturi.URI, snapshots []Snapshot[T]) History[T] {
	h := History[T]{Identity: identity, Snapshots: slices.Clone(snapshots)}
	slices.SortStableFunc(h.Snapshots, func(a, b Snapshot[T]) int {
		return a.Validity.From.Compare(b.Validity.From)
	})
	return h
}

func (h History[T]) resource() string {
	if h.Identity == nil {
		return ""
	}
	return h.Identity.Path()
}

// At returns the snapshot in force at ts. It fails with a not_found error
// when ts precedes the first snapshot or lands in a gap between ranges.
func (h History[T]) At(ts time.Time) (Snapshot[T], error) {
	for _, s := range h.Snapshots {
		if s.Validity.Contains(ts) {
			return s, nil
		}
	}
	return Snapshot[T]{}, dterror.NotFound("history.At", h.resource())
}

// Current returns the single open-ended snapshot. Zero or several open
// ranges mean the recorded history is corrupt; that is reported rather than
// resolved silently.
func (h History[T]) Current() (Snapshot[T], error) {
	var (
		current Snapshot[T]
		open    int
	)
	for _, s := range h.Snapshots {
		if s.Validity.Open() {
			if open == 0 {
				current = s
			}
			open++
		}
	}
	if open != 1 {
		msg := fmt.Sprintf("%d open-ended snapshots, want exactly 1", open)
		if r := h.resource(); r != "" {
			msg = r + ": " + msg
		}
		return Snapshot[T]{}, dterror.Invariant("history.Current", msg, nil)
	}
	return current, nil
}

// Validate checks the contiguity invariant: each range ends where the next
// begins, and an open-ended range appears only in last position. An empty
// history is valid. Every violation is reported, not just the first.
func (h History[T]) Validate() error {
	var errs *multierror.Error
	for i, s := range h.Snapshots {
		v := s.Validity
		if !v.Open() && v.To.Before(v.From) {
			errs = multierror.Append(errs, fmt.Errorf("snapshot %d: range ends before it starts", i))
		}
		if i == len(h.Snapshots)-1 {
			break
		}
		next := h.Snapshots[i+1].Validity
		if v.Open() {
			errs = multierror.Append(errs, fmt.Errorf("snapshot %d: open-ended range before the last snapshot", i))
			continue
		}
		if !v.To.Equal(next.From) {
			errs = multierror.Append(errs, fmt.Errorf("snapshot %d: range ends at %s but the next starts at %s",
				i, v.To.Format(time.RFC3339), next.From.Format(time.RFC3339)))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return dterror.Invariant("history.Validate", h.resource(), err)
	}
	return nil
}

// historyFromRecords converts change-stamped records into a History. Each
// record's change instant opens its validity range; the range closes where
// the next change begins, so the newest record is open-ended.
func historyFromRecords[T any](identity dturi.URI, records []T, changedAt func(T) time.Time) History[T] {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return changedAt(a).Compare(changedAt(b))
	})
	snapshots := make([]Snapshot[T], len(sorted))
	for i, rec := range sorted {
		v := Validity{From: changedAt(rec)}
		if i < len(sorted)-1 {
			v.To = changedAt(sorted[i+1])
		}
		snapshots[i] = Snapshot[T]{Validity: v, Record: rec}
	}
	return History[T]{Identity: identity, Snapshots: snapshots}
}

// validateWindow rejects an unusable time window.
func validateWindow(op string, from, to time.Time) error {
	if from.IsZero() || to.IsZero() {
		return dterror.Validation(op, "", "window bounds are required")
	}
	if !to.After(from) {
		return dterror.Validation(op, "", "window end must follow its start")
	}
	return nil
}

// PersonHistory assembles the recorded states of one person, earliest first.
func (c *Client) PersonHistory(ctx context.Context, person dturi.PersonURI) (History[HistoricalPerson], error) {
	const op = "datatracker.PersonHistory"
	if person.IsZero() {
		return History[HistoricalPerson]{}, dterror.Validation(op, "", "person URI is required")
	}
	v := url.Values{}
	v.Set("id", strconv.FormatUint(person.ID(), 10))
	records, err := list[HistoricalPerson](c, op, listPath(historicalPersonListPath, v)).Collect(ctx)
	if err != nil {
		return History[HistoricalPerson]{}, err
	}
	h := historyFromRecords(person, records, func(r HistoricalPerson) time.Time {
		return r.HistoryDate.Time
	})
	c.log.Debug("assembled history", "kind", dturi.KindPerson, "path", person.Path(), "snapshots", len(h.Snapshots))
	return h, nil
}

// EmailHistory assembles the recorded states of one email address, earliest
// first. The address itself is the stable identity; the person it belongs to
// may differ between snapshots.
func (c *Client) EmailHistory(ctx context.Context, email dturi.EmailURI) (History[HistoricalEmail], error) {
	const op = "datatracker.EmailHistory"
	if email.IsZero() {
		return History[HistoricalEmail]{}, dterror.Validation(op, "", "email URI is required")
	}
	v := url.Values{}
	v.Set("address", email.Address())
	records, err := list[HistoricalEmail](c, op, listPath(historicalEmailListPath, v)).Collect(ctx)
	if err != nil {
		return History[HistoricalEmail]{}, err
	}
	h := historyFromRecords(email, records, func(r HistoricalEmail) time.Time {
		return r.HistoryDate.Time
	})
	c.log.Debug("assembled history", "kind", dturi.KindEmail, "path", email.Path(), "snapshots", len(h.Snapshots))
	return h, nil
}

// PeopleBetween returns the identity of every person whose record changed
// inside the half-open window [from, to), in first-appearance order without
// duplicates.
func (c *Client) PeopleBetween(ctx context.Context, from, to time.Time) ([]dturi.PersonURI, error) {
	const op = "datatracker.PeopleBetween"
	if err := validateWindow(op, from, to); err != nil {
		return nil, err
	}
	v := url.Values{}
	v.Set("history_date__gte", formatQueryTime(from))
	v.Set("history_date__lt", formatQueryTime(to))
	seen := make(map[dturi.PersonURI]struct{})
	var ids []dturi.PersonURI
	for rec, err := range list[HistoricalPerson](c, op, listPath(historicalPersonListPath, v)).All(ctx) {
		if err != nil {
			return nil, err
		}
		uri := rec.PersonURI()
		if _, ok := seen[uri]; ok {
			continue
		}
		seen[uri] = struct{}{}
		ids = append(ids, uri)
	}
	return ids, nil
}

// EmailsBetween returns the identity of every email address whose record
// changed inside the half-open window [from, to), in first-appearance order
// without duplicates.
func (c *Client) EmailsBetween(ctx context.Context, from, to time.Time) ([]dturi.EmailURI, error) {
	const op = "datatracker.EmailsBetween"
	if err := validateWindow(op, from, to); err != nil {
		return nil, err
	}
	v := url.Values{}
	v.Set("history_date__gte", formatQueryTime(from))
	v.Set("history_date__lt", formatQueryTime(to))
	seen := make(map[dturi.EmailURI]struct{})
	var ids []dturi.EmailURI
	for rec, err := range list[HistoricalEmail](c, op, listPath(historicalEmailListPath, v)).All(ctx) {
		if err != nil {
			return nil, err
		}
		uri, err := rec.EmailURI()
		if err != nil {
			return nil, dterror.Decode(op, historicalEmailListPath, err)
		}
		if _, ok := seen[uri]; ok {
			continue
		}
		seen[uri] = struct{}{}
		ids = append(ids, uri)
	}
	return ids, nil
}
