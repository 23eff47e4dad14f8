package datatracker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csperkins/ietfdata-go/pkg/dterror"
	"github.com/csperkins/ietfdata-go/pkg/dturi"
)

func ts(hour int) time.Time {
	return time.Date(2020, 1, 1, hour, 0, 0, 0, time.UTC)
}

func snap(record string, from, to time.Time) Snapshot[string] {
	return Snapshot[string]{Validity: Validity{From: from, To: to}, Record: record}
}

func TestValidity_Contains(t *testing.T) {
	bounded := Validity{From: ts(1), To: ts(2)}
	assert.True(t, bounded.Contains(ts(1)), "start is inclusive")
	assert.False(t, bounded.Contains(ts(2)), "end is exclusive")
	assert.False(t, bounded.Contains(ts(0)))

	open := Validity{From: ts(1)}
	assert.True(t, open.Open())
	assert.True(t, open.Contains(ts(1).AddDate(10, 0, 0)))
}

func TestHistory_At(t *testing.T) {
	t0, t1, t2 := ts(0), ts(1), ts(2)
	h := NewHistory(nil, []Snapshot[string]{
		snap("first", t0, t1),
		snap("second", t1, t2),
		snap("third", t2, time.Time{}),
	})

	tests := []struct {
		name    string
		at      time.Time
		want    string
		wantErr bool
	}{
		{name: "inside the first range", at: t0.Add(30 * time.Minute), want: "first"},
		{name: "range start is inclusive", at: t1, want: "second"},
		{name: "open-ended range extends forward", at: t2.AddDate(1, 0, 0), want: "third"},
		{name: "before the first snapshot", at: t0.Add(-time.Minute), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.At(tt.at)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dterror.IsNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Record)
		})
	}

	t.Run("gap between ranges", func(t *testing.T) {
		gappy := NewHistory(nil, []Snapshot[string]{
			snap("first", t0, t1),
			snap("third", t2, time.Time{}),
		})
		_, err := gappy.At(t1.Add(10 * time.Minute))
		require.Error(t, err)
		assert.True(t, dterror.IsNotFound(err))
	})
}

func TestHistory_Current(t *testing.T) {
	t0, t1 := ts(0), ts(1)

	t.Run("single open-ended snapshot", func(t *testing.T) {
		h := NewHistory(nil, []Snapshot[string]{
			snap("old", t0, t1),
			snap("now", t1, time.Time{}),
		})
		got, err := h.Current()
		require.NoError(t, err)
		assert.Equal(t, "now", got.Record)
	})
	t.Run("two open-ended snapshots", func(t *testing.T) {
		h := NewHistory(nil, []Snapshot[string]{
			snap("a", t0, time.Time{}),
			snap("b", t1, time.Time{}),
		})
		_, err := h.Current()
		require.Error(t, err)
		assert.Equal(t, dterror.CategoryInvariant, dterror.CategoryOf(err))
		assert.Contains(t, err.Error(), "2 open-ended snapshots")
	})
	t.Run("no open-ended snapshot", func(t *testing.T) {
		h := NewHistory(nil, []Snapshot[string]{snap("closed", t0, t1)})
		_, err := h.Current()
		require.Error(t, err)
		assert.Equal(t, dterror.CategoryInvariant, dterror.CategoryOf(err))
	})
}

func TestHistory_Validate(t *testing.T) {
	t0, t1, t2, t3 := ts(0), ts(1), ts(2), ts(3)

	t.Run("contiguous history", func(t *testing.T) {
		h := NewHistory(nil, []Snapshot[string]{
			snap("a", t0, t1),
			snap("b", t1, t2),
			snap("c", t2, time.Time{}),
		})
		assert.NoError(t, h.Validate())
	})
	t.Run("empty history", func(t *testing.T) {
		assert.NoError(t, History[string]{}.Validate())
	})
	t.Run("every violation is reported", func(t *testing.T) {
		h := NewHistory(nil, []Snapshot[string]{
			snap("a", t0, time.Time{}),
			snap("b", t1, t0),
			snap("c", t3, time.Time{}),
		})
		err := h.Validate()
		require.Error(t, err)
		assert.Equal(t, dterror.CategoryInvariant, dterror.CategoryOf(err))
		assert.Contains(t, err.Error(), "open-ended range before the last snapshot")
		assert.Contains(t, err.Error(), "range ends before it starts")
	})
}

func TestNewHistory_Sorts(t *testing.T) {
	t0, t1, t2 := ts(0), ts(1), ts(2)
	h := NewHistory(nil, []Snapshot[string]{
		snap("third", t2, time.Time{}),
		snap("first", t0, t1),
		snap("second", t1, t2),
	})

	got := make([]string, 0, len(h.Snapshots))
	for _, s := range h.Snapshots {
		got = append(got, s.Record)
	}
	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func historicalPersonObj(personID, historyID uint64, name, date string) string {
	return fmt.Sprintf(`{"id": %d, "resource_uri": "/api/v1/person/historicalperson/%d/", "name": %q, "name_from_draft": "", "ascii": %q, "biography": "", "time": %q, "user": "", "consent": true, "history_id": %d, "history_type": "~", "history_user": "", "history_date": %q}`,
		personID, historyID, name, name, date, historyID, date)
}

func historicalEmailObj(address string, personID, historyID uint64, date string) string {
	return fmt.Sprintf(`{"resource_uri": "/api/v1/person/historicalemail/%d/", "address": %q, "person": "/api/v1/person/person/%d/", "time": %q, "origin": "", "primary": false, "active": true, "history_id": %d, "history_type": "~", "history_date": %q}`,
		historyID, address, personID, date, historyID, date)
}

func TestClient_PersonHistory(t *testing.T) {
	f := newFakeFetcher()
	f.bodies["/api/v1/person/historicalperson/?id=20209&limit=100"] = listing(
		historicalPersonObj(20209, 3, "Jane Roe", "2021-05-01T09:00:00"),
		historicalPersonObj(20209, 1, "Jane Doe", "2019-03-01T12:00:00"),
		historicalPersonObj(20209, 2, "Jane Doe-Smith", "2020-07-15T08:30:00"),
	)
	c := newTestClient(t, f)

	person := dturi.PersonURIForID(20209)
	h, err := c.PersonHistory(context.Background(), person)
	require.NoError(t, err)
	require.NoError(t, h.Validate())
	require.Len(t, h.Snapshots, 3)
	assert.Equal(t, person, h.Identity)

	names := make([]string, 0, 3)
	for _, s := range h.Snapshots {
		names = append(names, s.Record.Name)
	}
	assert.Equal(t, []string{"Jane Doe", "Jane Doe-Smith", "Jane Roe"}, names)

	first := h.Snapshots[0].Validity
	assert.Equal(t, time.Date(2019, 3, 1, 12, 0, 0, 0, time.UTC), first.From)
	assert.Equal(t, time.Date(2020, 7, 15, 8, 30, 0, 0, time.UTC), first.To)

	current, err := h.Current()
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", current.Record.Name)

	at, err := h.At(time.Date(2020, 7, 15, 8, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe-Smith", at.Record.Name)

	t.Run("zero URI rejected", func(t *testing.T) {
		_, err := c.PersonHistory(context.Background(), dturi.PersonURI{})
		require.Error(t, err)
		assert.Equal(t, dterror.CategoryValidation, dterror.CategoryOf(err))
	})
	t.Run("no recorded changes", func(t *testing.T) {
		f.bodies["/api/v1/person/historicalperson/?id=31337&limit=100"] = listing()
		h, err := c.PersonHistory(context.Background(), dturi.PersonURIForID(31337))
		require.NoError(t, err)
		assert.Empty(t, h.Snapshots)
	})
}

func TestClient_EmailHistory(t *testing.T) {
	f := newFakeFetcher()
	f.bodies["/api/v1/person/historicalemail/?address=jane%40example.org&limit=100"] = listing(
		historicalEmailObj("jane@example.org", 20209, 1, "2019-03-01T12:00:00"),
		historicalEmailObj("jane@example.org", 31337, 2, "2021-05-01T09:00:00"),
	)
	c := newTestClient(t, f)

	uri, err := dturi.EmailURIForAddress("jane@example.org")
	require.NoError(t, err)
	h, err := c.EmailHistory(context.Background(), uri)
	require.NoError(t, err)
	require.Len(t, h.Snapshots, 2)

	// The address changed hands; both owners are on record.
	assert.Equal(t, uint64(20209), h.Snapshots[0].Record.Person.ID())
	assert.Equal(t, uint64(31337), h.Snapshots[1].Record.Person.ID())

	current, err := h.Current()
	require.NoError(t, err)
	assert.Equal(t, uint64(31337), current.Record.Person.ID())
}

func TestClient_PeopleBetween(t *testing.T) {
	from := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)

	f := newFakeFetcher()
	f.bodies["/api/v1/person/historicalperson/?history_date__gte=2021-01-01T00%3A00%3A00&history_date__lt=2021-02-01T00%3A00%3A00&limit=100"] = listing(
		historicalPersonObj(7, 1, "Grace", "2021-01-03T10:00:00"),
		historicalPersonObj(9, 2, "Heidi", "2021-01-10T11:00:00"),
		historicalPersonObj(7, 3, "Grace H.", "2021-01-20T12:00:00"),
	)
	c := newTestClient(t, f)

	ids, err := c.PeopleBetween(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, []dturi.PersonURI{dturi.PersonURIForID(7), dturi.PersonURIForID(9)}, ids)

	t.Run("inverted window rejected", func(t *testing.T) {
		_, err := c.PeopleBetween(context.Background(), to, from)
		require.Error(t, err)
		assert.Equal(t, dterror.CategoryValidation, dterror.CategoryOf(err))
	})
	t.Run("zero bound rejected", func(t *testing.T) {
		_, err := c.PeopleBetween(context.Background(), time.Time{}, to)
		require.Error(t, err)
		assert.Equal(t, dterror.CategoryValidation, dterror.CategoryOf(err))
	})
}

func TestClient_EmailsBetween(t *testing.T) {
	from := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC)

	f := newFakeFetcher()
	f.bodies["/api/v1/person/historicalemail/?history_date__gte=2021-01-01T00%3A00%3A00&history_date__lt=2021-02-01T00%3A00%3A00&limit=100"] = listing(
		historicalEmailObj("a@example.org", 1, 1, "2021-01-05T00:00:00"),
		historicalEmailObj("b@example.org", 2, 2, "2021-01-06T00:00:00"),
		historicalEmailObj("a@example.org", 3, 3, "2021-01-07T00:00:00"),
	)
	c := newTestClient(t, f)

	ids, err := c.EmailsBetween(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, "a@example.org", ids[0].Address())
	assert.Equal(t, "b@example.org", ids[1].Address())
}
