package datatracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csperkins/ietfdata-go/pkg/dturi"
)

func TestPersonFilter_Values(t *testing.T) {
	f := PersonFilter{
		NameContains: "Doe",
		Since:        time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		Until:        time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t,
		"name__contains=Doe&time__gte=2021-01-01T00%3A00%3A00&time__lt=2021-06-01T00%3A00%3A00",
		f.values().Encode())

	assert.Empty(t, PersonFilter{}.values())
}

func TestEmailFilter_Values(t *testing.T) {
	primary := true
	f := EmailFilter{
		AddressContains: "example.org",
		Person:          dturi.PersonURIForID(20209),
		Primary:         &primary,
	}
	assert.Equal(t, "address__contains=example.org&person=20209&primary=true", f.values().Encode())

	inactive := false
	assert.Equal(t, "active=false", EmailFilter{Active: &inactive}.values().Encode())
}

func TestGroupFilter_Values(t *testing.T) {
	state, err := dturi.GroupStateURIForSlug("active")
	require.NoError(t, err)
	typ, err := dturi.GroupTypeURIForSlug("wg")
	require.NoError(t, err)

	f := GroupFilter{
		Acronym: "quic",
		Parent:  dturi.GroupURIForID(1008),
		State:   state,
		Type:    typ,
	}
	assert.Equal(t, "acronym=quic&parent=1008&state=active&type=wg", f.values().Encode())
}

func TestDocumentFilter_Values(t *testing.T) {
	f := DocumentFilter{
		TitleContains: "QUIC",
		Group:         dturi.GroupURIForID(2161),
		RFC:           9000,
	}
	assert.Equal(t, "group=2161&rfc=9000&title__contains=QUIC", f.values().Encode())
}

func TestFilterValidate(t *testing.T) {
	since := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("inverted person window", func(t *testing.T) {
		err := PersonFilter{Since: since, Until: until}.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be after Since")
	})
	t.Run("open-ended windows pass", func(t *testing.T) {
		assert.NoError(t, PersonFilter{Since: since}.Validate())
		assert.NoError(t, PersonFilter{Until: until}.Validate())
	})
	t.Run("inverted email window", func(t *testing.T) {
		require.Error(t, EmailFilter{Since: since, Until: until}.Validate())
	})
	t.Run("inverted document window", func(t *testing.T) {
		require.Error(t, DocumentFilter{Since: since, Until: until}.Validate())
	})
	t.Run("acronym charset", func(t *testing.T) {
		require.Error(t, GroupFilter{Acronym: "QUIC"}.Validate())
		assert.NoError(t, GroupFilter{Acronym: "quic"}.Validate())
		assert.NoError(t, GroupFilter{}.Validate())
	})
	t.Run("document name charset", func(t *testing.T) {
		require.Error(t, DocumentFilter{NameEquals: "has space"}.Validate())
		assert.NoError(t, DocumentFilter{NameEquals: "draft-ietf-quic-transport"}.Validate())
	})
}
