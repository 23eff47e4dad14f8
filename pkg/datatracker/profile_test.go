package datatracker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csperkins/ietfdata-go/pkg/dterror"
	"github.com/csperkins/ietfdata-go/pkg/dturi"
)

func TestClient_Profile(t *testing.T) {
	f := newFakeFetcher()
	f.bodies["/api/v1/person/person/20209/"] = personObj(20209, "Jane Doe")
	f.bodies["/api/v1/person/email/?limit=100&person=20209"] = listing(
		emailObj("jane@example.org", 20209),
		emailObj("jd@staff.example.com", 20209),
	)
	f.bodies["/api/v1/person/alias/?limit=100&person=20209"] = listing(
		aliasObj(1, 20209, "Jane Doe"),
	)
	c := newTestClient(t, f)

	t.Run("gathers the full view", func(t *testing.T) {
		got, err := c.Profile(context.Background(), dturi.PersonURIForID(20209))
		require.NoError(t, err)
		require.NotNil(t, got.Person)
		assert.Equal(t, "Jane Doe", got.Person.Name)
		assert.Len(t, got.Emails, 2)
		assert.Len(t, got.Aliases, 1)
	})
	t.Run("zero URI rejected", func(t *testing.T) {
		_, err := c.Profile(context.Background(), dturi.PersonURI{})
		require.Error(t, err)
		assert.Equal(t, dterror.CategoryValidation, dterror.CategoryOf(err))
	})
	t.Run("an absent person fails the whole profile", func(t *testing.T) {
		ff := newFakeFetcher()
		ff.bodies["/api/v1/person/email/?limit=100&person=404"] = listing()
		ff.bodies["/api/v1/person/alias/?limit=100&person=404"] = listing()
		cc := newTestClient(t, ff)

		_, err := cc.Profile(context.Background(), dturi.PersonURIForID(404))
		require.Error(t, err)
		assert.True(t, dterror.IsNotFound(err))
	})
}
