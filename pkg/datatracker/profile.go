package datatracker

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/csperkins/ietfdata-go/pkg/dterror"
	"github.com/csperkins/ietfdata-go/pkg/dturi"
)

// Profile is the combined view of one person: the person record plus every
// email address and name alias associated with it.
type Profile struct {
	Person  *Person
	Emails  []Email
	Aliases []PersonAlias
}

// Profile gathers a person's record, email addresses, and aliases. The three
// fetch chains run concurrently; the first failure cancels the others and is
// returned.
func (c *Client) Profile(ctx context.Context, person dturi.PersonURI) (*Profile, error) {
	const op = "datatracker.Profile"
	if person.IsZero() {
		return nil, dterror.Validation(op, "", "person URI is required")
	}

	var profile Profile
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.Person(ctx, person)
		if err != nil {
			return err
		}
		profile.Person = p
		return nil
	})
	g.Go(func() error {
		listing, err := c.EmailsForPerson(person)
		if err != nil {
			return err
		}
		emails, err := listing.Collect(ctx)
		if err != nil {
			return err
		}
		profile.Emails = emails
		return nil
	})
	g.Go(func() error {
		listing, err := c.AliasesForPerson(person)
		if err != nil {
			return err
		}
		aliases, err := listing.Collect(ctx)
		if err != nil {
			return err
		}
		profile.Aliases = aliases
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &profile, nil
}
