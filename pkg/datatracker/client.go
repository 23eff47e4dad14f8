package datatracker

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hashicorp/go-hclog"

	"github.com/csperkins/ietfdata-go/pkg/dterror"
	"github.com/csperkins/ietfdata-go/pkg/dturi"
	"github.com/csperkins/ietfdata-go/pkg/pager"
	"github.com/csperkins/ietfdata-go/pkg/transport"
)

// Fetcher retrieves the raw body of one registry resource. Implementations
// must be safe for concurrent use and must return categorized errors so
// callers can tell absence from transport failure.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (json.RawMessage, error)
}

var _ Fetcher = (*transport.Client)(nil)

// Client answers typed queries against the Datatracker registry. Entity
// getters resolve one URI to one record. Listing methods return lazy cursors.
// A Client is safe for concurrent use when its Fetcher is.
type Client struct {
	fetcher   Fetcher
	log       hclog.Logger
	pagerOpts []pager.Option
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a logger. Without it the client is silent.
func WithLogger(log hclog.Logger) Option {
	return func(c *Client) {
		c.log = log.Named("datatracker")
	}
}

// WithPagerOptions applies options to every listing cursor the client opens.
func WithPagerOptions(opts ...pager.Option) Option {
	return func(c *Client) {
		c.pagerOpts = append(c.pagerOpts, opts...)
	}
}

// New returns a Client that issues its requests through f.
func New(f Fetcher, opts ...Option) (*Client, error) {
	if f == nil {
		return nil, fmt.Errorf("datatracker: nil fetcher")
	}
	c := &Client{
		fetcher: f,
		log:     hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// resolve fetches the resource a URI identifies and decodes it into T.
func resolve[T any](ctx context.Context, c *Client, op string, uri dturi.URI) (*T, error) {
	if uri.IsZero() {
		return nil, dterror.Validation(op, "", "URI is required")
	}
	body, err := c.fetcher.Fetch(ctx, uri.Path())
	if err != nil {
		return nil, err
	}
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, dterror.Decode(op, uri.Path(), err)
	}
	c.log.Debug("resolved entity", "kind", uri.Kind(), "path", uri.Path())
	return &out, nil
}

// list opens a cursor over the listing at path, decoding elements into T.
func list[T any](c *Client, op, path string) *pager.Pager[T] {
	fetch := func(ctx context.Context, p string) (pager.Page[T], error) {
		body, err := c.fetcher.Fetch(ctx, p)
		if err != nil {
			return pager.Page[T]{}, err
		}
		page, err := pager.DecodePage[T](body)
		if err != nil {
			return pager.Page[T]{}, dterror.Decode(op, p, err)
		}
		return page, nil
	}
	return pager.New(path, fetch, c.pagerOpts...)
}

// first implements lookup by a non-URI key: walk the filtered listing at path
// and return its first element. Every keyed lookup goes through here so an
// empty match maps to the same not_found failure on each of them.
func first[T any](ctx context.Context, c *Client, op, path string) (*T, error) {
	item, err := list[T](c, op, path).First(ctx)
	if err != nil {
		if dterror.IsNotFound(err) {
			return nil, dterror.NotFound(op, path)
		}
		return nil, err
	}
	return &item, nil
}

// Person resolves a person URI to its record.
func (c *Client) Person(ctx context.Context, uri dturi.PersonURI) (*Person, error) {
	return resolve[Person](ctx, c, "datatracker.Person", uri)
}

// Email resolves an email URI to its record.
func (c *Client) Email(ctx context.Context, uri dturi.EmailURI) (*Email, error) {
	return resolve[Email](ctx, c, "datatracker.Email", uri)
}

// Alias resolves a person alias URI to its record.
func (c *Client) Alias(ctx context.Context, uri dturi.PersonAliasURI) (*PersonAlias, error) {
	return resolve[PersonAlias](ctx, c, "datatracker.Alias", uri)
}

// Group resolves a group URI to its record.
func (c *Client) Group(ctx context.Context, uri dturi.GroupURI) (*Group, error) {
	return resolve[Group](ctx, c, "datatracker.Group", uri)
}

// GroupType resolves a group type URI to its record.
func (c *Client) GroupType(ctx context.Context, uri dturi.GroupTypeURI) (*GroupType, error) {
	return resolve[GroupType](ctx, c, "datatracker.GroupType", uri)
}

// GroupState resolves a group state URI to its record.
func (c *Client) GroupState(ctx context.Context, uri dturi.GroupStateURI) (*GroupState, error) {
	return resolve[GroupState](ctx, c, "datatracker.GroupState", uri)
}

// Document resolves a document URI to its record.
func (c *Client) Document(ctx context.Context, uri dturi.DocumentURI) (*Document, error) {
	return resolve[Document](ctx, c, "datatracker.Document", uri)
}

// DocState resolves a document state URI to its record.
func (c *Client) DocState(ctx context.Context, uri dturi.DocStateURI) (*DocState, error) {
	return resolve[DocState](ctx, c, "datatracker.DocState", uri)
}

// DocStateType resolves a document state type URI to its record.
func (c *Client) DocStateType(ctx context.Context, uri dturi.DocStateTypeURI) (*DocStateType, error) {
	return resolve[DocStateType](ctx, c, "datatracker.DocStateType", uri)
}

// Submission resolves a submission URI to its record.
func (c *Client) Submission(ctx context.Context, uri dturi.SubmissionURI) (*Submission, error) {
	return resolve[Submission](ctx, c, "datatracker.Submission", uri)
}

// PersonWithName returns the person whose name is exactly name. When several
// people share the name the registry's first match wins.
func (c *Client) PersonWithName(ctx context.Context, name string) (*Person, error) {
	const op = "datatracker.PersonWithName"
	if name == "" {
		return nil, dterror.Validation(op, "", "name is required")
	}
	f := PersonFilter{NameEquals: name}
	return first[Person](ctx, c, op, listPath(personListPath, f.values()))
}

// EmailForAddress returns the email record for one address.
func (c *Client) EmailForAddress(ctx context.Context, address string) (*Email, error) {
	const op = "datatracker.EmailForAddress"
	if _, err := dturi.EmailURIForAddress(address); err != nil {
		return nil, err
	}
	v := url.Values{}
	v.Set("address", address)
	return first[Email](ctx, c, op, listPath(emailListPath, v))
}

// PersonForEmail returns the person an email address belongs to.
func (c *Client) PersonForEmail(ctx context.Context, address string) (*Person, error) {
	email, err := c.EmailForAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	return resolve[Person](ctx, c, "datatracker.PersonForEmail", email.Person)
}

// GroupWithAcronym returns the group known by acronym.
func (c *Client) GroupWithAcronym(ctx context.Context, acronym string) (*Group, error) {
	const op = "datatracker.GroupWithAcronym"
	f := GroupFilter{Acronym: acronym}
	if acronym == "" {
		return nil, dterror.Validation(op, "", "acronym is required")
	}
	if err := f.Validate(); err != nil {
		return nil, dterror.Validation(op, acronym, err.Error())
	}
	return first[Group](ctx, c, op, listPath(groupListPath, f.values()))
}

// DocumentWithName returns the document known by name.
func (c *Client) DocumentWithName(ctx context.Context, name string) (*Document, error) {
	const op = "datatracker.DocumentWithName"
	f := DocumentFilter{NameEquals: name}
	if name == "" {
		return nil, dterror.Validation(op, "", "name is required")
	}
	if err := f.Validate(); err != nil {
		return nil, dterror.Validation(op, name, err.Error())
	}
	return first[Document](ctx, c, op, listPath(documentListPath, f.values()))
}

// People opens a cursor over people matching filter.
func (c *Client) People(filter PersonFilter) (*pager.Pager[Person], error) {
	const op = "datatracker.People"
	if err := filter.Validate(); err != nil {
		return nil, dterror.Validation(op, personListPath, err.Error())
	}
	return list[Person](c, op, listPath(personListPath, filter.values())), nil
}

// Emails opens a cursor over email records matching filter.
func (c *Client) Emails(filter EmailFilter) (*pager.Pager[Email], error) {
	const op = "datatracker.Emails"
	if err := filter.Validate(); err != nil {
		return nil, dterror.Validation(op, emailListPath, err.Error())
	}
	return list[Email](c, op, listPath(emailListPath, filter.values())), nil
}

// EmailsForPerson opens a cursor over the email records of one person.
func (c *Client) EmailsForPerson(person dturi.PersonURI) (*pager.Pager[Email], error) {
	const op = "datatracker.EmailsForPerson"
	if person.IsZero() {
		return nil, dterror.Validation(op, "", "person URI is required")
	}
	return c.Emails(EmailFilter{Person: person})
}

// AliasesForPerson opens a cursor over the name aliases of one person.
func (c *Client) AliasesForPerson(person dturi.PersonURI) (*pager.Pager[PersonAlias], error) {
	const op = "datatracker.AliasesForPerson"
	if person.IsZero() {
		return nil, dterror.Validation(op, "", "person URI is required")
	}
	v := url.Values{}
	v.Set("person", strconv.FormatUint(person.ID(), 10))
	return list[PersonAlias](c, op, listPath(aliasListPath, v)), nil
}

// Groups opens a cursor over groups matching filter.
func (c *Client) Groups(filter GroupFilter) (*pager.Pager[Group], error) {
	const op = "datatracker.Groups"
	if err := filter.Validate(); err != nil {
		return nil, dterror.Validation(op, groupListPath, err.Error())
	}
	return list[Group](c, op, listPath(groupListPath, filter.values())), nil
}

// GroupTypes opens a cursor over every group type the registry knows.
func (c *Client) GroupTypes() *pager.Pager[GroupType] {
	return list[GroupType](c, "datatracker.GroupTypes", listPath(groupTypeListPath, nil))
}

// GroupStates opens a cursor over every group lifecycle state.
func (c *Client) GroupStates() *pager.Pager[GroupState] {
	return list[GroupState](c, "datatracker.GroupStates", listPath(groupStateListPath, nil))
}

// Documents opens a cursor over documents matching filter.
func (c *Client) Documents(filter DocumentFilter) (*pager.Pager[Document], error) {
	const op = "datatracker.Documents"
	if err := filter.Validate(); err != nil {
		return nil, dterror.Validation(op, documentListPath, err.Error())
	}
	return list[Document](c, op, listPath(documentListPath, filter.values())), nil
}

// DocStates opens a cursor over document states, narrowed to one state type
// when stateType is non-zero.
func (c *Client) DocStates(stateType dturi.DocStateTypeURI) *pager.Pager[DocState] {
	v := url.Values{}
	if !stateType.IsZero() {
		v.Set("type", stateType.Slug())
	}
	return list[DocState](c, "datatracker.DocStates", listPath(docStateListPath, v))
}

// DocStateTypes opens a cursor over every document state type.
func (c *Client) DocStateTypes() *pager.Pager[DocStateType] {
	return list[DocStateType](c, "datatracker.DocStateTypes", listPath(docStateTypeListPath, nil))
}
