package datatracker

import (
	"errors"
	"net/url"
	"regexp"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/csperkins/ietfdata-go/pkg/dturi"
)

// List endpoint paths. Single entities live one key segment below these.
const (
	personListPath           = "/api/v1/person/person/"
	emailListPath            = "/api/v1/person/email/"
	aliasListPath            = "/api/v1/person/alias/"
	historicalPersonListPath = "/api/v1/person/historicalperson/"
	historicalEmailListPath  = "/api/v1/person/historicalemail/"
	groupListPath            = "/api/v1/group/group/"
	groupTypeListPath        = "/api/v1/name/grouptypename/"
	groupStateListPath       = "/api/v1/name/groupstatename/"
	documentListPath         = "/api/v1/doc/document/"
	docStateListPath         = "/api/v1/doc/state/"
	docStateTypeListPath     = "/api/v1/doc/statetype/"
)

// defaultPageSize is requested on every listing. The server clamps it to its
// own maximum.
const defaultPageSize = 100

var (
	acronymPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
	docNamePattern = regexp.MustCompile(`^[A-Za-z0-9._+-]+$`)
)

// listPath joins a list endpoint with its encoded query parameters.
func listPath(base string, v url.Values) string {
	if v == nil {
		v = url.Values{}
	}
	v.Set("limit", strconv.Itoa(defaultPageSize))
	return base + "?" + v.Encode()
}

// windowOrdered rejects a time window whose end does not follow its start.
// Open-ended windows pass.
func windowOrdered(since time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		until, _ := value.(time.Time)
		if since.IsZero() || until.IsZero() || until.After(since) {
			return nil
		}
		return errors.New("must be after Since")
	}
}

// PersonFilter narrows a people listing. Zero fields are omitted from the
// query; set fields combine conjunctively.
type PersonFilter struct {
	// NameEquals matches the name field exactly.
	NameEquals string
	// NameContains matches a substring of the name field.
	NameContains string
	// ASCIIContains matches a substring of the ASCII form of the name.
	ASCIIContains string
	// Since keeps people whose record changed at or after this instant.
	Since time.Time
	// Until keeps people whose record changed before this instant.
	Until time.Time
}

// Validate checks if the filter is valid.
func (f PersonFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Until, validation.By(windowOrdered(f.Since))),
	)
}

func (f PersonFilter) values() url.Values {
	v := url.Values{}
	if f.NameEquals != "" {
		v.Set("name", f.NameEquals)
	}
	if f.NameContains != "" {
		v.Set("name__contains", f.NameContains)
	}
	if f.ASCIIContains != "" {
		v.Set("ascii__contains", f.ASCIIContains)
	}
	if !f.Since.IsZero() {
		v.Set("time__gte", formatQueryTime(f.Since))
	}
	if !f.Until.IsZero() {
		v.Set("time__lt", formatQueryTime(f.Until))
	}
	return v
}

// EmailFilter narrows an email listing.
type EmailFilter struct {
	// AddressContains matches a substring of the address.
	AddressContains string
	// Person keeps addresses associated with one person.
	Person dturi.PersonURI
	// Primary, when non-nil, keeps addresses with that primary flag.
	Primary *bool
	// Active, when non-nil, keeps addresses with that active flag.
	Active *bool
	// Since keeps addresses whose record changed at or after this instant.
	Since time.Time
	// Until keeps addresses whose record changed before this instant.
	Until time.Time
}

// Validate checks if the filter is valid.
func (f EmailFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Until, validation.By(windowOrdered(f.Since))),
	)
}

func (f EmailFilter) values() url.Values {
	v := url.Values{}
	if f.AddressContains != "" {
		v.Set("address__contains", f.AddressContains)
	}
	if !f.Person.IsZero() {
		v.Set("person", strconv.FormatUint(f.Person.ID(), 10))
	}
	if f.Primary != nil {
		v.Set("primary", strconv.FormatBool(*f.Primary))
	}
	if f.Active != nil {
		v.Set("active", strconv.FormatBool(*f.Active))
	}
	if !f.Since.IsZero() {
		v.Set("time__gte", formatQueryTime(f.Since))
	}
	if !f.Until.IsZero() {
		v.Set("time__lt", formatQueryTime(f.Until))
	}
	return v
}

// GroupFilter narrows a group listing.
type GroupFilter struct {
	// Acronym matches the group acronym exactly ("quic", "avt").
	Acronym string
	// NameContains matches a substring of the group name.
	NameContains string
	// Parent keeps groups under one parent group.
	Parent dturi.GroupURI
	// State keeps groups in one lifecycle state.
	State dturi.GroupStateURI
	// Type keeps groups of one kind.
	Type dturi.GroupTypeURI
}

// Validate checks if the filter is valid.
func (f GroupFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Acronym, validation.Match(acronymPattern).Error("must be a lowercase group acronym")),
	)
}

func (f GroupFilter) values() url.Values {
	v := url.Values{}
	if f.Acronym != "" {
		v.Set("acronym", f.Acronym)
	}
	if f.NameContains != "" {
		v.Set("name__contains", f.NameContains)
	}
	if !f.Parent.IsZero() {
		v.Set("parent", strconv.FormatUint(f.Parent.ID(), 10))
	}
	if !f.State.IsZero() {
		v.Set("state", f.State.Slug())
	}
	if !f.Type.IsZero() {
		v.Set("type", f.Type.Slug())
	}
	return v
}

// DocumentFilter narrows a document listing.
type DocumentFilter struct {
	// NameEquals matches the document name exactly.
	NameEquals string
	// NameContains matches a substring of the document name.
	NameContains string
	// TitleContains matches a substring of the title.
	TitleContains string
	// Group keeps documents owned by one group.
	Group dturi.GroupURI
	// RFC keeps the document published under this RFC number.
	RFC uint64
	// Since keeps documents whose record changed at or after this instant.
	Since time.Time
	// Until keeps documents whose record changed before this instant.
	Until time.Time
}

// Validate checks if the filter is valid.
func (f DocumentFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.NameEquals, validation.Match(docNamePattern).Error("must be a document name")),
		validation.Field(&f.Until, validation.By(windowOrdered(f.Since))),
	)
}

func (f DocumentFilter) values() url.Values {
	v := url.Values{}
	if f.NameEquals != "" {
		v.Set("name", f.NameEquals)
	}
	if f.NameContains != "" {
		v.Set("name__contains", f.NameContains)
	}
	if f.TitleContains != "" {
		v.Set("title__contains", f.TitleContains)
	}
	if !f.Group.IsZero() {
		v.Set("group", strconv.FormatUint(f.Group.ID(), 10))
	}
	if f.RFC != 0 {
		v.Set("rfc", strconv.FormatUint(f.RFC, 10))
	}
	if !f.Since.IsZero() {
		v.Set("time__gte", formatQueryTime(f.Since))
	}
	if !f.Until.IsZero() {
		v.Set("time__lt", formatQueryTime(f.Until))
	}
	return v
}
