package datatracker

import (
	"github.com/csperkins/ietfdata-go/pkg/dturi"
)

// Person is a registered person: RFC authors, working group participants,
// chairs, area directors. Optional text fields are empty when the remote
// record holds null.
type Person struct {
	ID            uint64          `json:"id"`
	ResourceURI   dturi.PersonURI `json:"resource_uri"`
	Name          string          `json:"name"`
	NameFromDraft string          `json:"name_from_draft,omitempty"`
	ASCII         string          `json:"ascii"`
	ASCIIShort    string          `json:"ascii_short,omitempty"`
	Biography     string          `json:"biography"`
	Photo         string          `json:"photo,omitempty"`
	PhotoThumb    string          `json:"photo_thumb,omitempty"`
	Time          Time            `json:"time"`
	User          string          `json:"user,omitempty"`
	Consent       *bool           `json:"consent"`
}

// URI returns the person's canonical identifier.
func (p *Person) URI() dturi.PersonURI {
	return p.ResourceURI
}

// Email is one email address and its association with a person. The address
// itself is the stable key; the association can change over time.
type Email struct {
	ResourceURI dturi.EmailURI  `json:"resource_uri"`
	Address     string          `json:"address"`
	Person      dturi.PersonURI `json:"person"`
	Time        Time            `json:"time"`
	Origin      string          `json:"origin"`
	Primary     bool            `json:"primary"`
	Active      bool            `json:"active"`
}

// URI returns the address's canonical identifier.
func (e *Email) URI() dturi.EmailURI {
	return e.ResourceURI
}

// PersonAlias is an alternate name recorded for a person, such as a previous
// name or a different transliteration.
type PersonAlias struct {
	ID          uint64               `json:"id"`
	ResourceURI dturi.PersonAliasURI `json:"resource_uri"`
	Person      dturi.PersonURI      `json:"person"`
	Name        string               `json:"name"`
}

// URI returns the alias's canonical identifier.
func (a *PersonAlias) URI() dturi.PersonAliasURI {
	return a.ResourceURI
}

// HistoricalPerson is one archived state of a person record. ID is the
// stable person identifier shared by every state; HistoryID keys this
// particular revision.
type HistoricalPerson struct {
	ID            uint64                    `json:"id"`
	ResourceURI   dturi.HistoricalPersonURI `json:"resource_uri"`
	Name          string                    `json:"name"`
	NameFromDraft string                    `json:"name_from_draft"`
	ASCII         string                    `json:"ascii"`
	ASCIIShort    string                    `json:"ascii_short,omitempty"`
	Biography     string                    `json:"biography"`
	Photo         string                    `json:"photo,omitempty"`
	PhotoThumb    string                    `json:"photo_thumb,omitempty"`
	Time          Time                      `json:"time"`
	User          string                    `json:"user"`
	Consent       *bool                     `json:"consent"`

	HistoryChangeReason string `json:"history_change_reason,omitempty"`
	HistoryUser         string `json:"history_user"`
	HistoryType         string `json:"history_type"`
	HistoryID           uint64 `json:"history_id"`
	HistoryDate         Time   `json:"history_date"`
}

// URI returns this revision's identifier.
func (h *HistoricalPerson) URI() dturi.HistoricalPersonURI {
	return h.ResourceURI
}

// PersonURI returns the stable identity this revision is one state of.
func (h *HistoricalPerson) PersonURI() dturi.PersonURI {
	return dturi.PersonURIForID(h.ID)
}

// HistoricalEmail is one archived state of an email record: the association,
// primary flag, and active flag as they stood at HistoryDate.
type HistoricalEmail struct {
	ResourceURI dturi.HistoricalEmailURI `json:"resource_uri"`
	Address     string                   `json:"address"`
	Person      dturi.PersonURI          `json:"person"`
	Time        Time                     `json:"time"`
	Origin      string                   `json:"origin"`
	Primary     bool                     `json:"primary"`
	Active      bool                     `json:"active"`

	HistoryChangeReason string `json:"history_change_reason,omitempty"`
	HistoryUser         string `json:"history_user,omitempty"`
	HistoryID           uint64 `json:"history_id"`
	HistoryType         string `json:"history_type"`
	HistoryDate         Time   `json:"history_date"`
}

// URI returns this revision's identifier.
func (h *HistoricalEmail) URI() dturi.HistoricalEmailURI {
	return h.ResourceURI
}

// EmailURI returns the stable identity this revision is one state of.
func (h *HistoricalEmail) EmailURI() (dturi.EmailURI, error) {
	return dturi.EmailURIForAddress(h.Address)
}
