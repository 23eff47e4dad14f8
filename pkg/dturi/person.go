package dturi

import (
	"cmp"
	"fmt"
)

// PersonURI identifies a person record.
type PersonURI struct {
	id uint64
}

// ParsePersonURI parses a person identifier from its canonical path, an
// absolute Datatracker URL, or a bare relative path.
func ParsePersonURI(s string) (PersonURI, error) {
	id, err := parseNumericKey(KindPerson, personPathRE, s)
	if err != nil {
		return PersonURI{}, err
	}
	return PersonURI{id: id}, nil
}

// PersonURIForID constructs the identifier for a known person id.
func PersonURIForID(id uint64) PersonURI {
	return PersonURI{id: id}
}

// ID returns the numeric person identifier.
func (u PersonURI) ID() uint64 { return u.id }

// Kind reports the resource kind.
func (PersonURI) Kind() Kind { return KindPerson }

// Path returns the canonical relative path.
func (u PersonURI) Path() string {
	return fmt.Sprintf("/api/v1/person/person/%d/", u.id)
}

// String returns the canonical path.
func (u PersonURI) String() string { return u.Path() }

// IsZero reports whether the identifier is the zero value.
func (u PersonURI) IsZero() bool { return u.id == 0 }

// Equal reports whether two identifiers name the same person.
func (u PersonURI) Equal(other PersonURI) bool { return u.id == other.id }

// Compare orders identifiers by numeric id.
func (u PersonURI) Compare(other PersonURI) int { return cmp.Compare(u.id, other.id) }

// MarshalJSON renders the canonical path, or null for the zero value.
func (u PersonURI) MarshalJSON() ([]byte, error) {
	return marshalPath(u, u.IsZero())
}

// UnmarshalJSON parses and validates the identifier from a JSON string.
// A JSON null yields the zero value.
func (u *PersonURI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = PersonURI{}
		return nil
	}
	s, err := unmarshalString(KindPerson, data)
	if err != nil {
		return err
	}
	parsed, err := ParsePersonURI(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// EmailURI identifies an email address record. The address itself is the key.
type EmailURI struct {
	address string
}

// ParseEmailURI parses an email identifier from its canonical path, an
// absolute Datatracker URL, or a bare relative path.
func ParseEmailURI(s string) (EmailURI, error) {
	addr, err := parseStringKey(KindEmail, emailPathRE, s)
	if err != nil {
		return EmailURI{}, err
	}
	return EmailURI{address: addr}, nil
}

// EmailURIForAddress constructs the identifier for a known address. The
// address must contain exactly one "@" with non-empty local part and domain.
func EmailURIForAddress(address string) (EmailURI, error) {
	return ParseEmailURI("/api/v1/person/email/" + address + "/")
}

// Address returns the email address keyed by this identifier.
func (u EmailURI) Address() string { return u.address }

// Kind reports the resource kind.
func (EmailURI) Kind() Kind { return KindEmail }

// Path returns the canonical relative path.
func (u EmailURI) Path() string {
	return fmt.Sprintf("/api/v1/person/email/%s/", u.address)
}

// String returns the canonical path.
func (u EmailURI) String() string { return u.Path() }

// IsZero reports whether the identifier is the zero value.
func (u EmailURI) IsZero() bool { return u.address == "" }

// Equal reports whether two identifiers name the same address.
func (u EmailURI) Equal(other EmailURI) bool { return u.address == other.address }

// Compare orders identifiers lexically by address.
func (u EmailURI) Compare(other EmailURI) int { return cmp.Compare(u.address, other.address) }

// MarshalJSON renders the canonical path, or null for the zero value.
func (u EmailURI) MarshalJSON() ([]byte, error) {
	return marshalPath(u, u.IsZero())
}

// UnmarshalJSON parses and validates the identifier from a JSON string.
// A JSON null yields the zero value.
func (u *EmailURI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = EmailURI{}
		return nil
	}
	s, err := unmarshalString(KindEmail, data)
	if err != nil {
		return err
	}
	parsed, err := ParseEmailURI(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// HistoricalPersonURI identifies one archived revision of a person record.
type HistoricalPersonURI struct {
	id uint64
}

// ParseHistoricalPersonURI parses a historical person identifier.
func ParseHistoricalPersonURI(s string) (HistoricalPersonURI, error) {
	id, err := parseNumericKey(KindHistoricalPerson, historicalPersonPathRE, s)
	if err != nil {
		return HistoricalPersonURI{}, err
	}
	return HistoricalPersonURI{id: id}, nil
}

// HistoricalPersonURIForID constructs the identifier for a known revision id.
func HistoricalPersonURIForID(id uint64) HistoricalPersonURI {
	return HistoricalPersonURI{id: id}
}

// ID returns the numeric revision identifier.
func (u HistoricalPersonURI) ID() uint64 { return u.id }

// Kind reports the resource kind.
func (HistoricalPersonURI) Kind() Kind { return KindHistoricalPerson }

// Path returns the canonical relative path.
func (u HistoricalPersonURI) Path() string {
	return fmt.Sprintf("/api/v1/person/historicalperson/%d/", u.id)
}

// String returns the canonical path.
func (u HistoricalPersonURI) String() string { return u.Path() }

// IsZero reports whether the identifier is the zero value.
func (u HistoricalPersonURI) IsZero() bool { return u.id == 0 }

// Equal reports whether two identifiers name the same revision.
func (u HistoricalPersonURI) Equal(other HistoricalPersonURI) bool { return u.id == other.id }

// Compare orders identifiers by numeric id.
func (u HistoricalPersonURI) Compare(other HistoricalPersonURI) int {
	return cmp.Compare(u.id, other.id)
}

// MarshalJSON renders the canonical path, or null for the zero value.
func (u HistoricalPersonURI) MarshalJSON() ([]byte, error) {
	return marshalPath(u, u.IsZero())
}

// UnmarshalJSON parses and validates the identifier from a JSON string.
// A JSON null yields the zero value.
func (u *HistoricalPersonURI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = HistoricalPersonURI{}
		return nil
	}
	s, err := unmarshalString(KindHistoricalPerson, data)
	if err != nil {
		return err
	}
	parsed, err := ParseHistoricalPersonURI(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// HistoricalEmailURI identifies one archived revision of an email record.
type HistoricalEmailURI struct {
	id uint64
}

// ParseHistoricalEmailURI parses a historical email identifier.
func ParseHistoricalEmailURI(s string) (HistoricalEmailURI, error) {
	id, err := parseNumericKey(KindHistoricalEmail, historicalEmailPathRE, s)
	if err != nil {
		return HistoricalEmailURI{}, err
	}
	return HistoricalEmailURI{id: id}, nil
}

// HistoricalEmailURIForID constructs the identifier for a known revision id.
func HistoricalEmailURIForID(id uint64) HistoricalEmailURI {
	return HistoricalEmailURI{id: id}
}

// ID returns the numeric revision identifier.
func (u HistoricalEmailURI) ID() uint64 { return u.id }

// Kind reports the resource kind.
func (HistoricalEmailURI) Kind() Kind { return KindHistoricalEmail }

// Path returns the canonical relative path.
func (u HistoricalEmailURI) Path() string {
	return fmt.Sprintf("/api/v1/person/historicalemail/%d/", u.id)
}

// String returns the canonical path.
func (u HistoricalEmailURI) String() string { return u.Path() }

// IsZero reports whether the identifier is the zero value.
func (u HistoricalEmailURI) IsZero() bool { return u.id == 0 }

// Equal reports whether two identifiers name the same revision.
func (u HistoricalEmailURI) Equal(other HistoricalEmailURI) bool { return u.id == other.id }

// Compare orders identifiers by numeric id.
func (u HistoricalEmailURI) Compare(other HistoricalEmailURI) int {
	return cmp.Compare(u.id, other.id)
}

// MarshalJSON renders the canonical path, or null for the zero value.
func (u HistoricalEmailURI) MarshalJSON() ([]byte, error) {
	return marshalPath(u, u.IsZero())
}

// UnmarshalJSON parses and validates the identifier from a JSON string.
// A JSON null yields the zero value.
func (u *HistoricalEmailURI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = HistoricalEmailURI{}
		return nil
	}
	s, err := unmarshalString(KindHistoricalEmail, data)
	if err != nil {
		return err
	}
	parsed, err := ParseHistoricalEmailURI(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// PersonAliasURI identifies an alternate name recorded for a person.
type PersonAliasURI struct {
	id uint64
}

// ParsePersonAliasURI parses a person alias identifier.
func ParsePersonAliasURI(s string) (PersonAliasURI, error) {
	id, err := parseNumericKey(KindPersonAlias, personAliasPathRE, s)
	if err != nil {
		return PersonAliasURI{}, err
	}
	return PersonAliasURI{id: id}, nil
}

// PersonAliasURIForID constructs the identifier for a known alias id.
func PersonAliasURIForID(id uint64) PersonAliasURI {
	return PersonAliasURI{id: id}
}

// ID returns the numeric alias identifier.
func (u PersonAliasURI) ID() uint64 { return u.id }

// Kind reports the resource kind.
func (PersonAliasURI) Kind() Kind { return KindPersonAlias }

// Path returns the canonical relative path.
func (u PersonAliasURI) Path() string {
	return fmt.Sprintf("/api/v1/person/alias/%d/", u.id)
}

// String returns the canonical path.
func (u PersonAliasURI) String() string { return u.Path() }

// IsZero reports whether the identifier is the zero value.
func (u PersonAliasURI) IsZero() bool { return u.id == 0 }

// Equal reports whether two identifiers name the same alias.
func (u PersonAliasURI) Equal(other PersonAliasURI) bool { return u.id == other.id }

// Compare orders identifiers by numeric id.
func (u PersonAliasURI) Compare(other PersonAliasURI) int { return cmp.Compare(u.id, other.id) }

// MarshalJSON renders the canonical path, or null for the zero value.
func (u PersonAliasURI) MarshalJSON() ([]byte, error) {
	return marshalPath(u, u.IsZero())
}

// UnmarshalJSON parses and validates the identifier from a JSON string.
// A JSON null yields the zero value.
func (u *PersonAliasURI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = PersonAliasURI{}
		return nil
	}
	s, err := unmarshalString(KindPersonAlias, data)
	if err != nil {
		return err
	}
	parsed, err := ParsePersonAliasURI(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

var (
	_ URI = PersonURI{}
	_ URI = EmailURI{}
	_ URI = HistoricalPersonURI{}
	_ URI = HistoricalEmailURI{}
	_ URI = PersonAliasURI{}
)
