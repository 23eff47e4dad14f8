package dturi

import (
	"cmp"
	"fmt"
)

// GroupURI identifies a working group or other organizational group.
type GroupURI struct {
	id uint64
}

// ParseGroupURI parses a group identifier from its canonical path, an
// absolute Datatracker URL, or a bare relative path.
func ParseGroupURI(s string) (GroupURI, error) {
	id, err := parseNumericKey(KindGroup, groupPathRE, s)
	if err != nil {
		return GroupURI{}, err
	}
	return GroupURI{id: id}, nil
}

// GroupURIForID constructs the identifier for a known group id.
func GroupURIForID(id uint64) GroupURI {
	return GroupURI{id: id}
}

// ID returns the numeric group identifier.
func (u GroupURI) ID() uint64 { return u.id }

// Kind reports the resource kind.
func (GroupURI) Kind() Kind { return KindGroup }

// Path returns the canonical relative path.
func (u GroupURI) Path() string {
	return fmt.Sprintf("/api/v1/group/group/%d/", u.id)
}

// String returns the canonical path.
func (u GroupURI) String() string { return u.Path() }

// IsZero reports whether the identifier is the zero value.
func (u GroupURI) IsZero() bool { return u.id == 0 }

// Equal reports whether two identifiers name the same group.
func (u GroupURI) Equal(other GroupURI) bool { return u.id == other.id }

// Compare orders identifiers by numeric id.
func (u GroupURI) Compare(other GroupURI) int { return cmp.Compare(u.id, other.id) }

// MarshalJSON renders the canonical path, or null for the zero value.
func (u GroupURI) MarshalJSON() ([]byte, error) {
	return marshalPath(u, u.IsZero())
}

// UnmarshalJSON parses and validates the identifier from a JSON string.
// A JSON null yields the zero value.
func (u *GroupURI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = GroupURI{}
		return nil
	}
	s, err := unmarshalString(KindGroup, data)
	if err != nil {
		return err
	}
	parsed, err := ParseGroupURI(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// GroupTypeURI identifies a group type, keyed by slug ("wg", "rg", "area").
type GroupTypeURI struct {
	slug string
}

// ParseGroupTypeURI parses a group type identifier.
func ParseGroupTypeURI(s string) (GroupTypeURI, error) {
	slug, err := parseStringKey(KindGroupType, groupTypePathRE, s)
	if err != nil {
		return GroupTypeURI{}, err
	}
	return GroupTypeURI{slug: slug}, nil
}

// GroupTypeURIForSlug constructs the identifier for a known type slug. The
// slug must be lowercase alphanumeric with hyphens or underscores.
func GroupTypeURIForSlug(slug string) (GroupTypeURI, error) {
	return ParseGroupTypeURI("/api/v1/name/grouptypename/" + slug + "/")
}

// Slug returns the type slug keyed by this identifier.
func (u GroupTypeURI) Slug() string { return u.slug }

// Kind reports the resource kind.
func (GroupTypeURI) Kind() Kind { return KindGroupType }

// Path returns the canonical relative path.
func (u GroupTypeURI) Path() string {
	return fmt.Sprintf("/api/v1/name/grouptypename/%s/", u.slug)
}

// String returns the canonical path.
func (u GroupTypeURI) String() string { return u.Path() }

// IsZero reports whether the identifier is the zero value.
func (u GroupTypeURI) IsZero() bool { return u.slug == "" }

// Equal reports whether two identifiers name the same type.
func (u GroupTypeURI) Equal(other GroupTypeURI) bool { return u.slug == other.slug }

// Compare orders identifiers lexically by slug.
func (u GroupTypeURI) Compare(other GroupTypeURI) int { return cmp.Compare(u.slug, other.slug) }

// MarshalJSON renders the canonical path, or null for the zero value.
func (u GroupTypeURI) MarshalJSON() ([]byte, error) {
	return marshalPath(u, u.IsZero())
}

// UnmarshalJSON parses and validates the identifier from a JSON string.
// A JSON null yields the zero value.
func (u *GroupTypeURI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = GroupTypeURI{}
		return nil
	}
	s, err := unmarshalString(KindGroupType, data)
	if err != nil {
		return err
	}
	parsed, err := ParseGroupTypeURI(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// GroupStateURI identifies a group state, keyed by slug ("active", "conclude").
type GroupStateURI struct {
	slug string
}

// ParseGroupStateURI parses a group state identifier.
func ParseGroupStateURI(s string) (GroupStateURI, error) {
	slug, err := parseStringKey(KindGroupState, groupStatePathRE, s)
	if err != nil {
		return GroupStateURI{}, err
	}
	return GroupStateURI{slug: slug}, nil
}

// GroupStateURIForSlug constructs the identifier for a known state slug. The
// slug must be lowercase alphanumeric with hyphens or underscores.
func GroupStateURIForSlug(slug string) (GroupStateURI, error) {
	return ParseGroupStateURI("/api/v1/name/groupstatename/" + slug + "/")
}

// Slug returns the state slug keyed by this identifier.
func (u GroupStateURI) Slug() string { return u.slug }

// Kind reports the resource kind.
func (GroupStateURI) Kind() Kind { return KindGroupState }

// Path returns the canonical relative path.
func (u GroupStateURI) Path() string {
	return fmt.Sprintf("/api/v1/name/groupstatename/%s/", u.slug)
}

// String returns the canonical path.
func (u GroupStateURI) String() string { return u.Path() }

// IsZero reports whether the identifier is the zero value.
func (u GroupStateURI) IsZero() bool { return u.slug == "" }

// Equal reports whether two identifiers name the same state.
func (u GroupStateURI) Equal(other GroupStateURI) bool { return u.slug == other.slug }

// Compare orders identifiers lexically by slug.
func (u GroupStateURI) Compare(other GroupStateURI) int { return cmp.Compare(u.slug, other.slug) }

// MarshalJSON renders the canonical path, or null for the zero value.
func (u GroupStateURI) MarshalJSON() ([]byte, error) {
	return marshalPath(u, u.IsZero())
}

// UnmarshalJSON parses and validates the identifier from a JSON string.
// A JSON null yields the zero value.
func (u *GroupStateURI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = GroupStateURI{}
		return nil
	}
	s, err := unmarshalString(KindGroupState, data)
	if err != nil {
		return err
	}
	parsed, err := ParseGroupStateURI(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

var (
	_ URI = GroupURI{}
	_ URI = GroupTypeURI{}
	_ URI = GroupStateURI{}
)
