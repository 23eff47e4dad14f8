package dturi

import (
	"cmp"
	"fmt"
)

// DocumentURI identifies a document, keyed by its draft name
// ("draft-ietf-quic-transport", "rfc9000").
type DocumentURI struct {
	name string
}

// ParseDocumentURI parses a document identifier from its canonical path, an
// absolute Datatracker URL, or a bare relative path.
func ParseDocumentURI(s string) (DocumentURI, error) {
	name, err := parseStringKey(KindDocument, documentPathRE, s)
	if err != nil {
		return DocumentURI{}, err
	}
	return DocumentURI{name: name}, nil
}

// DocumentURIForName constructs the identifier for a known document name.
// The name must use the document name charset: letters, digits, and ._+-
func DocumentURIForName(name string) (DocumentURI, error) {
	return ParseDocumentURI("/api/v1/doc/document/" + name + "/")
}

// Name returns the document name keyed by this identifier.
func (u DocumentURI) Name() string { return u.name }

// Kind reports the resource kind.
func (DocumentURI) Kind() Kind { return KindDocument }

// Path returns the canonical relative path.
func (u DocumentURI) Path() string {
	return fmt.Sprintf("/api/v1/doc/document/%s/", u.name)
}

// String returns the canonical path.
func (u DocumentURI) String() string { return u.Path() }

// IsZero reports whether the identifier is the zero value.
func (u DocumentURI) IsZero() bool { return u.name == "" }

// Equal reports whether two identifiers name the same document.
func (u DocumentURI) Equal(other DocumentURI) bool { return u.name == other.name }

// Compare orders identifiers lexically by name.
func (u DocumentURI) Compare(other DocumentURI) int { return cmp.Compare(u.name, other.name) }

// MarshalJSON renders the canonical path, or null for the zero value.
func (u DocumentURI) MarshalJSON() ([]byte, error) {
	return marshalPath(u, u.IsZero())
}

// UnmarshalJSON parses and validates the identifier from a JSON string.
// A JSON null yields the zero value.
func (u *DocumentURI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = DocumentURI{}
		return nil
	}
	s, err := unmarshalString(KindDocument, data)
	if err != nil {
		return err
	}
	parsed, err := ParseDocumentURI(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// DocStateURI identifies a document state record.
type DocStateURI struct {
	id uint64
}

// ParseDocStateURI parses a document state identifier.
func ParseDocStateURI(s string) (DocStateURI, error) {
	id, err := parseNumericKey(KindDocState, docStatePathRE, s)
	if err != nil {
		return DocStateURI{}, err
	}
	return DocStateURI{id: id}, nil
}

// DocStateURIForID constructs the identifier for a known state id.
func DocStateURIForID(id uint64) DocStateURI {
	return DocStateURI{id: id}
}

// ID returns the numeric state identifier.
func (u DocStateURI) ID() uint64 { return u.id }

// Kind reports the resource kind.
func (DocStateURI) Kind() Kind { return KindDocState }

// Path returns the canonical relative path.
func (u DocStateURI) Path() string {
	return fmt.Sprintf("/api/v1/doc/state/%d/", u.id)
}

// String returns the canonical path.
func (u DocStateURI) String() string { return u.Path() }

// IsZero reports whether the identifier is the zero value.
func (u DocStateURI) IsZero() bool { return u.id == 0 }

// Equal reports whether two identifiers name the same state.
func (u DocStateURI) Equal(other DocStateURI) bool { return u.id == other.id }

// Compare orders identifiers by numeric id.
func (u DocStateURI) Compare(other DocStateURI) int { return cmp.Compare(u.id, other.id) }

// MarshalJSON renders the canonical path, or null for the zero value.
func (u DocStateURI) MarshalJSON() ([]byte, error) {
	return marshalPath(u, u.IsZero())
}

// UnmarshalJSON parses and validates the identifier from a JSON string.
// A JSON null yields the zero value.
func (u *DocStateURI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = DocStateURI{}
		return nil
	}
	s, err := unmarshalString(KindDocState, data)
	if err != nil {
		return err
	}
	parsed, err := ParseDocStateURI(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// DocStateTypeURI identifies a document state machine, keyed by slug
// ("draft-iesg", "draft-stream-ietf").
type DocStateTypeURI struct {
	slug string
}

// ParseDocStateTypeURI parses a document state type identifier.
func ParseDocStateTypeURI(s string) (DocStateTypeURI, error) {
	slug, err := parseStringKey(KindDocStateType, docStateTypePathRE, s)
	if err != nil {
		return DocStateTypeURI{}, err
	}
	return DocStateTypeURI{slug: slug}, nil
}

// DocStateTypeURIForSlug constructs the identifier for a known state type
// slug. The slug must be lowercase alphanumeric with hyphens or underscores.
func DocStateTypeURIForSlug(slug string) (DocStateTypeURI, error) {
	return ParseDocStateTypeURI("/api/v1/doc/statetype/" + slug + "/")
}

// Slug returns the state type slug keyed by this identifier.
func (u DocStateTypeURI) Slug() string { return u.slug }

// Kind reports the resource kind.
func (DocStateTypeURI) Kind() Kind { return KindDocStateType }

// Path returns the canonical relative path.
func (u DocStateTypeURI) Path() string {
	return fmt.Sprintf("/api/v1/doc/statetype/%s/", u.slug)
}

// String returns the canonical path.
func (u DocStateTypeURI) String() string { return u.Path() }

// IsZero reports whether the identifier is the zero value.
func (u DocStateTypeURI) IsZero() bool { return u.slug == "" }

// Equal reports whether two identifiers name the same state type.
func (u DocStateTypeURI) Equal(other DocStateTypeURI) bool { return u.slug == other.slug }

// Compare orders identifiers lexically by slug.
func (u DocStateTypeURI) Compare(other DocStateTypeURI) int { return cmp.Compare(u.slug, other.slug) }

// MarshalJSON renders the canonical path, or null for the zero value.
func (u DocStateTypeURI) MarshalJSON() ([]byte, error) {
	return marshalPath(u, u.IsZero())
}

// UnmarshalJSON parses and validates the identifier from a JSON string.
// A JSON null yields the zero value.
func (u *DocStateTypeURI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = DocStateTypeURI{}
		return nil
	}
	s, err := unmarshalString(KindDocStateType, data)
	if err != nil {
		return err
	}
	parsed, err := ParseDocStateTypeURI(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// SubmissionURI identifies a draft submission record.
type SubmissionURI struct {
	id uint64
}

// ParseSubmissionURI parses a submission identifier.
func ParseSubmissionURI(s string) (SubmissionURI, error) {
	id, err := parseNumericKey(KindSubmission, submissionPathRE, s)
	if err != nil {
		return SubmissionURI{}, err
	}
	return SubmissionURI{id: id}, nil
}

// SubmissionURIForID constructs the identifier for a known submission id.
func SubmissionURIForID(id uint64) SubmissionURI {
	return SubmissionURI{id: id}
}

// ID returns the numeric submission identifier.
func (u SubmissionURI) ID() uint64 { return u.id }

// Kind reports the resource kind.
func (SubmissionURI) Kind() Kind { return KindSubmission }

// Path returns the canonical relative path.
func (u SubmissionURI) Path() string {
	return fmt.Sprintf("/api/v1/submit/submission/%d/", u.id)
}

// String returns the canonical path.
func (u SubmissionURI) String() string { return u.Path() }

// IsZero reports whether the identifier is the zero value.
func (u SubmissionURI) IsZero() bool { return u.id == 0 }

// Equal reports whether two identifiers name the same submission.
func (u SubmissionURI) Equal(other SubmissionURI) bool { return u.id == other.id }

// Compare orders identifiers by numeric id.
func (u SubmissionURI) Compare(other SubmissionURI) int { return cmp.Compare(u.id, other.id) }

// MarshalJSON renders the canonical path, or null for the zero value.
func (u SubmissionURI) MarshalJSON() ([]byte, error) {
	return marshalPath(u, u.IsZero())
}

// UnmarshalJSON parses and validates the identifier from a JSON string.
// A JSON null yields the zero value.
func (u *SubmissionURI) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*u = SubmissionURI{}
		return nil
	}
	s, err := unmarshalString(KindSubmission, data)
	if err != nil {
		return err
	}
	parsed, err := ParseSubmissionURI(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

var (
	_ URI = DocumentURI{}
	_ URI = DocStateURI{}
	_ URI = DocStateTypeURI{}
	_ URI = SubmissionURI{}
)
