package dturi

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/csperkins/ietfdata-go/pkg/dterror"
)

// Kind identifies one resource kind served by the Datatracker.
type Kind string

const (
	KindPerson           Kind = "person"
	KindEmail            Kind = "email"
	KindHistoricalPerson Kind = "historical-person"
	KindHistoricalEmail  Kind = "historical-email"
	KindPersonAlias      Kind = "person-alias"
	KindGroup            Kind = "group"
	KindGroupType        Kind = "group-type"
	KindGroupState       Kind = "group-state"
	KindDocument         Kind = "document"
	KindDocState         Kind = "doc-state"
	KindDocStateType     Kind = "doc-state-type"
	KindSubmission       Kind = "submission"
)

// Kinds returns every resource kind this package can parse.
func Kinds() []Kind {
	return []Kind{
		KindPerson,
		KindEmail,
		KindHistoricalPerson,
		KindHistoricalEmail,
		KindPersonAlias,
		KindGroup,
		KindGroupType,
		KindGroupState,
		KindDocument,
		KindDocState,
		KindDocStateType,
		KindSubmission,
	}
}

// IsValid returns true if this is a recognized resource kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindPerson, KindEmail, KindHistoricalPerson, KindHistoricalEmail,
		KindPersonAlias, KindGroup, KindGroupType, KindGroupState,
		KindDocument, KindDocState, KindDocStateType, KindSubmission:
		return true
	default:
		return false
	}
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

// URI is implemented by every typed identifier in this package.
type URI interface {
	// Kind reports which resource kind the identifier belongs to.
	Kind() Kind
	// Path returns the canonical relative path, with leading and trailing
	// slashes, suitable for handing to a transport fetch.
	Path() string
	// IsZero reports whether the identifier is its type's zero value.
	IsZero() bool
}

// Parse constructs the typed URI of the given kind from s. The concrete type
// of the result is the kind's URI type; use the per-kind Parse functions when
// the kind is known at compile time.
func Parse(kind Kind, s string) (URI, error) {
	switch kind {
	case KindPerson:
		return ParsePersonURI(s)
	case KindEmail:
		return ParseEmailURI(s)
	case KindHistoricalPerson:
		return ParseHistoricalPersonURI(s)
	case KindHistoricalEmail:
		return ParseHistoricalEmailURI(s)
	case KindPersonAlias:
		return ParsePersonAliasURI(s)
	case KindGroup:
		return ParseGroupURI(s)
	case KindGroupType:
		return ParseGroupTypeURI(s)
	case KindGroupState:
		return ParseGroupStateURI(s)
	case KindDocument:
		return ParseDocumentURI(s)
	case KindDocState:
		return ParseDocStateURI(s)
	case KindDocStateType:
		return ParseDocStateTypeURI(s)
	case KindSubmission:
		return ParseSubmissionURI(s)
	default:
		return nil, dterror.Validation("dturi.Parse", s, fmt.Sprintf("unknown resource kind %q", kind))
	}
}

// Structural patterns for each kind, matched after normalization.
var (
	personPathRE           = regexp.MustCompile(`^/api/v1/person/person/([0-9]+)/$`)
	emailPathRE            = regexp.MustCompile(`^/api/v1/person/email/([^/@]+@[^/@]+)/$`)
	historicalPersonPathRE = regexp.MustCompile(`^/api/v1/person/historicalperson/([0-9]+)/$`)
	historicalEmailPathRE  = regexp.MustCompile(`^/api/v1/person/historicalemail/([0-9]+)/$`)
	personAliasPathRE      = regexp.MustCompile(`^/api/v1/person/alias/([0-9]+)/$`)
	groupPathRE            = regexp.MustCompile(`^/api/v1/group/group/([0-9]+)/$`)
	groupTypePathRE        = regexp.MustCompile(`^/api/v1/name/grouptypename/([a-z0-9_-]+)/$`)
	groupStatePathRE       = regexp.MustCompile(`^/api/v1/name/groupstatename/([a-z0-9_-]+)/$`)
	documentPathRE         = regexp.MustCompile(`^/api/v1/doc/document/([A-Za-z0-9._+-]+)/$`)
	docStatePathRE         = regexp.MustCompile(`^/api/v1/doc/state/([0-9]+)/$`)
	docStateTypePathRE     = regexp.MustCompile(`^/api/v1/doc/statetype/([a-z0-9_-]+)/$`)
	submissionPathRE       = regexp.MustCompile(`^/api/v1/submit/submission/([0-9]+)/$`)
)

// normalize rewrites s into the canonical relative form: absolute Datatracker
// URLs are reduced to their path, a missing leading slash is added, and a
// missing trailing slash is added. Normalization never inspects the path
// structure — that is the pattern match's job.
func normalize(kind Kind, s string) (string, error) {
	if s == "" {
		return "", dterror.Validation("dturi.Parse", s, fmt.Sprintf("empty %s URI", kind))
	}
	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil {
			return "", dterror.Validation("dturi.Parse", s, fmt.Sprintf("unparseable %s URI", kind))
		}
		s = u.Path
	}
	if !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}
	return s, nil
}

// parseNumericKey normalizes s, matches it against re, and extracts the
// numeric identifier segment.
func parseNumericKey(kind Kind, re *regexp.Regexp, s string) (uint64, error) {
	norm, err := normalize(kind, s)
	if err != nil {
		return 0, err
	}
	m := re.FindStringSubmatch(norm)
	if m == nil {
		return 0, dterror.Validation("dturi.Parse", s, fmt.Sprintf("does not match %s URI pattern", kind))
	}
	id, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, dterror.Validation("dturi.Parse", s, fmt.Sprintf("%s identifier out of range", kind))
	}
	return id, nil
}

// parseStringKey normalizes s, matches it against re, and extracts the
// string key segment (slug, name, or address).
func parseStringKey(kind Kind, re *regexp.Regexp, s string) (string, error) {
	norm, err := normalize(kind, s)
	if err != nil {
		return "", err
	}
	m := re.FindStringSubmatch(norm)
	if m == nil {
		return "", dterror.Validation("dturi.Parse", s, fmt.Sprintf("does not match %s URI pattern", kind))
	}
	return m[1], nil
}

// marshalPath renders a typed URI as its canonical quoted JSON string, or
// null for the zero value.
func marshalPath(u URI, zero bool) ([]byte, error) {
	if zero {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(u.Path())), nil
}

// unmarshalString extracts the plain string from a JSON value for the
// per-kind UnmarshalJSON implementations.
func unmarshalString(kind Kind, data []byte) (string, error) {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return "", dterror.Validation("dturi.Unmarshal", string(data), fmt.Sprintf("%s URI must be a JSON string", kind))
	}
	return s, nil
}
