package datatracker

import (
	"github.com/csperkins/ietfdata-go/pkg/dturi"
)

// Group is a working group, research group, area, team, or other
// organizational unit. Parent is zero for top-level groups; AD is zero when
// no area director is assigned.
type Group struct {
	ID            uint64              `json:"id"`
	ResourceURI   dturi.GroupURI      `json:"resource_uri"`
	Acronym       string              `json:"acronym"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Charter       dturi.DocumentURI   `json:"charter"`
	AD            dturi.PersonURI     `json:"ad"`
	Time          Time                `json:"time"`
	Type          dturi.GroupTypeURI  `json:"type"`
	Comments      string              `json:"comments"`
	Parent        dturi.GroupURI      `json:"parent"`
	State         dturi.GroupStateURI `json:"state"`
	UnusedStates  []dturi.DocStateURI `json:"unused_states"`
	UnusedTags    []string            `json:"unused_tags"`
	ListEmail     string              `json:"list_email"`
	ListSubscribe string              `json:"list_subscribe"`
	ListArchive   string              `json:"list_archive"`
}

// URI returns the group's canonical identifier.
func (g *Group) URI() dturi.GroupURI {
	return g.ResourceURI
}

// GroupType describes one kind of group: working group, research group,
// area, directorate.
type GroupType struct {
	ResourceURI dturi.GroupTypeURI `json:"resource_uri"`
	Name        string             `json:"name"`
	VerboseName string             `json:"verbose_name"`
	Slug        string             `json:"slug"`
	Desc        string             `json:"desc"`
	Used        bool               `json:"used"`
	Order       uint64             `json:"order"`
}

// URI returns the type's canonical identifier.
func (t *GroupType) URI() dturi.GroupTypeURI {
	return t.ResourceURI
}

// GroupState describes one lifecycle state a group can be in: proposed,
// active, concluded.
type GroupState struct {
	ResourceURI dturi.GroupStateURI `json:"resource_uri"`
	Desc        string              `json:"desc"`
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	Used        bool                `json:"used"`
	Order       uint64              `json:"order"`
}

// URI returns the state's canonical identifier.
func (s *GroupState) URI() dturi.GroupStateURI {
	return s.ResourceURI
}
