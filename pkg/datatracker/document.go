package datatracker

import (
	"github.com/csperkins/ietfdata-go/pkg/dturi"
)

// Document is a draft, RFC, charter, or any other document the Datatracker
// manages. Name is the stable key ("draft-ietf-quic-transport"). RFC is nil
// unless the document has been published as an RFC.
type Document struct {
	ID               uint64                `json:"id"`
	ResourceURI      dturi.DocumentURI     `json:"resource_uri"`
	Name             string                `json:"name"`
	Title            string                `json:"title"`
	Pages            uint64                `json:"pages,omitempty"`
	Words            uint64                `json:"words,omitempty"`
	Time             Time                  `json:"time"`
	Notify           string                `json:"notify"`
	Expires          Time                  `json:"expires"`
	Type             string                `json:"type"`
	RFC              *uint64               `json:"rfc"`
	Rev              string                `json:"rev"`
	Abstract         string                `json:"abstract"`
	InternalComments string                `json:"internal_comments"`
	Order            uint64                `json:"order"`
	Note             string                `json:"note"`
	AD               dturi.PersonURI       `json:"ad"`
	Shepherd         dturi.EmailURI        `json:"shepherd"`
	Group            dturi.GroupURI        `json:"group"`
	Stream           string                `json:"stream,omitempty"`
	StdLevel         string                `json:"std_level,omitempty"`
	IntendedStdLevel string                `json:"intended_std_level,omitempty"`
	States           []dturi.DocStateURI   `json:"states"`
	Submissions      []dturi.SubmissionURI `json:"submissions"`
	Tags             []string              `json:"tags"`
	UploadedFilename string                `json:"uploaded_filename"`
	ExternalURL      string                `json:"external_url"`
}

// URI returns the document's canonical identifier.
func (d *Document) URI() dturi.DocumentURI {
	return d.ResourceURI
}

// DocState is one state within a document state machine, such as "Active"
// within the draft states or "RFC Ed Queue" within the IESG states.
type DocState struct {
	ID          uint64                `json:"id"`
	ResourceURI dturi.DocStateURI     `json:"resource_uri"`
	Name        string                `json:"name"`
	Desc        string                `json:"desc"`
	Slug        string                `json:"slug"`
	NextStates  []dturi.DocStateURI   `json:"next_states"`
	Used        bool                  `json:"used"`
	Order       uint64                `json:"order"`
	Type        dturi.DocStateTypeURI `json:"type"`
}

// URI returns the state's canonical identifier.
func (s *DocState) URI() dturi.DocStateURI {
	return s.ResourceURI
}

// DocStateType names one document state machine.
type DocStateType struct {
	ResourceURI dturi.DocStateTypeURI `json:"resource_uri"`
	Slug        string                `json:"slug"`
	Label       string                `json:"label"`
}

// URI returns the state machine's canonical identifier.
func (t *DocStateType) URI() dturi.DocStateTypeURI {
	return t.ResourceURI
}

// Submission records one upload of a draft revision.
type Submission struct {
	ID             uint64              `json:"id"`
	ResourceURI    dturi.SubmissionURI `json:"resource_uri"`
	Name           string              `json:"name"`
	Rev            string              `json:"rev"`
	Title          string              `json:"title"`
	Abstract       string              `json:"abstract"`
	Pages          uint64              `json:"pages,omitempty"`
	Words          uint64              `json:"words,omitempty"`
	Group          dturi.GroupURI      `json:"group"`
	Draft          dturi.DocumentURI   `json:"draft"`
	FileTypes      string              `json:"file_types"`
	FileSize       uint64              `json:"file_size,omitempty"`
	DocumentDate   Time                `json:"document_date"`
	SubmissionDate Time                `json:"submission_date"`
}

// URI returns the submission's canonical identifier.
func (s *Submission) URI() dturi.SubmissionURI {
	return s.ResourceURI
}
