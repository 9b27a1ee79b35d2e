package domain

import (
	"fmt"

	pkgerrors "github.com/yungbote/arbor-backend/internal/pkg/errors"
)

// Label discriminates the two node kinds a branch or reference may attach to.
// The set is closed; anything else is rejected before a query is built.
type Label string

const (
	LabelTrunk  Label = "Trunk"
	LabelBranch Label = "Branch"
)

func (l Label) Valid() bool {
	return l == LabelTrunk || l == LabelBranch
}

func (l Label) String() string { return string(l) }

// ParseLabel validates a raw discriminator against the closed set.
func ParseLabel(raw string) (Label, error) {
	l := Label(raw)
	if !l.Valid() {
		return "", fmt.Errorf("%w: label %q must be Trunk or Branch", pkgerrors.ErrInvalidArgument, raw)
	}
	return l, nil
}

// Trunk is a root topic, globally unique by name. Trunks never have
// outgoing BELONGS_TO edges (by convention, not enforced by the store).
type Trunk struct {
	Name string `json:"name"`
}

// Branch is a nested topic. Its name is only unique per parent edge, so the
// same branch may belong to several trunks or branches at once.
type Branch struct {
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

// Reference is a bibliographic citation attached to one or more topics.
// Its title is unique per subject edge, not globally.
type Reference struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// BranchAttachment is the record returned when a branch is created under a
// parent: the branch plus the parent it was attached to.
type BranchAttachment struct {
	Branch Branch `json:"branch"`
	Parent string `json:"parent"`
}

// ReferenceAttachment is the record returned when a reference is created
// about a subject.
type ReferenceAttachment struct {
	Reference Reference `json:"reference"`
	About     string    `json:"about"`
}

// Connection is the record returned when an extra edge is added between two
// already-existing nodes.
type Connection struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Ancestor is one node on an upward BELONGS_TO path, tagged with its label
// since the path may cross branches before ending at a trunk.
type Ancestor struct {
	Label Label  `json:"label"`
	Name  string `json:"name"`
}
