package validator

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler = Reasons{}
	_ yaml.Marshaler = Reasons{}
)

// ReportNode is the serializable form of a Reason. Exactly one of
// Requirement or Collection is set.
type ReportNode struct {
	Requirement string         `json:"requirement,omitempty" yaml:"requirement,omitempty"`
	Collection  string         `json:"collection,omitempty" yaml:"collection,omitempty"`
	Members     []ReportMember `json:"members,omitempty" yaml:"members,omitempty"`
}

// ReportMember is the serializable form of an Element.
type ReportMember struct {
	Index   int          `json:"index" yaml:"index"`
	Member  string       `json:"member" yaml:"member"`
	Reasons []ReportNode `json:"reasons" yaml:"reasons"`
}

// NewReport converts a failure tree into plain structs, preserving order.
func NewReport(reasons Reasons) []ReportNode {
	nodes := make([]ReportNode, 0, reasons.Len())
	for _, item := range reasons.items {
		switch r := item.(type) {
		case Simple:
			nodes = append(nodes, ReportNode{Requirement: r.Text})
		case Group:
			members := make([]ReportMember, 0, len(r.Elements))
			for _, el := range r.Elements {
				members = append(members, ReportMember{
					Index:   el.Index,
					Member:  Display(el.Member),
					Reasons: NewReport(el.Reasons),
				})
			}
			nodes = append(nodes, ReportNode{Collection: r.Name, Members: members})
		}
	}
	return nodes
}

func (r Reasons) MarshalJSON() ([]byte, error) {
	return json.Marshal(NewReport(r))
}

func (r Reasons) MarshalYAML() (any, error) {
	return NewReport(r), nil
}

// ReportYAML renders reasons as a YAML document.
func ReportYAML(reasons Reasons) ([]byte, error) {
	return yaml.Marshal(reasons)
}

// MarshalJSON encodes the source's display string, the failure count and
// the reason tree.
func (e *ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Source   string  `json:"source"`
		Failures int     `json:"failures"`
		Reasons  Reasons `json:"reasons"`
	}{
		Source:   Display(e.Source),
		Failures: e.Reasons.Len(),
		Reasons:  e.Reasons,
	})
}
