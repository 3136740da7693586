package validator

import (
	"iter"
	"reflect"
	"slices"
)

// Reason is a node of the failure tree: either a Simple requirement that
// failed or a Group of failing collection members.
type Reason interface {
	Equal(other Reason) bool
	reason()
}

// Simple is a single failed requirement. Two Simple reasons with the same
// text are the same reason.
type Simple struct {
	Text string
}

func (Simple) reason() {}

func (s Simple) Equal(other Reason) bool {
	o, ok := other.(Simple)
	return ok && o.Text == s.Text
}

func (s Simple) String() string { return s.Text }

// Group collects the failing members of a named collection.
// A Group attached by the builder always has at least one element.
type Group struct {
	Name     string
	Elements []Element
}

func (Group) reason() {}

// Equal reports structural equality: same name and the same element set,
// regardless of element order.
func (g Group) Equal(other Reason) bool {
	o, ok := other.(Group)
	if !ok || o.Name != g.Name || len(o.Elements) != len(g.Elements) {
		return false
	}
	return containsAllElements(g.Elements, o.Elements) && containsAllElements(o.Elements, g.Elements)
}

// Element pairs a failing collection member with the reasons it failed.
// Index is the member's position in the collection and is part of its
// identity, so equal-valued members at different positions stay distinct.
type Element struct {
	Index   int
	Member  any
	Reasons Reasons
}

func (e Element) Equal(other Element) bool {
	return e.Index == other.Index &&
		membersEqual(e.Member, other.Member) &&
		e.Reasons.Equal(other.Reasons)
}

// Equaler lets domain values define their own value equality for
// element comparison. Members that don't implement it are compared with
// reflect.DeepEqual.
type Equaler interface {
	Equal(other any) bool
}

func membersEqual(a, b any) bool {
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

func containsAllElements(haystack, needles []Element) bool {
	for _, n := range needles {
		if !slices.ContainsFunc(haystack, n.Equal) {
			return false
		}
	}
	return true
}

// Reasons is an insertion-ordered set of failure reasons. Adding a reason
// equal to one already present is a no-op.
type Reasons struct {
	items []Reason
}

// NewReasons builds a set from rs, dropping duplicates.
func NewReasons(rs ...Reason) Reasons {
	var set Reasons
	for _, r := range rs {
		set.Add(r)
	}
	return set
}

// Add inserts reason unless an equal one is already present. Nil reasons
// and groups without elements are ignored. Reports whether the set grew.
func (r *Reasons) Add(reason Reason) bool {
	if reason == nil {
		return false
	}
	if g, ok := reason.(Group); ok && len(g.Elements) == 0 {
		return false
	}
	if r.Contains(reason) {
		return false
	}
	r.items = append(r.items, reason)
	return true
}

func (r Reasons) Len() int { return len(r.items) }

func (r Reasons) IsEmpty() bool { return len(r.items) == 0 }

// Contains reports whether an equal reason is present. Nil is never present.
func (r Reasons) Contains(reason Reason) bool {
	if reason == nil {
		return false
	}
	return slices.ContainsFunc(r.items, reason.Equal)
}

// Items returns a copy of the reasons in insertion order.
func (r Reasons) Items() []Reason {
	return slices.Clone(r.items)
}

// All iterates the reasons in insertion order.
func (r Reasons) All() iter.Seq[Reason] {
	return slices.Values(r.items)
}

// Clone returns a set that shares nothing mutable with r.
func (r Reasons) Clone() Reasons {
	return Reasons{items: slices.Clone(r.items)}
}

// Equal reports set equality, ignoring insertion order.
func (r Reasons) Equal(other Reasons) bool {
	if len(r.items) != len(other.items) {
		return false
	}
	for _, item := range r.items {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// Texts returns the text of every top-level Simple reason.
func (r Reasons) Texts() []string {
	var texts []string
	for _, item := range r.items {
		if s, ok := item.(Simple); ok {
			texts = append(texts, s.Text)
		}
	}
	return texts
}

// Has reports whether a top-level Simple reason with the given text exists.
func (r Reasons) Has(text string) bool {
	return r.Contains(Simple{Text: text})
}

// Groups returns every top-level Group reason.
func (r Reasons) Groups() []Group {
	var groups []Group
	for _, item := range r.items {
		if g, ok := item.(Group); ok {
			groups = append(groups, g)
		}
	}
	return groups
}

// Group returns the first top-level group with the given name.
func (r Reasons) Group(name string) (Group, bool) {
	for _, item := range r.items {
		if g, ok := item.(Group); ok && g.Name == name {
			return g, true
		}
	}
	return Group{}, false
}
