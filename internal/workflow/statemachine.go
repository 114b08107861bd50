// internal/workflow/statemachine.go
package workflow

import (
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"
)

// Kind identifies a family of moderated entities sharing one transition table.
type Kind string

const (
	KindOrganization Kind = "organization"
	KindInitiative   Kind = "initiative"
)

// Status is a moderation status value. Valid values depend on the Kind.
type Status string

const (
	OrganizationPending  Status = "pending"
	OrganizationApproved Status = "approved"
	OrganizationRejected Status = "rejected"

	InitiativeDraft     Status = "draft"
	InitiativePublished Status = "published"
	InitiativeCancelled Status = "cancelled"
)

// Table declares the states of one Kind and the transitions between them.
type Table struct {
	initial        Status
	transitions    map[Status][]Status
	reasonRequired map[Status]bool
}

// NewTable creates a table whose entities are created in the initial state.
func NewTable(initial Status) *Table {
	t := &Table{
		initial:        initial,
		transitions:    make(map[Status][]Status),
		reasonRequired: make(map[Status]bool),
	}
	t.transitions[initial] = []Status{}
	return t
}

// Allow declares from as a state and registers the states reachable from it.
// Calling Allow without targets declares a terminal state.
func (t *Table) Allow(from Status, to ...Status) *Table {
	if _, ok := t.transitions[from]; !ok {
		t.transitions[from] = []Status{}
	}
	for _, target := range to {
		if target == from {
			continue
		}
		if !slices.Contains(t.transitions[from], target) {
			t.transitions[from] = append(t.transitions[from], target)
		}
		if _, ok := t.transitions[target]; !ok {
			t.transitions[target] = []Status{}
		}
	}
	return t
}

// RequireReason marks target states that can only be entered with a reason.
func (t *Table) RequireReason(to ...Status) *Table {
	for _, target := range to {
		t.reasonRequired[target] = true
	}
	return t
}

// StatusMachine answers legality questions for every registered Kind.
// Lookups never perform I/O and fail closed for unknown kinds or states.
type StatusMachine struct {
	mu     sync.RWMutex
	tables map[Kind]*Table
}

// NewStatusMachine creates an empty machine.
func NewStatusMachine() *StatusMachine {
	return &StatusMachine{tables: make(map[Kind]*Table)}
}

// DefaultMachine returns a machine with the organization and initiative tables registered.
func DefaultMachine() *StatusMachine {
	return NewStatusMachine().
		Register(KindOrganization, NewTable(OrganizationPending).
			Allow(OrganizationPending, OrganizationApproved, OrganizationRejected).
			Allow(OrganizationApproved).
			Allow(OrganizationRejected).
			RequireReason(OrganizationRejected)).
		Register(KindInitiative, NewTable(InitiativeDraft).
			Allow(InitiativeDraft, InitiativePublished, InitiativeCancelled).
			Allow(InitiativePublished, InitiativeCancelled).
			Allow(InitiativeCancelled).
			RequireReason(InitiativeCancelled))
}

// Register adds or replaces the table for kind.
func (m *StatusMachine) Register(kind Kind, t *Table) *StatusMachine {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[kind] = t
	return m
}

func (m *StatusMachine) table(kind Kind) (*Table, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tables[kind]
	return t, ok
}

// Kinds returns the registered kinds in lexical order.
func (m *StatusMachine) Kinds() []Kind {
	m.mu.RLock()
	defer m.mu.RUnlock()
	kinds := make([]Kind, 0, len(m.tables))
	for k := range m.tables {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Transitions returns a copy of the transition map of kind, or nil if kind is unknown.
func (m *StatusMachine) Transitions(kind Kind) map[Status][]Status {
	t, ok := m.table(kind)
	if !ok {
		return nil
	}
	out := make(map[Status][]Status, len(t.transitions))
	for from, tos := range t.transitions {
		out[from] = slices.Clone(tos)
	}
	return out
}

// IsLegal reports whether kind may move from one status to another.
func (m *StatusMachine) IsLegal(kind Kind, from, to Status) bool {
	if from == to {
		return false
	}
	t, ok := m.table(kind)
	if !ok {
		return false
	}
	targets, ok := t.transitions[from]
	if !ok {
		return false
	}
	return slices.Contains(targets, to)
}

// RequiresReason reports whether entering to requires a non-empty reason.
func (m *StatusMachine) RequiresReason(kind Kind, to Status) bool {
	t, ok := m.table(kind)
	if !ok {
		return false
	}
	return t.reasonRequired[to]
}

// Initial returns the creation state of kind.
func (m *StatusMachine) Initial(kind Kind) (Status, bool) {
	t, ok := m.table(kind)
	if !ok {
		return "", false
	}
	return t.initial, true
}

// Valid reports whether status is a declared state of kind.
func (m *StatusMachine) Valid(kind Kind, status Status) bool {
	t, ok := m.table(kind)
	if !ok {
		return false
	}
	_, ok = t.transitions[status]
	return ok
}

// Terminal reports whether status has no outgoing transitions.
func (m *StatusMachine) Terminal(kind Kind, status Status) bool {
	t, ok := m.table(kind)
	if !ok {
		return false
	}
	targets, ok := t.transitions[status]
	return ok && len(targets) == 0
}

// ToDot exports the table of kind as a Graphviz DOT graph.
func (m *StatusMachine) ToDot(kind Kind) string {
	transitions := m.Transitions(kind)
	initial, _ := m.Initial(kind)

	froms := make([]string, 0, len(transitions))
	for from := range transitions {
		froms = append(froms, string(from))
	}
	sort.Strings(froms)

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", kind)
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=circle];\n")
	if initial != "" {
		b.WriteString("  start [shape=point];\n")
		fmt.Fprintf(&b, "  start -> %q;\n", initial)
	}
	for _, from := range froms {
		tos := transitions[Status(from)]
		if len(tos) == 0 {
			fmt.Fprintf(&b, "  %q [shape=doublecircle];\n", from)
			continue
		}
		for _, to := range tos {
			label := ""
			if m.RequiresReason(kind, to) {
				label = " [label=\"reason\"]"
			}
			fmt.Fprintf(&b, "  %q -> %q%s;\n", from, to, label)
		}
	}
	b.WriteString("}\n")
	return b.String()
}
