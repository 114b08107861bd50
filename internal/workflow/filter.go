// internal/workflow/filter.go
package workflow

import (
	"fmt"
	"strings"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Filters are the optional listing filters of the admin and public screens.
// Zero values mean "no filter".
type Filters struct {
	Status            Status
	Search            string
	Category          string
	City              string
	OrganizerType     string
	HasAvailableSpots bool
}

// Candidate is the in-memory view of a listed entity a Predicate matches against.
type Candidate struct {
	Status        Status
	Name          string
	Email         string
	Category      string
	City          string
	OrganizerType string
	Current       int
	Max           *int
}

// Columns maps filter fields to table columns for one kind.
// An empty column means the kind does not support that filter.
type Columns struct {
	Status        string
	Search        []string
	Category      string
	City          string
	OrganizerType string
	Current       string
	Max           string
}

type condition struct {
	field string
	match func(Candidate) bool
	expr  func(Columns) (clause.Expression, bool)
}

// Predicate is a conjunction of filter conditions. It evaluates in memory
// through Matches and renders to SQL through Expression.
type Predicate struct {
	conds []condition
}

// BuildFilterPredicate translates filters into a Predicate. It performs no I/O.
func BuildFilterPredicate(f Filters) Predicate {
	var p Predicate

	if f.Status != "" {
		status := f.Status
		p.conds = append(p.conds, condition{
			field: "status",
			match: func(c Candidate) bool { return c.Status == status },
			expr:  eqExpr(func(cols Columns) string { return cols.Status }, string(status)),
		})
	}

	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		p.conds = append(p.conds, condition{
			field: "search",
			match: func(c Candidate) bool {
				return strings.Contains(strings.ToLower(c.Name), term) ||
					strings.Contains(strings.ToLower(c.Email), term)
			},
			expr: func(cols Columns) (clause.Expression, bool) {
				if len(cols.Search) == 0 {
					return nil, false
				}
				pattern := "%" + escapeLike(term) + "%"
				ors := make([]clause.Expression, 0, len(cols.Search))
				for _, col := range cols.Search {
					ors = append(ors, clause.Expr{
						SQL:  `LOWER(?) LIKE ? ESCAPE '\'`,
						Vars: []any{clause.Column{Name: col}, pattern},
					})
				}
				if len(ors) == 1 {
					return ors[0], true
				}
				return clause.Or(ors...), true
			},
		})
	}

	if category := strings.TrimSpace(f.Category); category != "" {
		p.conds = append(p.conds, condition{
			field: "category",
			match: func(c Candidate) bool { return c.Category == category },
			expr:  eqExpr(func(cols Columns) string { return cols.Category }, category),
		})
	}

	if city := strings.TrimSpace(f.City); city != "" {
		p.conds = append(p.conds, condition{
			field: "city",
			match: func(c Candidate) bool { return c.City == city },
			expr:  eqExpr(func(cols Columns) string { return cols.City }, city),
		})
	}

	if organizer := strings.TrimSpace(f.OrganizerType); organizer != "" {
		p.conds = append(p.conds, condition{
			field: "organizer_type",
			match: func(c Candidate) bool { return c.OrganizerType == organizer },
			expr:  eqExpr(func(cols Columns) string { return cols.OrganizerType }, organizer),
		})
	}

	if f.HasAvailableSpots {
		p.conds = append(p.conds, condition{
			field: "has_available_spots",
			match: func(c Candidate) bool { return SpotsAvailable(c.Current, c.Max) },
			expr: func(cols Columns) (clause.Expression, bool) {
				if cols.Current == "" || cols.Max == "" {
					return nil, false
				}
				return SpotsAvailableExpr(cols.Current, cols.Max), true
			},
		})
	}

	return p
}

func eqExpr(column func(Columns) string, value string) func(Columns) (clause.Expression, bool) {
	return func(cols Columns) (clause.Expression, bool) {
		col := column(cols)
		if col == "" {
			return nil, false
		}
		return clause.Eq{Column: clause.Column{Name: col}, Value: value}, true
	}
}

// Empty reports whether the predicate matches everything.
func (p Predicate) Empty() bool {
	return len(p.conds) == 0
}

// Matches evaluates the predicate against an in-memory candidate.
func (p Predicate) Matches(c Candidate) bool {
	for _, cond := range p.conds {
		if !cond.match(c) {
			return false
		}
	}
	return true
}

// Expression renders the predicate for the given columns. It fails with
// domain.ErrInvalidInput when a filter has no column for this kind.
func (p Predicate) Expression(cols Columns) (clause.Expression, error) {
	exprs := make([]clause.Expression, 0, len(p.conds))
	for _, cond := range p.conds {
		e, ok := cond.expr(cols)
		if !ok {
			return nil, fmt.Errorf("%w: filter %q is not supported here", domain.ErrInvalidInput, cond.field)
		}
		exprs = append(exprs, e)
	}
	return clause.And(exprs...), nil
}

// Apply narrows db with the predicate.
func (p Predicate) Apply(db *gorm.DB, cols Columns) (*gorm.DB, error) {
	if p.Empty() {
		return db, nil
	}
	expr, err := p.Expression(cols)
	if err != nil {
		return nil, err
	}
	return db.Clauses(clause.Where{Exprs: []clause.Expression{expr}}), nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
