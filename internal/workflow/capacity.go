// internal/workflow/capacity.go
package workflow

import (
	"github.com/dangerclosesec/mubadara/internal/domain"
	"gorm.io/gorm/clause"
)

// Reserve applies delta to a counter bounded by max. A nil max means unbounded.
// Releases (delta <= 0) always succeed and never take the counter below zero.
func Reserve(current int, max *int, delta int) (int, error) {
	next := current + delta
	if delta <= 0 {
		if next < 0 {
			next = 0
		}
		return next, nil
	}
	if max != nil && next > *max {
		return current, &domain.CapacityExceededError{Requested: next, Limit: *max}
	}
	return next, nil
}

// SpotsAvailable reports whether one more unit fits in the counter.
func SpotsAvailable(current int, max *int) bool {
	_, err := Reserve(current, max, 1)
	return err == nil
}

// Limit is where a counter ceiling comes from: a nullable column or a fixed value.
type Limit struct {
	Column string
	Value  *int
}

// ColumnLimit reads the ceiling from a nullable column; NULL means unbounded.
func ColumnLimit(column string) Limit {
	return Limit{Column: column}
}

// FixedLimit uses a constant ceiling.
func FixedLimit(n int) Limit {
	return Limit{Value: &n}
}

// CeilingExpr is the SQL form of Reserve's bound check: true when adding delta
// to currentColumn stays within limit.
func CeilingExpr(currentColumn string, limit Limit, delta int) clause.Expression {
	current := clause.Column{Name: currentColumn}
	switch {
	case limit.Column != "":
		max := clause.Column{Name: limit.Column}
		return clause.Expr{
			SQL:  "(? IS NULL OR ? + ? <= ?)",
			Vars: []any{max, current, delta, max},
		}
	case limit.Value != nil:
		return clause.Expr{
			SQL:  "? + ? <= ?",
			Vars: []any{current, delta, *limit.Value},
		}
	default:
		return clause.Expr{SQL: "1 = 1"}
	}
}

// SpotsAvailableExpr is the SQL form of SpotsAvailable.
func SpotsAvailableExpr(currentColumn, maxColumn string) clause.Expression {
	return CeilingExpr(currentColumn, ColumnLimit(maxColumn), 1)
}
