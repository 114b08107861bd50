// internal/repository/counter.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/mubadara/internal/domain"
	"github.com/dangerclosesec/mubadara/internal/metrics"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CounterRef names one bounded counter column of one row.
type CounterRef struct {
	Name     string
	Table    string
	Column   string
	Limit    workflow.Limit
	ID       uuid.UUID
	NotFound error
}

// ParticipantsCounter is the accepted-participants counter of an initiative,
// capped by its nullable max_participants column.
func ParticipantsCounter(initiativeID uuid.UUID) CounterRef {
	return CounterRef{
		Name:     "initiative_participants",
		Table:    "initiatives",
		Column:   "current_participants",
		Limit:    workflow.ColumnLimit("max_participants"),
		ID:       initiativeID,
		NotFound: domain.ErrInitiativeNotFound,
	}
}

// AttachmentsCounter is the image counter of an initiative, summed across
// all of its posts and capped by a fixed limit.
func AttachmentsCounter(initiativeID uuid.UUID, limit int) CounterRef {
	return CounterRef{
		Name:     "initiative_attachments",
		Table:    "initiatives",
		Column:   "attachment_count",
		Limit:    workflow.FixedLimit(limit),
		ID:       initiativeID,
		NotFound: domain.ErrInitiativeNotFound,
	}
}

type CounterRepositoryIface interface {
	Reserve(ctx context.Context, ref CounterRef, delta int) (int, error)
}

// CounterRepository performs increment-with-ceiling as one conditional
// UPDATE so concurrent reservations cannot overshoot the limit.
type CounterRepository struct {
	db      *gorm.DB
	metrics *metrics.Registry
}

func NewCounterRepository(db *gorm.DB, reg *metrics.Registry) *CounterRepository {
	return &CounterRepository{db: db, metrics: reg}
}

// Reserve adds delta to the counter and returns the new value. Positive
// deltas fail with *domain.CapacityExceededError when the limit would be
// passed; releases clamp at zero.
func (r *CounterRepository) Reserve(ctx context.Context, ref CounterRef, delta int) (int, error) {
	n, err := reserve(r.db.WithContext(ctx), ref, delta)
	if errors.Is(err, domain.ErrCapacityExceeded) {
		r.metrics.CapacityRejected(ref.Name)
	}
	return n, err
}

type counterRow struct {
	CounterValue int
	CounterLimit *int
}

// reserve runs on db, which may be a transaction.
func reserve(db *gorm.DB, ref CounterRef, delta int) (int, error) {
	col := clause.Column{Name: ref.Column}

	q := db.Table(ref.Table).Where("id = ?", ref.ID)
	var value clause.Expr
	if delta > 0 {
		q = q.Where(workflow.CeilingExpr(ref.Column, ref.Limit, delta))
		value = gorm.Expr("? + ?", col, delta)
	} else {
		value = gorm.Expr("CASE WHEN ? + ? < 0 THEN 0 ELSE ? + ? END", col, delta, col, delta)
	}

	res := q.Update(ref.Column, value)
	if res.Error != nil {
		return 0, translateError(fmt.Sprintf("reserving %s", ref.Name), res.Error, ref.NotFound)
	}

	row, err := readCounter(db, ref)
	if err != nil {
		return 0, err
	}
	if res.RowsAffected == 0 {
		limit := row.CounterLimit
		if ref.Limit.Value != nil {
			limit = ref.Limit.Value
		}
		if _, err := workflow.Reserve(row.CounterValue, limit, delta); err != nil {
			return row.CounterValue, err
		}
		// The ceiling held at read time but not at update time.
		return row.CounterValue, fmt.Errorf("%w: %s changed concurrently", domain.ErrConflict, ref.Name)
	}
	return row.CounterValue, nil
}

func readCounter(db *gorm.DB, ref CounterRef) (counterRow, error) {
	selects := []string{ref.Column + " AS counter_value"}
	if ref.Limit.Column != "" {
		selects = append(selects, ref.Limit.Column+" AS counter_limit")
	}

	var row counterRow
	err := db.Table(ref.Table).Select(selects).Where("id = ?", ref.ID).Take(&row).Error
	if err != nil {
		return row, translateError(fmt.Sprintf("reading %s", ref.Name), err, ref.NotFound)
	}
	return row, nil
}
