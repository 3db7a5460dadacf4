package repository

import (
	"context"
	"errors"

	"github.com/digitalbuddiesspune/stylishtouches-sub001/models"
)

// ErrRecordNotFound is returned by FindByID when no document matches.
var ErrRecordNotFound = errors.New("record not found")

// SortField is one component of a sort order, applied in slice order.
type SortField struct {
	Field string
	Desc  bool
}

// FamilyStore is the full capability set the catalog core needs from the
// persistence layer, one set per family. The core depends only on these
// four operations, never on the storage technology behind them.
type FamilyStore interface {
	Find(ctx context.Context, family models.Family, pred models.Predicate, sort []SortField, skip, limit int64) ([]models.Record, error)
	Count(ctx context.Context, family models.Family, pred models.Predicate) (int64, error)
	FindByID(ctx context.Context, family models.Family, id string) (models.Record, error)
	// GroupCount returns match counts grouped by the upper-cased value of
	// the given field. Documents with an empty or absent value are grouped
	// under the empty key; callers drop that key before exposing facets.
	GroupCount(ctx context.Context, family models.Family, pred models.Predicate, field string) (map[string]int64, error)
}
