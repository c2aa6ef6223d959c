package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Yutux/immo-api/internal/models"
	"github.com/Yutux/immo-api/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type VisitRepository interface {
	// List returns all visits sorted by date descending.
	List() []*models.Visit
	GetByID(id uuid.UUID) (*models.Visit, error)
	ListByPropertyID(propertyID uuid.UUID) []*models.Visit

	Create(v models.Visit) (*models.Visit, error)
	Update(id uuid.UUID, patch models.VisitPatch) (*models.Visit, error)
	Delete(id uuid.UUID) error

	// Upcoming returns visits strictly in the future, soonest first.
	Upcoming() []*models.Visit
	// Past returns visits at or before the current time, most recent first.
	Past() []*models.Visit
	// ListByDateRange returns visits within [start, end] inclusive, unsorted.
	ListByDateRange(start, end time.Time) []*models.Visit
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type visitRepo struct {
	mu    sync.RWMutex
	items []*models.Visit
}

func NewVisitRepository() VisitRepository {
	return &visitRepo{}
}

func (r *visitRepo) List() []*models.Visit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.cloneAll(nil)
	sortByDateDesc(out)
	return out
}

func (r *visitRepo) GetByID(id uuid.UUID) (*models.Visit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.items {
		if v.ID == id {
			return v.Clone(), nil
		}
	}
	return nil, utils.NewNotFoundError("Visit", id.String())
}

func (r *visitRepo) ListByPropertyID(propertyID uuid.UUID) []*models.Visit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.cloneAll(func(v *models.Visit) bool { return v.PropertyID == propertyID })
	sortByDateDesc(out)
	return out
}

func (r *visitRepo) Create(v models.Visit) (*models.Visit, error) {
	if err := validateVisitDate(v.Date); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	v.ID = uuid.New()
	r.items = append(r.items, &v)
	return v.Clone(), nil
}

func (r *visitRepo) Update(id uuid.UUID, patch models.VisitPatch) (*models.Visit, error) {
	if patch.Date != nil {
		if err := validateVisitDate(*patch.Date); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.items {
		if v.ID != id {
			continue
		}
		if patch.PropertyID != nil {
			v.PropertyID = *patch.PropertyID
		}
		if patch.Date != nil {
			v.Date = *patch.Date
		}
		if patch.VisitorName != nil {
			v.VisitorName = *patch.VisitorName
		}
		if patch.Notes != nil {
			v.Notes = *patch.Notes
		}
		return v.Clone(), nil
	}
	return nil, utils.NewNotFoundError("Visit", id.String())
}

func (r *visitRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, v := range r.items {
		if v.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return utils.NewNotFoundError("Visit", id.String())
}

func (r *visitRepo) Upcoming() []*models.Visit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	out := r.cloneAll(func(v *models.Visit) bool { return v.Date.After(now) })
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func (r *visitRepo) Past() []*models.Visit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	now := time.Now()
	out := r.cloneAll(func(v *models.Visit) bool { return !v.Date.After(now) })
	sortByDateDesc(out)
	return out
}

func (r *visitRepo) ListByDateRange(start, end time.Time) []*models.Visit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.cloneAll(func(v *models.Visit) bool {
		return !v.Date.Before(start) && !v.Date.After(end)
	})
}

// cloneAll must be called with the lock held; keep nil means everything.
func (r *visitRepo) cloneAll(keep func(*models.Visit) bool) []*models.Visit {
	out := make([]*models.Visit, 0, len(r.items))
	for _, v := range r.items {
		if keep == nil || keep(v) {
			out = append(out, v.Clone())
		}
	}
	return out
}

func sortByDateDesc(visits []*models.Visit) {
	sort.Slice(visits, func(i, j int) bool { return visits[i].Date.After(visits[j].Date) })
}

// validateVisitDate enforces the lower bound: a visit may not be dated more
// than one year before the current moment. There is no upper bound. The same
// rule applies on create and on update-when-date-present, even though that
// blocks back-dating corrections to old records.
func validateVisitDate(date time.Time) error {
	if date.IsZero() {
		return utils.NewValidationError("Invalid visit date")
	}
	oneYearAgo := time.Now().AddDate(-1, 0, 0)
	if date.Before(oneYearAgo) {
		return utils.NewValidationError("Visit date cannot be more than one year in the past")
	}
	return nil
}
