package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Yutux/immo-api/internal/models"
	"github.com/Yutux/immo-api/internal/utils"
)

// VisitRequestRepository has no update operation by design: an inquiry is
// created, read, and eventually deleted, never edited.
type VisitRequestRepository interface {
	List() []*models.VisitRequest
	GetByID(id uuid.UUID) (*models.VisitRequest, error)
	Create(vr models.VisitRequest) *models.VisitRequest
	Delete(id uuid.UUID) error
}

type visitRequestRepo struct {
	mu    sync.RWMutex
	items []*models.VisitRequest
}

func NewVisitRequestRepository() VisitRequestRepository {
	return &visitRequestRepo{}
}

func (r *visitRequestRepo) List() []*models.VisitRequest {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.VisitRequest, 0, len(r.items))
	for _, vr := range r.items {
		out = append(out, vr.Clone())
	}
	return out
}

func (r *visitRequestRepo) GetByID(id uuid.UUID) (*models.VisitRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, vr := range r.items {
		if vr.ID == id {
			return vr.Clone(), nil
		}
	}
	return nil, utils.NewNotFoundError("Visit request", id.String())
}

func (r *visitRequestRepo) Create(vr models.VisitRequest) *models.VisitRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	vr.ID = uuid.New()
	vr.CreatedAt = time.Now().UTC()

	r.items = append(r.items, &vr)
	return vr.Clone()
}

func (r *visitRequestRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, vr := range r.items {
		if vr.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return utils.NewNotFoundError("Visit request", id.String())
}
