package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Yutux/immo-api/internal/models"
	"github.com/Yutux/immo-api/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// ImageRemover is the slice of the file store the property repository
// needs for cascade cleanup on delete.
type ImageRemover interface {
	DeleteFiles(imageURLs []string)
}

type PropertyRepository interface {
	List() []*models.Property
	GetByID(id uuid.UUID) (*models.Property, error)
	// Find is the safe lookup: no error channel, used where absence is
	// an expected outcome rather than a failure.
	Find(id uuid.UUID) (*models.Property, bool)

	Create(p models.Property) *models.Property
	Update(id uuid.UUID, patch models.PropertyPatch) (*models.Property, error)
	AddImage(id uuid.UUID, imageURL string) (*models.Property, error)
	Delete(id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type propertyRepo struct {
	mu     sync.RWMutex
	items  []*models.Property
	images ImageRemover
}

func NewPropertyRepository(images ImageRemover) PropertyRepository {
	return &propertyRepo{images: images}
}

func (r *propertyRepo) List() []*models.Property {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Property, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p.Clone())
	}
	return out
}

func (r *propertyRepo) GetByID(id uuid.UUID) (*models.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p := r.find(id); p != nil {
		return p.Clone(), nil
	}
	return nil, utils.NewNotFoundError("Property", id.String())
}

func (r *propertyRepo) Find(id uuid.UUID) (*models.Property, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p := r.find(id); p != nil {
		return p.Clone(), true
	}
	return nil, false
}

func (r *propertyRepo) Create(p models.Property) *models.Property {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p.ID = uuid.New()
	p.CreatedAt = now
	p.UpdatedAt = now

	r.items = append(r.items, &p)
	return p.Clone()
}

func (r *propertyRepo) Update(id uuid.UUID, patch models.PropertyPatch) (*models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(id)
	if p == nil {
		return nil, utils.NewNotFoundError("Property", id.String())
	}

	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.City != nil {
		p.City = *patch.City
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Surface != nil {
		p.Surface = *patch.Surface
	}
	if patch.Rooms != nil {
		p.Rooms = *patch.Rooms
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Images != nil {
		p.Images = append([]string(nil), (*patch.Images)...)
	}
	p.UpdatedAt = time.Now().UTC()

	return p.Clone(), nil
}

func (r *propertyRepo) AddImage(id uuid.UUID, imageURL string) (*models.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.find(id)
	if p == nil {
		return nil, utils.NewNotFoundError("Property", id.String())
	}

	p.Images = append(p.Images, imageURL)
	p.UpdatedAt = time.Now().UTC()

	return p.Clone(), nil
}

// Delete removes the record after best-effort cleanup of its stored images.
// File-deletion failures are logged by the remover and never surface here;
// the record is gone once Delete returns nil.
func (r *propertyRepo) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.items {
		if p.ID == id {
			if len(p.Images) > 0 {
				r.images.DeleteFiles(p.Images)
			}
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return utils.NewNotFoundError("Property", id.String())
}

// find must be called with the lock held.
func (r *propertyRepo) find(id uuid.UUID) *models.Property {
	for _, p := range r.items {
		if p.ID == id {
			return p
		}
	}
	return nil
}
