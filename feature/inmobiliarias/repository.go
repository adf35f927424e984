package inmobiliarias

import (
	"context"
	"errors"
	"fmt"

	"redelex-panel/feature/inmobiliarias/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no inmobiliaria matches.
	ErrNotFound = errors.New("inmobiliaria not found")
	// ErrNitTaken is returned when the NIT is already registered.
	ErrNitTaken = errors.New("nit already registered")
)

// Repository persists inmobiliarias with GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates an inmobiliaria repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every inmobiliaria ordered by name.
func (r *Repository) List(ctx context.Context) ([]models.Inmobiliaria, error) {
	var out []models.Inmobiliaria
	if err := r.db.WithContext(ctx).Order("nombre").Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list inmobiliarias: %w", err)
	}
	return out, nil
}

// Get returns the inmobiliaria with id.
func (r *Repository) Get(ctx context.Context, id uint) (*models.Inmobiliaria, error) {
	var m models.Inmobiliaria
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inmobiliaria %d: %w", id, err)
	}
	return &m, nil
}

// FindByNit returns the inmobiliaria registered under nit.
func (r *Repository) FindByNit(ctx context.Context, nit string) (*models.Inmobiliaria, error) {
	var m models.Inmobiliaria
	err := r.db.WithContext(ctx).Where("nit = ?", nit).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find inmobiliaria by nit: %w", err)
	}
	return &m, nil
}

// Create inserts m and fills its id.
func (r *Repository) Create(ctx context.Context, m *models.Inmobiliaria) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create inmobiliaria: %w", err)
	}
	return nil
}

// Update saves every field of m.
func (r *Repository) Update(ctx context.Context, m *models.Inmobiliaria) error {
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return fmt.Errorf("failed to update inmobiliaria %d: %w", m.ID, err)
	}
	return nil
}

// Delete removes the inmobiliaria with id.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Inmobiliaria{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete inmobiliaria %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
