package usuarios

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"redelex-panel/feature/usuarios/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no user matches.
var ErrNotFound = errors.New("usuario not found")

// Repository persists users with GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a user repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// List returns every user ordered by id.
func (r *Repository) List(ctx context.Context) ([]models.Usuario, error) {
	var out []models.Usuario
	if err := r.db.WithContext(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("failed to list usuarios: %w", err)
	}
	return out, nil
}

// Get returns the user with id.
func (r *Repository) Get(ctx context.Context, id uint) (*models.Usuario, error) {
	var u models.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get usuario %d: %w", id, err)
	}
	return &u, nil
}

// FindByEmail returns the user with email, compared case-insensitively.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Usuario, error) {
	var u models.Usuario
	err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find usuario by email: %w", err)
	}
	return &u, nil
}

// Create inserts u and fills its id.
func (r *Repository) Create(ctx context.Context, u *models.Usuario) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("failed to create usuario: %w", err)
	}
	return nil
}

// Update saves every field of u.
func (r *Repository) Update(ctx context.Context, u *models.Usuario) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		return fmt.Errorf("failed to update usuario %d: %w", u.ID, err)
	}
	return nil
}

// Delete removes the user with id.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Usuario{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete usuario %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByRole returns how many users hold role.
func (r *Repository) CountByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Usuario{}).Where("rol = ?", role).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count usuarios: %w", err)
	}
	return n, nil
}
