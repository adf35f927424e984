package inmobiliarias

import (
	"context"
	"errors"
	"net/mail"
	"strconv"
	"strings"

	"redelex-panel/core/export"
	"redelex-panel/core/utils"
	"redelex-panel/feature/inmobiliarias/models"

	"go.uber.org/zap"
)

// ValidationError describes an invalid input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Input is the payload to create or update an inmobiliaria. On update, empty
// fields are left unchanged.
type Input struct {
	Nit      string `json:"nit"`
	Nombre   string `json:"nombre"`
	Codigo   string `json:"codigo"`
	Email    string `json:"email"`
	Telefono string `json:"telefono"`
	Ciudad   string `json:"ciudad"`
	Activo   *bool  `json:"activo"`
}

// ListQuery filters and pages the list.
type ListQuery struct {
	Q      string
	Ciudad string
	Activo *bool
	Page   int
	Size   int
}

// Service implements inmobiliaria management.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates an inmobiliaria service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns one page of inmobiliarias matching q.
func (s *Service) List(ctx context.Context, q ListQuery) (utils.Page[models.Inmobiliaria], error) {
	items, err := s.filtered(ctx, q)
	if err != nil {
		return utils.Page[models.Inmobiliaria]{Items: []models.Inmobiliaria{}}, err
	}
	return utils.Paginate(items, q.Page, q.Size), nil
}

func (s *Service) filtered(ctx context.Context, q ListQuery) ([]models.Inmobiliaria, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return utils.Filter(all, func(m models.Inmobiliaria) bool {
		if q.Activo != nil && m.Activo != *q.Activo {
			return false
		}
		if q.Ciudad != "" && utils.Fold(m.Ciudad) != utils.Fold(q.Ciudad) {
			return false
		}
		return utils.MatchesAny(q.Q, m.Nombre, m.Nit, m.Codigo, m.Email)
	}), nil
}

// Get returns an inmobiliaria by id.
func (s *Service) Get(ctx context.Context, id uint) (*models.Inmobiliaria, error) {
	return s.repo.Get(ctx, id)
}

// Create validates in and stores a new inmobiliaria.
func (s *Service) Create(ctx context.Context, in Input) (*models.Inmobiliaria, error) {
	in = trim(in)
	if err := validate(in, true); err != nil {
		return nil, err
	}
	if err := s.ensureNitFree(ctx, in.Nit, 0); err != nil {
		return nil, err
	}

	m := &models.Inmobiliaria{
		Nit:      in.Nit,
		Nombre:   in.Nombre,
		Codigo:   in.Codigo,
		Email:    in.Email,
		Telefono: in.Telefono,
		Ciudad:   in.Ciudad,
		Activo:   in.Activo == nil || *in.Activo,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	s.logger.Info("Inmobiliaria created", zap.Uint("id", m.ID), zap.String("nit", m.Nit))
	return m, nil
}

// Update applies the non-empty fields of in to inmobiliaria id.
func (s *Service) Update(ctx context.Context, id uint, in Input) (*models.Inmobiliaria, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	in = trim(in)
	if err := validate(in, false); err != nil {
		return nil, err
	}
	if in.Nit != "" && in.Nit != m.Nit {
		if err := s.ensureNitFree(ctx, in.Nit, m.ID); err != nil {
			return nil, err
		}
		m.Nit = in.Nit
	}
	set(&m.Nombre, in.Nombre)
	set(&m.Codigo, in.Codigo)
	set(&m.Email, in.Email)
	set(&m.Telefono, in.Telefono)
	set(&m.Ciudad, in.Ciudad)
	if in.Activo != nil {
		m.Activo = *in.Activo
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete removes inmobiliaria id.
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Inmobiliaria deleted", zap.Uint("id", id))
	return nil
}

// Export projects the inmobiliarias matching q into a report table.
func (s *Service) Export(ctx context.Context, q ListQuery) (export.Table, error) {
	items, err := s.filtered(ctx, q)
	if err != nil {
		return export.Table{}, err
	}
	columns := []string{"ID", "NIT", "Nombre", "Código", "Email", "Teléfono", "Ciudad", "Activo"}
	return export.Project("Inmobiliarias", columns, items, func(m models.Inmobiliaria) []string {
		activo := "No"
		if m.Activo {
			activo = "Sí"
		}
		return []string{strconv.FormatUint(uint64(m.ID), 10), m.Nit, m.Nombre, m.Codigo, m.Email, m.Telefono, m.Ciudad, activo}
	}), nil
}

func (s *Service) ensureNitFree(ctx context.Context, nit string, self uint) error {
	other, err := s.repo.FindByNit(ctx, nit)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if other.ID != self {
		return ErrNitTaken
	}
	return nil
}

func set(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func trim(in Input) Input {
	in.Nit = strings.TrimSpace(in.Nit)
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.Codigo = strings.TrimSpace(in.Codigo)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Telefono = strings.TrimSpace(in.Telefono)
	in.Ciudad = strings.TrimSpace(in.Ciudad)
	return in
}

func validate(in Input, creating bool) error {
	if creating && in.Nit == "" {
		return &ValidationError{Field: "nit", Message: "es obligatorio"}
	}
	if creating && in.Nombre == "" {
		return &ValidationError{Field: "nombre", Message: "es obligatorio"}
	}
	if in.Nit != "" && strings.IndexFunc(in.Nit, func(r rune) bool { return (r < '0' || r > '9') && r != '-' }) >= 0 {
		return &ValidationError{Field: "nit", Message: "solo admite dígitos y guion"}
	}
	if in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil {
			return &ValidationError{Field: "email", Message: "no es un correo válido"}
		}
	}
	return nil
}
