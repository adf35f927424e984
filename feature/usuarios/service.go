package usuarios

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"

	"redelex-panel/core/access"
	"redelex-panel/core/export"
	"redelex-panel/core/session"
	"redelex-panel/core/utils"
	"redelex-panel/feature/usuarios/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var (
	// ErrEmailTaken is returned when another user already uses the email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInactive is returned when a disabled user tries to log in.
	ErrInactive = errors.New("usuario inactivo")
	// ErrSelfDelete is returned when a user tries to delete their own account.
	ErrSelfDelete = errors.New("cannot delete own account")
	// ErrLastAdmin is returned when the operation would leave no administrator.
	ErrLastAdmin = errors.New("at least one admin must remain")
)

// ValidationError describes an invalid input field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Input is the payload to create or update a user. On update, zero fields
// are left unchanged.
type Input struct {
	Nombre   string   `json:"nombre"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Rol      string   `json:"rol"`
	Permisos []string `json:"permisos"`
	Nit      string   `json:"nit"`
	Activo   *bool    `json:"activo"`
}

// ListQuery filters and pages the user list.
type ListQuery struct {
	Q    string
	Rol  string
	Page int
	Size int
}

// Service implements user management.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates a user service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List returns one page of users matching q.
func (s *Service) List(ctx context.Context, q ListQuery) (utils.Page[models.View], error) {
	all, err := s.filtered(ctx, q)
	if err != nil {
		return utils.Page[models.View]{Items: []models.View{}}, err
	}
	return utils.Paginate(all, q.Page, q.Size), nil
}

func (s *Service) filtered(ctx context.Context, q ListQuery) ([]models.View, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]models.View, 0, len(users))
	for _, u := range users {
		views = append(views, u.ToView())
	}
	return utils.Filter(views, func(v models.View) bool {
		if q.Rol != "" && v.Rol != q.Rol {
			return false
		}
		return utils.MatchesAny(q.Q, v.Nombre, v.Email, v.Nit)
	}), nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id uint) (models.View, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.View{}, err
	}
	return u.ToView(), nil
}

// Create validates in and stores a new user. Missing role defaults to
// inmobiliaria and missing permissions to the role's defaults.
func (s *Service) Create(ctx context.Context, in Input) (models.View, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Nombre = strings.TrimSpace(in.Nombre)
	if in.Rol == "" {
		in.Rol = session.RoleInmobiliaria
	}

	if err := validate(in, true); err != nil {
		return models.View{}, err
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return models.View{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return models.View{}, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return models.View{}, err
	}

	u := models.Usuario{
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: hash,
		Rol:          in.Rol,
		Nit:          strings.TrimSpace(in.Nit),
		Activo:       in.Activo == nil || *in.Activo,
	}
	if in.Permisos != nil {
		u.SetPermissions(in.Permisos)
	} else {
		u.SetPermissions(access.DefaultPermissions(in.Rol))
	}

	if err := s.repo.Create(ctx, &u); err != nil {
		return models.View{}, err
	}

	s.logger.Info("Usuario created", zap.Uint("id", u.ID), zap.String("rol", u.Rol))
	return u.ToView(), nil
}

// Update applies the non-zero fields of in to user id.
func (s *Service) Update(ctx context.Context, id uint, in Input) (models.View, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return models.View{}, err
	}

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validate(in, false); err != nil {
		return models.View{}, err
	}

	if in.Email != "" && in.Email != u.Email {
		if other, err := s.repo.FindByEmail(ctx, in.Email); err == nil && other.ID != u.ID {
			return models.View{}, ErrEmailTaken
		} else if err != nil && !errors.Is(err, ErrNotFound) {
			return models.View{}, err
		}
		u.Email = in.Email
	}
	if in.Rol != "" && in.Rol != u.Rol {
		if err := s.ensureAdminRemains(ctx, u); err != nil {
			return models.View{}, err
		}
		u.Rol = in.Rol
	}
	if n := strings.TrimSpace(in.Nombre); n != "" {
		u.Nombre = n
	}
	if in.Nit != "" {
		u.Nit = strings.TrimSpace(in.Nit)
	}
	if in.Permisos != nil {
		u.SetPermissions(in.Permisos)
	}
	if in.Activo != nil {
		if !*in.Activo {
			if err := s.ensureAdminRemains(ctx, u); err != nil {
				return models.View{}, err
			}
		}
		u.Activo = *in.Activo
	}
	if in.Password != "" {
		hash, err := HashPassword(in.Password)
		if err != nil {
			return models.View{}, err
		}
		u.PasswordHash = hash
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return models.View{}, err
	}
	return u.ToView(), nil
}

// Delete removes user id on behalf of actorID.
func (s *Service) Delete(ctx context.Context, id, actorID uint) error {
	if id == actorID {
		return ErrSelfDelete
	}
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.ensureAdminRemains(ctx, u); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Usuario deleted", zap.Uint("id", id), zap.Uint("by", actorID))
	return nil
}

// ensureAdminRemains fails if u is the only admin.
func (s *Service) ensureAdminRemains(ctx context.Context, u *models.Usuario) error {
	if u.Rol != session.RoleAdmin {
		return nil
	}
	n, err := s.repo.CountByRole(ctx, session.RoleAdmin)
	if err != nil {
		return err
	}
	if n <= 1 {
		return ErrLastAdmin
	}
	return nil
}

// Authenticate checks email and password and returns the active user.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.Usuario, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if !u.Activo {
		return nil, ErrInactive
	}
	return u, nil
}

// Export projects the users matching q into a report table.
func (s *Service) Export(ctx context.Context, q ListQuery) (export.Table, error) {
	views, err := s.filtered(ctx, q)
	if err != nil {
		return export.Table{}, err
	}
	return export.Project("Usuarios", []string{"ID", "Nombre", "Email", "Rol", "NIT", "Activo"}, views,
		func(v models.View) []string {
			activo := "No"
			if v.Activo {
				activo = "Sí"
			}
			return []string{strconv.FormatUint(uint64(v.ID), 10), v.Nombre, v.Email, v.Rol, v.Nit, activo}
		}), nil
}

// HashPassword hashes a password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func validate(in Input, creating bool) error {
	if creating && in.Nombre == "" {
		return &ValidationError{Field: "nombre", Message: "es obligatorio"}
	}
	if creating || in.Email != "" {
		if _, err := mail.ParseAddress(in.Email); err != nil || !strings.Contains(in.Email, "@") {
			return &ValidationError{Field: "email", Message: "no es un correo válido"}
		}
	}
	if creating || in.Password != "" {
		if len(in.Password) < minPasswordLength {
			return &ValidationError{Field: "password", Message: fmt.Sprintf("debe tener al menos %d caracteres", minPasswordLength)}
		}
	}
	if in.Rol != "" && in.Rol != session.RoleAdmin && in.Rol != session.RoleInmobiliaria {
		return &ValidationError{Field: "rol", Message: "rol desconocido"}
	}
	return nil
}
