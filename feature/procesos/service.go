package procesos

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"redelex-panel/core/export"
	"redelex-panel/core/redelex"
	"redelex-panel/core/session"
	"redelex-panel/core/utils"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when the process does not exist or is not
	// visible to the user.
	ErrNotFound = errors.New("proceso not found")
	// ErrNoIdentification is returned when a list is requested without an
	// identification to look up.
	ErrNoIdentification = errors.New("identification required")
)

// Source is the upstream process lookup.
type Source interface {
	GetProceso(ctx context.Context, id int) (*redelex.Proceso, error)
	ProcesosPorIdentificacion(ctx context.Context, identificacion string) ([]redelex.Proceso, error)
}

// ListQuery filters and pages a process list.
type ListQuery struct {
	Identificacion string
	Q              string
	Estado         string
	Page           int
	Size           int
}

// Service answers process queries on behalf of a session user.
type Service struct {
	source Source
	logger *zap.Logger
}

// NewService creates a process service.
func NewService(source Source, logger *zap.Logger) *Service {
	return &Service{source: source, logger: logger}
}

// Detail returns process id. Non-admin users only see processes filed under
// their own identification.
func (s *Service) Detail(ctx context.Context, user *session.User, id int) (*redelex.Proceso, error) {
	p, err := s.source.GetProceso(ctx, id)
	if errors.Is(err, redelex.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() && !sameIdentification(p.Identificacion, user.Identification) {
		s.logger.Warn("Process outside user scope",
			zap.Int("proceso_id", id),
			zap.Uint("user_id", user.ID))
		return nil, ErrNotFound
	}
	return p, nil
}

// Identification resolves whose processes user may list. Admins choose with
// requested; everyone else gets their own identification.
func Identification(user *session.User, requested string) (string, error) {
	ident := user.Identification
	if user.IsAdmin() && strings.TrimSpace(requested) != "" {
		ident = requested
	}
	ident = strings.TrimSpace(ident)
	if ident == "" {
		return "", ErrNoIdentification
	}
	return ident, nil
}

// List returns one page of the processes matching q.
func (s *Service) List(ctx context.Context, q ListQuery) (utils.Page[redelex.Proceso], error) {
	items, err := s.filtered(ctx, q)
	if err != nil {
		return utils.Page[redelex.Proceso]{Items: []redelex.Proceso{}}, err
	}
	return utils.Paginate(items, q.Page, q.Size), nil
}

func (s *Service) filtered(ctx context.Context, q ListQuery) ([]redelex.Proceso, error) {
	all, err := s.source.ProcesosPorIdentificacion(ctx, q.Identificacion)
	if err != nil {
		return nil, err
	}
	return utils.Filter(all, func(p redelex.Proceso) bool {
		if q.Estado != "" && utils.Fold(p.Estado) != utils.Fold(q.Estado) {
			return false
		}
		return utils.MatchesAny(q.Q, p.Radicado, p.Demandado, p.Demandante, p.Despacho, p.Ciudad, strconv.Itoa(p.ID))
	}), nil
}

// Export projects the processes matching q into a report table.
func (s *Service) Export(ctx context.Context, q ListQuery) (export.Table, error) {
	items, err := s.filtered(ctx, q)
	if err != nil {
		return export.Table{}, err
	}
	columns := []string{"ID", "Radicado", "Clase", "Etapa", "Estado", "Despacho", "Ciudad", "Demandado", "Radicación"}
	return export.Project("Procesos "+q.Identificacion, columns, items, func(p redelex.Proceso) []string {
		return []string{strconv.Itoa(p.ID), p.Radicado, p.Clase, p.Etapa, p.Estado, p.Despacho, p.Ciudad, p.Demandado, p.FechaRadicacion}
	}), nil
}

func sameIdentification(a, b string) bool {
	return digits(a) != "" && digits(a) == digits(b)
}

// digits drops separators and the NIT check digit suffix ("900123456-7").
func digits(s string) string {
	s, _, _ = strings.Cut(strings.TrimSpace(s), "-")
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
