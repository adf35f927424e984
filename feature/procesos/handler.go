package procesos

import (
	"errors"

	"redelex-panel/core/export"
	"redelex-panel/core/logger"
	"redelex-panel/core/redelex"
	"redelex-panel/core/session"
	"redelex-panel/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles process lookups.
type Handler struct {
	service *Service
	archive *export.Archive
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler. archive may be nil.
func NewHandler(service *Service, archive *export.Archive, logger *zap.Logger) *Handler {
	return &Handler{service: service, archive: archive, logger: logger}
}

func (h *Handler) listQuery(c *fiber.Ctx) (ListQuery, error) {
	ident, err := Identification(session.Current(c), c.Query("identificacion"))
	if err != nil {
		return ListQuery{}, err
	}
	return ListQuery{
		Identificacion: ident,
		Q:              c.Query("q"),
		Estado:         c.Query("estado"),
		Page:           utils.ToIntOr(c.Query("page"), 1),
		Size:           utils.ToIntOr(c.Query("size"), utils.DefaultPageSize),
	}, nil
}

// HandleDetail returns one process.
// @Summary Process Detail
// @Tags procesos
// @Produce json
// @Param id path int true "Redelex process id"
// @Success 200 {object} redelex.Proceso
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 502 {object} map[string]string "Upstream failure"
// @Router /panel/consultas/consultar-proceso/{id} [get]
func (h *Handler) HandleDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id de proceso inválido"})
	}
	p, err := h.service.Detail(c.UserContext(), session.Current(c), id)
	if err != nil {
		return h.fail(c, err, nil)
	}
	return c.JSON(p)
}

// HandleList lists the processes filed under the user's identification.
// @Summary My Processes
// @Tags procesos
// @Produce json
// @Param identificacion query string false "Identification (admin only)"
// @Param q query string false "Free text"
// @Param estado query string false "State"
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} map[string]interface{} "Page of processes"
// @Router /panel/consultas/mis-procesos [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	q, err := h.listQuery(c)
	if err != nil {
		return h.fail(c, err, []any{})
	}
	page, err := h.service.List(c.UserContext(), q)
	if err != nil {
		return h.fail(c, err, []any{})
	}
	return c.JSON(page)
}

// HandleReport downloads the filtered process list.
// @Summary Process Report
// @Tags procesos
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,application/pdf
// @Param format query string false "xlsx or pdf"
// @Param identificacion query string false "Identification (admin only)"
// @Router /panel/reportes/procesos [get]
func (h *Handler) HandleReport(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	q, err := h.listQuery(c)
	if err != nil {
		return h.fail(c, err, nil)
	}
	table, err := h.service.Export(c.UserContext(), q)
	if err != nil {
		return h.fail(c, err, nil)
	}
	return export.Download(c, table, format, "procesos", h.archive, h.logger)
}

// fail maps errors to responses. List endpoints pass items so the client
// always receives an array.
func (h *Handler) fail(c *fiber.Ctx, err error, items []any) error {
	body := fiber.Map{}
	if items != nil {
		body["items"] = items
	}
	status := fiber.StatusBadGateway

	switch {
	case errors.Is(err, ErrNoIdentification):
		status, body["error"] = fiber.StatusBadRequest, "El usuario no tiene identificación asociada"
	case errors.Is(err, ErrNotFound):
		status, body["error"] = fiber.StatusNotFound, "Proceso no encontrado"
	case errors.Is(err, redelex.ErrUnauthorized):
		logger.WithUser(h.logger, c).Error("Redelex rejected the API key", zap.Error(err))
		body["error"] = "Redelex rechazó la solicitud"
	default:
		logger.WithUser(h.logger, c).Error("Redelex request failed", zap.Error(err))
		body["error"] = "Redelex no está disponible"
	}
	return c.Status(status).JSON(body)
}
