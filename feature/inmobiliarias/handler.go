package inmobiliarias

import (
	"errors"

	"redelex-panel/core/export"
	"redelex-panel/core/logger"
	"redelex-panel/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for inmobiliarias.
type Handler struct {
	service *Service
	archive *export.Archive
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler. archive may be nil.
func NewHandler(service *Service, archive *export.Archive, logger *zap.Logger) *Handler {
	return &Handler{service: service, archive: archive, logger: logger}
}

func listQuery(c *fiber.Ctx) ListQuery {
	q := ListQuery{
		Q:      c.Query("q"),
		Ciudad: c.Query("ciudad"),
		Page:   utils.ToIntOr(c.Query("page"), 1),
		Size:   utils.ToIntOr(c.Query("size"), utils.DefaultPageSize),
	}
	if raw := c.Query("activo"); raw != "" {
		activo := utils.ToBool(raw)
		q.Activo = &activo
	}
	return q
}

// HandleList lists inmobiliarias.
// @Summary List Inmobiliarias
// @Tags inmobiliarias
// @Produce json
// @Param q query string false "Search in name, NIT, code and email"
// @Param ciudad query string false "City"
// @Param activo query bool false "Active flag"
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} map[string]interface{} "Page of inmobiliarias"
// @Router /panel/inmobiliarias [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	page, err := h.service.List(c.UserContext(), listQuery(c))
	if err != nil {
		logger.WithUser(h.logger, c).Error("Failed to list inmobiliarias", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "No fue posible cargar las inmobiliarias",
			"items": []any{},
		})
	}
	return c.JSON(page)
}

// HandleGet returns one inmobiliaria.
// @Summary Get Inmobiliaria
// @Tags inmobiliarias
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} models.Inmobiliaria
// @Failure 404 {object} map[string]string "Not Found"
// @Router /panel/inmobiliarias/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}
	m, err := h.service.Get(c.UserContext(), uint(id))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(m)
}

// HandleCreate creates an inmobiliaria.
// @Summary Create Inmobiliaria
// @Tags inmobiliarias
// @Accept json
// @Produce json
// @Param body body Input true "Inmobiliaria"
// @Success 201 {object} models.Inmobiliaria
// @Failure 409 {object} map[string]string "NIT taken"
// @Router /panel/inmobiliarias [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}
	m, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

// HandleUpdate updates an inmobiliaria.
// @Summary Update Inmobiliaria
// @Tags inmobiliarias
// @Accept json
// @Produce json
// @Param id path int true "ID"
// @Param body body Input true "Fields to change"
// @Success 200 {object} models.Inmobiliaria
// @Router /panel/inmobiliarias/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}
	var in Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}
	m, err := h.service.Update(c.UserContext(), uint(id), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(m)
}

// HandleDelete deletes an inmobiliaria.
// @Summary Delete Inmobiliaria
// @Tags inmobiliarias
// @Param id path int true "ID"
// @Success 204
// @Router /panel/inmobiliarias/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}
	if err := h.service.Delete(c.UserContext(), uint(id)); err != nil {
		return h.fail(c, err)
	}
	logger.WithUser(h.logger, c).Info("Inmobiliaria removed", zap.Int("id", id))
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleExport downloads the filtered list as Excel or PDF.
// @Summary Export Inmobiliarias
// @Tags inmobiliarias
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,application/pdf
// @Param format query string false "xlsx or pdf"
// @Router /panel/inmobiliarias/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	table, err := h.service.Export(c.UserContext(), listQuery(c))
	if err != nil {
		return h.fail(c, err)
	}
	return export.Download(c, table, format, "inmobiliarias", h.archive, h.logger)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inmobiliaria no encontrada"})
	case errors.Is(err, ErrNitTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "El NIT ya está registrado"})
	default:
		logger.WithUser(h.logger, c).Error("Inmobiliarias request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error interno"})
	}
}
