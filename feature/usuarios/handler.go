package usuarios

import (
	"errors"

	"redelex-panel/core/export"
	"redelex-panel/core/logger"
	"redelex-panel/core/session"
	"redelex-panel/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for user management.
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
	return ListQuery{
		Q:    c.Query("q"),
		Rol:  c.Query("rol"),
		Page: utils.ToIntOr(c.Query("page"), 1),
		Size: utils.ToIntOr(c.Query("size"), utils.DefaultPageSize),
	}
}

// HandleList lists users.
// @Summary List Users
// @Description Returns a page of users filtered by free text (q) and role.
// @Tags usuarios
// @Produce json
// @Param q query string false "Search in name, email and NIT"
// @Param rol query string false "Role filter"
// @Param page query int false "Page (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} map[string]interface{} "Page of users"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /panel/usuarios [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	page, err := h.service.List(c.UserContext(), listQuery(c))
	if err != nil {
		logger.WithUser(h.logger, c).Error("Failed to list usuarios", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "No fue posible cargar los usuarios",
			"items": []any{},
		})
	}
	return c.JSON(page)
}

// HandleGet returns one user.
// @Summary Get User
// @Tags usuarios
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.View
// @Failure 404 {object} map[string]string "Not Found"
// @Router /panel/usuarios/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}
	v, err := h.service.Get(c.UserContext(), uint(id))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(v)
}

// HandleCreate creates a user.
// @Summary Create User
// @Tags usuarios
// @Accept json
// @Produce json
// @Param body body Input true "User"
// @Success 201 {object} models.View
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 409 {object} map[string]string "Email taken"
// @Router /panel/usuarios [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var in Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}
	v, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(v)
}

// HandleUpdate updates a user.
// @Summary Update User
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param body body Input true "Fields to change"
// @Success 200 {object} models.View
// @Router /panel/usuarios/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}
	var in Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cuerpo inválido"})
	}
	v, err := h.service.Update(c.UserContext(), uint(id), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(v)
}

// HandleDelete deletes a user.
// @Summary Delete User
// @Tags usuarios
// @Param id path int true "User ID"
// @Success 204
// @Router /panel/usuarios/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id inválido"})
	}
	var actor uint
	if u := session.Current(c); u != nil {
		actor = u.ID
	}
	if err := h.service.Delete(c.UserContext(), uint(id), actor); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleExport downloads the filtered user list.
// @Summary Export Users
// @Tags usuarios
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,application/pdf
// @Param format query string false "xlsx or pdf"
// @Router /panel/usuarios/export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	table, err := h.service.Export(c.UserContext(), listQuery(c))
	if err != nil {
		return h.fail(c, err)
	}
	return export.Download(c, table, format, "usuarios", h.archive, h.logger)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error(), "field": verr.Field})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuario no encontrado"})
	case errors.Is(err, ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "El correo ya está registrado"})
	case errors.Is(err, ErrSelfDelete):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "No puedes eliminar tu propia cuenta"})
	case errors.Is(err, ErrLastAdmin):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Debe existir al menos un administrador"})
	default:
		logger.WithUser(h.logger, c).Error("Usuarios request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error interno"})
	}
}
