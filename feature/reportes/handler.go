package reportes

import (
	"io"
	"path"
	"strings"

	"redelex-panel/core/export"
	"redelex-panel/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the archive of generated reports.
type Handler struct {
	archive *export.Archive
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler. A nil archive answers 503.
func NewHandler(archive *export.Archive, logger *zap.Logger) *Handler {
	return &Handler{archive: archive, logger: logger}
}

func (h *Handler) disabled(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": "El archivo de reportes no está habilitado",
		"items": []any{},
	})
}

// HandleList lists archived reports.
// @Summary List Archived Reports
// @Tags reportes
// @Produce json
// @Param categoria query string false "usuarios, inmobiliarias or procesos"
// @Success 200 {object} map[string]interface{} "Archived reports"
// @Failure 503 {object} map[string]string "Archive disabled"
// @Router /panel/reportes/archivo [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	if h.archive == nil {
		return h.disabled(c)
	}
	entries, err := h.archive.List(c.UserContext(), c.Query("categoria"))
	if err != nil {
		logger.WithUser(h.logger, c).Error("Failed to list archived reports", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "No fue posible consultar el archivo",
			"items": []any{},
		})
	}
	return c.JSON(fiber.Map{"items": entries})
}

// HandleDownload streams one archived report.
// @Summary Download Archived Report
// @Tags reportes
// @Param object query string true "Object name"
// @Router /panel/reportes/archivo/descargar [get]
func (h *Handler) HandleDownload(c *fiber.Ctx) error {
	if h.archive == nil {
		return h.disabled(c)
	}
	object := c.Query("object")
	rc, err := h.archive.Open(c.UserContext(), object)
	if err != nil {
		logger.WithUser(h.logger, c).Warn("Archived report unavailable", zap.String("object", object), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reporte no encontrado"})
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		logger.WithUser(h.logger, c).Error("Failed to read archived report", zap.String("object", object), zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Reporte no encontrado"})
	}

	c.Attachment(path.Base(object))
	if f, err := export.ParseFormat(strings.TrimPrefix(path.Ext(object), ".")); err == nil {
		c.Set(fiber.HeaderContentType, f.ContentType())
	}
	return c.Send(data)
}

// HandleDelete removes one archived report.
// @Summary Delete Archived Report
// @Tags reportes
// @Param object query string true "Object name"
// @Success 204
// @Router /panel/reportes/archivo [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if h.archive == nil {
		return h.disabled(c)
	}
	object := c.Query("object")
	if err := h.archive.Remove(c.UserContext(), object); err != nil {
		logger.WithUser(h.logger, c).Warn("Failed to remove archived report", zap.String("object", object), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No fue posible eliminar el reporte"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
