package export

import (
	"redelex-panel/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Download renders t and answers with it as an attachment. When archive is
// set the document is also archived under category; archive failures are
// logged and do not fail the download.
func Download(c *fiber.Ctx, t Table, f Format, category string, archive *Archive, log *zap.Logger) error {
	l := logger.WithUser(log, c)

	data, err := Render(t, f)
	if err != nil {
		l.Error("Report rendering failed", zap.Error(err), zap.String("format", string(f)))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "No fue posible generar el reporte"})
	}

	name := FileName(category, f, t.GeneratedAt)
	if archive != nil {
		if object, err := archive.Store(c.UserContext(), category, name, f, data); err != nil {
			l.Warn("Report archive failed", zap.Error(err))
		} else {
			c.Set("X-Report-Object", object)
		}
	}

	l.Info("Report generated",
		zap.String("report", category),
		zap.String("format", string(f)),
		zap.Int("rows", len(t.Rows)))

	c.Attachment(name)
	c.Set(fiber.HeaderContentType, f.ContentType())
	return c.Send(data)
}
