package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"legaldocs/internal/drs"
	"legaldocs/internal/service"
)

// SignedUploadURL godoc
// @Summary Pre-signed upload URL
// @Tags documents
// @Param file_name path string true "Original file name"
// @Success 200 {object} service.SignedURL
// @Router /api/v2/documents/{file_name}/signatures [get]
func SignedUploadURL(svc service.DocumentService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pathParams(c, "file_name")
		if err != nil {
			return writeBadPath(c)
		}
		fileName := p[0]

		res, err := svc.SignedUploadURL(c.UserContext(), fileName)
		if err != nil {
			return writeServiceError(c, log, err, fmt.Sprintf("Error creating upload URL for %s.", fileName))
		}
		return c.JSON(res)
	}
}

// DeleteDocument godoc
// @Summary Delete a document of a draft filing
// @Tags documents
// @Param document_key path string true "Object key or document service id"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errorPayload
// @Router /api/v2/documents/{document_key} [delete]
func DeleteDocument(svc service.DocumentService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pathParams(c, "document_key")
		if err != nil {
			return writeBadPath(c)
		}
		key := p[0]

		if err := svc.Delete(c.UserContext(), key); err != nil {
			return writeServiceError(c, log, err, fmt.Sprintf("Error deleting file %s.", key))
		}
		return c.JSON(fiber.Map{"message": fmt.Sprintf("File %s deleted successfully.", key)})
	}
}

// GetObject godoc
// @Summary Fetch a document from the object store
// @Tags documents
// @Produce application/pdf
// @Param document_key path string true "Object key"
// @Router /api/v2/documents/{document_key} [get]
func GetObject(svc service.DocumentService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pathParams(c, "document_key")
		if err != nil {
			return writeBadPath(c)
		}
		key := p[0]

		content, err := svc.GetObject(c.UserContext(), key)
		if err != nil {
			return writeServiceError(c, log, err, fmt.Sprintf("Error getting file %s.", key))
		}
		return sendContent(c, content)
	}
}

// UploadDocument godoc
// @Summary Upload a document to the Document Record Service
// @Tags documents
// @Accept application/pdf
// @Param document_class path string true "Document class"
// @Param document_type path string true "Document type"
// @Failure 400 {object} errorPayload
// @Router /api/v2/documents/{document_class}/{document_type} [post]
func UploadDocument(svc service.DocumentService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pathParams(c, "document_class", "document_type")
		if err != nil {
			return writeBadPath(c)
		}
		info := requestInfoFromCtx(c, drs.RequestInfo{
			DocumentClass: p[0],
			DocumentType:  p[1],
		})
		body := append([]byte(nil), c.Body()...)

		out, err := svc.Upload(c.UserContext(), info, body)
		if err != nil {
			return writeServiceError(c, log, err, "Error uploading document.")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusOK).Send(out)
	}
}

// UploadOptions answers non-preflight OPTIONS on the upload route.
func UploadOptions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetDocument godoc
// @Summary Fetch a document from the Document Record Service or the object store
// @Tags documents
// @Param document_class path string true "Document class"
// @Param document_service_id path string true "Document service id or object key"
// @Failure 400 {object} errorPayload
// @Router /api/v2/documents/{document_class}/{document_service_id} [get]
func GetDocument(svc service.DocumentService, log logrus.FieldLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := pathParams(c, "document_class", "document_service_id")
		if err != nil {
			return writeBadPath(c)
		}
		class, id := p[0], p[1]

		content, err := svc.Get(c.UserContext(), class, id)
		if err != nil {
			return writeServiceError(c, log, err, fmt.Sprintf("Error getting file %s.", id))
		}
		return sendContent(c, content)
	}
}

func sendContent(c *fiber.Ctx, content *service.Content) error {
	c.Set(fiber.HeaderContentType, content.ContentType)
	return c.Status(fiber.StatusOK).Send(content.Body)
}
