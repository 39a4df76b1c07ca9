package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"legaldocs/internal/http/middleware"
	"legaldocs/internal/service"
)

// DocumentsPrefix is the mount point of the document routes.
const DocumentsPrefix = "/api/v2/documents"

// Dependencies are the collaborators the routes are wired to.
type Dependencies struct {
	DB        Pinger
	Documents service.DocumentService
	Tokens    middleware.TokenValidator
	Log       logrus.FieldLogger
}

// RegisterRoutes attaches health and document routes to app. Every document
// route runs behind CORS and bearer authentication.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())

	docs := app.Group(DocumentsPrefix,
		cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: strings.Join([]string{
				fiber.MethodGet, fiber.MethodPost, fiber.MethodDelete, fiber.MethodOptions,
			}, ","),
			AllowHeaders: "Authorization,Content-Type,Account-Id,App-Name," + middleware.RequestIDHeader,
		}),
		middleware.Auth(deps.Tokens),
	)

	// Static segment first so "/x/signatures" never reaches the two-parameter GET.
	docs.Get("/:file_name/signatures", SignedUploadURL(deps.Documents, deps.Log))
	docs.Delete("/:document_key", DeleteDocument(deps.Documents, deps.Log))
	docs.Get("/:document_key", GetObject(deps.Documents, deps.Log))
	docs.Post("/:document_class/:document_type", UploadDocument(deps.Documents, deps.Log))
	docs.Options("/:document_class/:document_type", UploadOptions())
	docs.Get("/:document_class/:document_service_id", GetDocument(deps.Documents, deps.Log))
}
