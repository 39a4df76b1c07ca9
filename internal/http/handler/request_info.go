package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"legaldocs/internal/drs"
	"legaldocs/internal/http/middleware"
)

// requestInfoFromCtx fills the consumer fields of info from the request
// headers and query string. Author falls back to the caller's username.
func requestInfoFromCtx(c *fiber.Ctx, info drs.RequestInfo) drs.RequestInfo {
	get := func(key string) string { return utils.CopyString(c.Get(key)) }
	query := func(key string) string { return utils.CopyString(c.Query(key)) }

	info.AccountID = get("Account-Id")
	info.ContentType = get(fiber.HeaderContentType)
	info.ConsumerIdentifier = query("consumerIdentifier")
	info.ConsumerDocumentID = query("consumerDocumentId")
	info.ConsumerFilename = query("consumerFilename")
	info.ConsumerFilingDate = query("consumerFilingDate")
	info.ConsumerReferenceID = query("consumerReferenceId")
	info.Description = query("description")
	info.Author = query("author")
	if info.Author == "" {
		if claims := middleware.ClaimsFromCtx(c); claims != nil {
			info.Author = claims.Username()
		}
	}
	return info
}
