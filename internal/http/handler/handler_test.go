package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"legaldocs/internal/auth"
	"legaldocs/internal/drs"
	"legaldocs/internal/http/middleware"
	"legaldocs/internal/service"
	serviceMocks "legaldocs/internal/service/mocks"
	"legaldocs/internal/validation"
)

const testToken = "good-token"

type stubValidator struct{}

func (stubValidator) Validate(token string) (*auth.Claims, error) {
	if token != testToken {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{
		PreferredUsername: "staff1",
		RegisteredClaims:  jwt.RegisteredClaims{Subject: "sub-1"},
	}, nil
}

type decodedError struct {
	Message   json.RawMessage `json:"message"`
	Code      string          `json:"code"`
	RequestID string          `json:"request_id"`
}

func newTestApp(t *testing.T, svc service.DocumentService) (*fiber.App, *test.Hook) {
	t.Helper()

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log, hook := test.NewNullLogger()

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	RegisterRoutes(app, Dependencies{
		DB:        db,
		Documents: svc,
		Tokens:    stubValidator{},
		Log:       log,
	})
	return app, hook
}

func authed(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+testToken)
	return req
}

func decodeError(t *testing.T, resp *http.Response) decodedError {
	t.Helper()
	var body decodedError
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func messageString(t *testing.T, body decodedError) string {
	t.Helper()
	var s string
	require.NoError(t, json.Unmarshal(body.Message, &s))
	return s
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	app := fiber.New()
	app.Get("/health", HealthCheck(db))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("unhealthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeError(t, resp).Code)
	})
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDocumentRoutes_RequireBearerToken(t *testing.T) {
	svc := new(serviceMocks.MockDocumentService)
	app, _ := newTestApp(t, svc)

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v2/documents/DS0000000001", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "UNAUTHORIZED", body.Code)
		assert.NotEmpty(t, body.RequestID)
	})

	t.Run("invalid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/api/v2/documents/DS0000000001", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer forged")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSignedUploadURL(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		svc.On("SignedUploadURL", mock.Anything, "affidavit.pdf").
			Return(&service.SignedURL{Key: "c0ffee.pdf", PreSignedURL: "https://minio/put"}, nil).Once()

		resp, err := app.Test(authed(http.MethodGet, "/api/v2/documents/affidavit.pdf/signatures", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "c0ffee.pdf", body["key"])
		assert.Equal(t, "https://minio/put", body["preSignedUrl"])
		svc.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, hook := newTestApp(t, svc)

		svc.On("SignedUploadURL", mock.Anything, "affidavit.pdf").
			Return(nil, &service.Error{Kind: service.KindUpstream, Op: "presign", Err: errors.New("minio down")}).Once()

		resp, err := app.Test(authed(http.MethodGet, "/api/v2/documents/affidavit.pdf/signatures", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "INTERNAL_ERROR", decodeError(t, resp).Code)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	})
}

func TestDeleteDocument(t *testing.T) {
	t.Run("document record service draft", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		svc.On("Delete", mock.Anything, "DS0000000001").Return(nil).Once()

		resp, err := app.Test(authed(http.MethodDelete, "/api/v2/documents/DS0000000001", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "File DS0000000001 deleted successfully.", body["message"])
		svc.AssertExpectations(t)
	})

	t.Run("filing not a draft", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		svc.On("Delete", mock.Anything, "abc123.pdf").
			Return(&service.Error{Kind: service.KindForbidden, Op: "delete", Key: "abc123.pdf", Err: service.ErrNotDraft}).Once()

		resp, err := app.Test(authed(http.MethodDelete, "/api/v2/documents/abc123.pdf", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "Filing is not a draft.", messageString(t, decodeError(t, resp)))
	})

	t.Run("upstream failure", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, hook := newTestApp(t, svc)

		svc.On("Delete", mock.Anything, "abc123.pdf").
			Return(&service.Error{Kind: service.KindUpstream, Op: "delete", Key: "abc123.pdf", Err: errors.New("boom")}).Once()

		resp, err := app.Test(authed(http.MethodDelete, "/api/v2/documents/abc123.pdf", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "Error deleting file abc123.pdf.", messageString(t, body))
		assert.NotContains(t, string(body.Message), "boom")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "abc123.pdf", entry.Data["key"])
	})
}

func TestDocumentRoutes_DecodePathParams(t *testing.T) {
	t.Run("delete with encoded key", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		svc.On("Delete", mock.Anything, "my file.pdf").Return(nil).Once()

		resp, err := app.Test(authed(http.MethodDelete, "/api/v2/documents/my%20file.pdf", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "File my file.pdf deleted successfully.", body["message"])
		svc.AssertExpectations(t)
	})

	t.Run("get object with encoded key", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		svc.On("GetObject", mock.Anything, "annual report.pdf").
			Return(&service.Content{Body: []byte("%PDF"), ContentType: service.ContentTypePDF}, nil).Once()

		resp, err := app.Test(authed(http.MethodGet, "/api/v2/documents/annual%20report.pdf", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("encoded slash stays in its segment", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		svc.On("Delete", mock.Anything, "a/b.pdf").Return(nil).Once()

		resp, err := app.Test(authed(http.MethodDelete, "/api/v2/documents/a%2Fb.pdf", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("encoded class and id", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		svc.On("Get", mock.Anything, "CORP", "scan 1.pdf").
			Return(&service.Content{Body: []byte("%PDF"), ContentType: service.ContentTypePDF}, nil).Once()

		resp, err := app.Test(authed(http.MethodGet, "/api/v2/documents/CORP/scan%201.pdf", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("malformed escape", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		req := authed(http.MethodDelete, "/api/v2/documents/placeholder.pdf", nil)
		req.URL.Opaque = "/api/v2/documents/bad%zz.pdf"

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "BAD_REQUEST", decodeError(t, resp).Code)
		svc.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestGetObject(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		svc.On("GetObject", mock.Anything, "abc123.pdf").
			Return(&service.Content{Body: []byte("%PDF-1.7"), ContentType: service.ContentTypePDF}, nil).Once()

		resp, err := app.Test(authed(http.MethodGet, "/api/v2/documents/abc123.pdf", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
		b, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "%PDF-1.7", string(b))
	})

	t.Run("failure", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		svc.On("GetObject", mock.Anything, "missing.pdf").
			Return(nil, &service.Error{Kind: service.KindUpstream, Op: "get", Key: "missing.pdf", Err: errors.New("no such key")}).Once()

		resp, err := app.Test(authed(http.MethodGet, "/api/v2/documents/missing.pdf", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Error getting file missing.pdf.", messageString(t, decodeError(t, resp)))
	})
}

func TestUploadDocument(t *testing.T) {
	t.Run("forwards enriched request", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		want := drs.RequestInfo{
			DocumentClass:      "CORP",
			DocumentType:       "CNTO",
			ConsumerIdentifier: "BC1234567",
			ConsumerFilename:   "consent.pdf",
			Author:             "staff1",
			AccountID:          "2617",
			ContentType:        "application/pdf",
		}
		svc.On("Upload", mock.Anything, want, []byte("%PDF")).
			Return(json.RawMessage(`{"documentServiceId":"DS0000000001"}`), nil).Once()

		req := authed(http.MethodPost,
			"/api/v2/documents/CORP/CNTO?consumerIdentifier=BC1234567&consumerFilename=consent.pdf",
			bytes.NewReader([]byte("%PDF")))
		req.Header.Set("Account-Id", "2617")
		req.Header.Set(fiber.HeaderContentType, "application/pdf")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		b, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"documentServiceId":"DS0000000001"}`, string(b))
		svc.AssertExpectations(t)
	})

	t.Run("explicit author wins over token", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		svc.On("Upload", mock.Anything, mock.MatchedBy(func(info drs.RequestInfo) bool {
			return info.Author == "Jane Doe"
		}), mock.Anything).Return(json.RawMessage(`{}`), nil).Once()

		resp, err := app.Test(authed(http.MethodPost, "/api/v2/documents/CORP/CNTO?author=Jane%20Doe", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("invalid class and type", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		msgs := []validation.Message{
			{Error: "Invalid document class: NOPE.", Path: "/documentClass"},
			{Error: "Invalid document type: BAD.", Path: "/documentType"},
		}
		svc.On("Upload", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, &service.Error{Kind: service.KindValidation, Op: "upload", Messages: msgs, Err: service.ErrInvalidDocument}).Once()

		resp, err := app.Test(authed(http.MethodPost, "/api/v2/documents/NOPE/BAD", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		var got []validation.Message
		require.NoError(t, json.Unmarshal(body.Message, &got))
		assert.Equal(t, msgs, got)
	})

	t.Run("options", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		resp, err := app.Test(authed(http.MethodOptions, "/api/v2/documents/CORP/CNTO", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cors preflight", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		req := httptest.NewRequest(http.MethodOptions, "/api/v2/documents/CORP/CNTO", nil)
		req.Header.Set(fiber.HeaderOrigin, "https://business.example.com")
		req.Header.Set(fiber.HeaderAccessControlRequestMethod, http.MethodPost)

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	})
}

func TestGetDocument(t *testing.T) {
	t.Run("document record service", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		svc.On("Get", mock.Anything, "CORP", "DS0000000001").
			Return(&service.Content{Body: []byte(`{"documentURL":"https://drs/file"}`), ContentType: service.ContentTypeJSON}, nil).Once()

		resp, err := app.Test(authed(http.MethodGet, "/api/v2/documents/CORP/DS0000000001", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get(fiber.HeaderContentType))
		b, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"documentURL":"https://drs/file"}`, string(b))
	})

	t.Run("empty search result", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		svc.On("Get", mock.Anything, "CORP", "DS0000000002").
			Return(nil, &service.Error{Kind: service.KindShape, Op: "get", Key: "DS0000000002", Err: service.ErrUnexpectedShape}).Once()

		resp, err := app.Test(authed(http.MethodGet, "/api/v2/documents/CORP/DS0000000002", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Error getting file DS0000000002.", messageString(t, decodeError(t, resp)))
	})

	t.Run("signatures route is not shadowed", func(t *testing.T) {
		svc := new(serviceMocks.MockDocumentService)
		app, _ := newTestApp(t, svc)

		svc.On("SignedUploadURL", mock.Anything, "x.pdf").
			Return(&service.SignedURL{Key: "k.pdf", PreSignedURL: "u"}, nil).Once()

		resp, err := app.Test(authed(http.MethodGet, "/api/v2/documents/x.pdf/signatures", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(middleware.RequestID())
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("boom") })

	t.Run("not found", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/nope", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
	})

	t.Run("internal", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Equal(t, "INTERNAL_ERROR", body.Code)
		assert.Equal(t, "internal server error", messageString(t, body))
	})
}
