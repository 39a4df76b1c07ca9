package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"legaldocs/internal/document"
	"legaldocs/internal/drs"
	"legaldocs/internal/storage"
	"legaldocs/internal/validation"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeJSON = "application/json"

	defaultPresignExpiry = 5 * time.Minute
)

// SignedURL is a pre-signed upload target for a newly generated object key.
type SignedURL struct {
	Key          string `json:"key"`
	PreSignedURL string `json:"preSignedUrl"`
}

// Content is a fetched document body and the content type to serve it with.
type Content struct {
	Body        []byte
	ContentType string
}

// DraftChecker reports whether a document may still be deleted.
type DraftChecker interface {
	IsDraft(ctx context.Context, fileKey string) (bool, error)
}

// DocumentService defines the document gateway use cases. Every error it
// returns is an *Error.
type DocumentService interface {
	// SignedUploadURL generates a new object key with the extension of
	// fileName and a pre-signed PUT URL for it.
	SignedUploadURL(ctx context.Context, fileName string) (*SignedURL, error)

	// Upload validates the class/type in info and forwards body to the
	// Document Record Service, returning its answer.
	Upload(ctx context.Context, info drs.RequestInfo, body []byte) (json.RawMessage, error)

	// Get resolves id against the backend its shape selects.
	Get(ctx context.Context, documentClass, id string) (*Content, error)

	// GetObject fetches key from the object store regardless of its shape.
	GetObject(ctx context.Context, key string) (*Content, error)

	// Delete removes key from its backend if its filing is still a draft.
	Delete(ctx context.Context, key string) error
}

// Option customizes a documentService.
type Option func(*documentService)

// WithPresignExpiry sets the lifetime of pre-signed upload URLs.
func WithPresignExpiry(d time.Duration) Option {
	return func(s *documentService) {
		if d > 0 {
			s.presignExpiry = d
		}
	}
}

// WithMetrics records backend operations on m.
func WithMetrics(m *Metrics) Option {
	return func(s *documentService) {
		s.metrics = m
	}
}

type documentService struct {
	store         storage.Storage
	records       drs.Client
	drafts        DraftChecker
	presignExpiry time.Duration
	metrics       *Metrics
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, records drs.Client, drafts DraftChecker, opts ...Option) DocumentService {
	s := &documentService{
		store:         store,
		records:       records,
		drafts:        drafts,
		presignExpiry: defaultPresignExpiry,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *documentService) SignedUploadURL(ctx context.Context, fileName string) (*SignedURL, error) {
	key := uuid.NewString() + filepath.Ext(fileName)

	u, err := s.store.PresignPut(ctx, key, s.presignExpiry)
	if err != nil {
		err := upstream("presign", key, err)
		s.metrics.observe(document.ObjectStore, "presign", err)
		return nil, err
	}
	s.metrics.observe(document.ObjectStore, "presign", nil)
	return &SignedURL{Key: key, PreSignedURL: u}, nil
}

func (s *documentService) Upload(ctx context.Context, info drs.RequestInfo, body []byte) (json.RawMessage, error) {
	key := info.DocumentClass + "/" + info.DocumentType
	if msgs := validation.ValidateDocClassAndType(info.DocumentClass, info.DocumentType); len(msgs) > 0 {
		return nil, &Error{Kind: KindValidation, Op: "upload", Key: key, Messages: msgs, Err: ErrInvalidDocument}
	}

	out, err := s.records.PostClassDocument(ctx, info, body)
	if err != nil {
		err := upstream("upload", key, err)
		s.metrics.observe(document.ExternalService, "upload", err)
		return nil, err
	}
	s.metrics.observe(document.ExternalService, "upload", nil)
	return out, nil
}

func (s *documentService) Get(ctx context.Context, documentClass, id string) (*Content, error) {
	if document.Classify(id) == document.ObjectStore {
		return s.GetObject(ctx, id)
	}

	c, err := s.getRecord(ctx, documentClass, id)
	s.metrics.observe(document.ExternalService, "get", err)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *documentService) getRecord(ctx context.Context, documentClass, id string) (*Content, error) {
	raw, err := s.records.GetDocument(ctx, drs.RequestInfo{
		DocumentClass:     documentClass,
		DocumentServiceID: id,
	})
	if err != nil {
		return nil, upstream("get", id, err)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &Error{Kind: KindShape, Op: "get", Key: id, Err: fmt.Errorf("%w: %v", ErrUnexpectedShape, err)}
	}
	if len(items) == 0 {
		return nil, &Error{Kind: KindShape, Op: "get", Key: id, Err: fmt.Errorf("%w: empty result", ErrUnexpectedShape)}
	}
	return &Content{Body: items[0], ContentType: ContentTypeJSON}, nil
}

func (s *documentService) GetObject(ctx context.Context, key string) (*Content, error) {
	c, err := s.getObject(ctx, key)
	s.metrics.observe(document.ObjectStore, "get", err)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *documentService) getObject(ctx context.Context, key string) (*Content, error) {
	rc, _, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, upstream("get", key, err)
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, upstream("get", key, fmt.Errorf("read object: %w", err))
	}
	return &Content{Body: b, ContentType: ContentTypePDF}, nil
}

func (s *documentService) Delete(ctx context.Context, key string) error {
	draft, err := s.drafts.IsDraft(ctx, key)
	if err != nil {
		return upstream("delete", key, err)
	}
	if !draft {
		return &Error{Kind: KindForbidden, Op: "delete", Key: key, Err: ErrNotDraft}
	}

	backend := document.Classify(key)
	switch backend {
	case document.ExternalService:
		_, err = s.records.DeleteDocument(ctx, key)
	case document.ObjectStore:
		err = s.store.Delete(ctx, key)
	}
	if err != nil {
		err := upstream("delete", key, err)
		s.metrics.observe(backend, "delete", err)
		return err
	}
	s.metrics.observe(backend, "delete", nil)
	return nil
}
