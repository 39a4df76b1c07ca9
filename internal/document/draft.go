package document

import (
	"context"
	"errors"
	"fmt"

	"legaldocs/internal/repository"
)

// DraftResolver decides whether the filing owning a document is still a draft.
type DraftResolver struct {
	documents repository.DocumentRepository
	filings   repository.FilingRepository
}

// NewDraftResolver creates a DraftResolver over the given repositories.
func NewDraftResolver(documents repository.DocumentRepository, filings repository.FilingRepository) *DraftResolver {
	return &DraftResolver{documents: documents, filings: filings}
}

// IsDraft reports whether the document under fileKey may be deleted.
//
// A key with no document record is treated as a draft upload that was never
// attached to a filing. A document whose filing cannot be found is not a
// draft. Lookup failures other than not-found are returned.
func (r *DraftResolver) IsDraft(ctx context.Context, fileKey string) (bool, error) {
	doc, err := r.documents.FindByFileKey(ctx, fileKey)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("find document %s: %w", fileKey, err)
	}
	if doc.FilingID == nil {
		return false, nil
	}

	filing, err := r.filings.FindByID(ctx, *doc.FilingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("find filing %d: %w", *doc.FilingID, err)
	}
	return filing.IsDraft(), nil
}
