package model

// FilingStatus is the lifecycle state of a filing.
type FilingStatus string

const (
	FilingStatusDraft             FilingStatus = "DRAFT"
	FilingStatusPending           FilingStatus = "PENDING"
	FilingStatusPendingCorrection FilingStatus = "PENDING_CORRECTION"
	FilingStatusPaid              FilingStatus = "PAID"
	FilingStatusApproved          FilingStatus = "APPROVED"
	FilingStatusAwaitingReview    FilingStatus = "AWAITING_REVIEW"
	FilingStatusChangeRequested   FilingStatus = "CHANGE_REQUESTED"
	FilingStatusCompleted         FilingStatus = "COMPLETED"
	FilingStatusCorrected         FilingStatus = "CORRECTED"
	FilingStatusEpoch             FilingStatus = "EPOCH"
	FilingStatusError             FilingStatus = "ERROR"
	FilingStatusRejected          FilingStatus = "REJECTED"
	FilingStatusWithdrawn         FilingStatus = "WITHDRAWN"
)

// Filing is a legal filing record. Only the fields the document gateway
// reads are mapped.
type Filing struct {
	ID     int64        `json:"id"`
	Status FilingStatus `json:"status"`
}

// IsDraft reports whether the filing has not been submitted yet.
func (f *Filing) IsDraft() bool {
	return f != nil && f.Status == FilingStatusDraft
}
