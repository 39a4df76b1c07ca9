package document

import "regexp"

// Backend names the store that owns a document key.
type Backend int

const (
	// ObjectStore is the S3-compatible blob store. Any key that is not a
	// Document Record Service id belongs here.
	ObjectStore Backend = iota
	// ExternalService is the Document Record Service.
	ExternalService
)

func (b Backend) String() string {
	switch b {
	case ExternalService:
		return "document_record_service"
	default:
		return "object_store"
	}
}

var serviceIDPattern = regexp.MustCompile(`^DS[0-9]{10}$`)

// Classify returns the backend that owns key: "DS" followed by exactly ten
// digits is a Document Record Service id, everything else is an object key.
func Classify(key string) Backend {
	if serviceIDPattern.MatchString(key) {
		return ExternalService
	}
	return ObjectStore
}
