package drs

import "net/url"

// RequestInfo carries the parameters of a single Document Record Service
// call. It is built per request and never persisted.
type RequestInfo struct {
	DocumentClass       string
	DocumentType        string
	DocumentServiceID   string
	ConsumerIdentifier  string
	ConsumerDocumentID  string
	ConsumerFilename    string
	ConsumerFilingDate  string
	ConsumerReferenceID string
	Author              string
	Description         string
	AccountID           string
	ContentType         string
}

// consumerQuery encodes the optional consumer fields as DRS query parameters.
func (ri RequestInfo) consumerQuery() url.Values {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("consumerIdentifier", ri.ConsumerIdentifier)
	set("consumerDocumentId", ri.ConsumerDocumentID)
	set("consumerFilename", ri.ConsumerFilename)
	set("consumerFilingDate", ri.ConsumerFilingDate)
	set("consumerReferenceId", ri.ConsumerReferenceID)
	set("author", ri.Author)
	set("description", ri.Description)
	return q
}
