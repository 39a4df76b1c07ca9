package validation

import "fmt"

// Message is a single validation failure, shaped like the registry's other
// filing validation errors.
type Message struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

// Document classes known to the Document Record Service.
const (
	ClassCorp    = "CORP"
	ClassCoop    = "COOP"
	ClassFirm    = "FIRM"
	ClassSociety = "SOCIETY"
	ClassLPLLP   = "LP_LLP"
	ClassXP      = "XP"
	ClassOther   = "OTHER"
)

// documentTypes maps each class to the document types that may be filed
// under it.
var documentTypes = map[string][]string{
	ClassCorp: {
		"CORR", "CNTA", "CNTI", "CNTO", "DIRECTOR_AFFIDAVIT", "AFFIDAVIT",
		"CORP_AMALGAMATION_OUT", "CORP_AMALGAMATION_IN", "COURT_ORDER",
	},
	ClassCoop: {
		"CORR", "COOP_RULES", "COOP_MEMORANDUM", "COURT_ORDER",
	},
	ClassFirm:    {"CORR", "FIRM_REGISTRATION", "COURT_ORDER"},
	ClassSociety: {"CORR", "SOC_CONSTITUTION", "SOC_BYLAWS", "COURT_ORDER"},
	ClassLPLLP:   {"CORR", "COURT_ORDER"},
	ClassXP:      {"CORR", "CNTA", "COURT_ORDER"},
	ClassOther:   {"CORR"},
}

// ValidateDocClassAndType checks that class is known and that typ may be
// filed under it. It returns nil when the combination is valid.
func ValidateDocClassAndType(class, typ string) []Message {
	var msgs []Message

	types, ok := documentTypes[class]
	if !ok {
		msgs = append(msgs, Message{
			Error: fmt.Sprintf("Invalid document class: %s.", class),
			Path:  "/documentClass",
		})
	}
	if !knownType(typ) {
		msgs = append(msgs, Message{
			Error: fmt.Sprintf("Invalid document type: %s.", typ),
			Path:  "/documentType",
		})
		return msgs
	}
	if ok && !contains(types, typ) {
		msgs = append(msgs, Message{
			Error: fmt.Sprintf("Document type %s is not valid for document class %s.", typ, class),
			Path:  "/documentType",
		})
	}
	return msgs
}

func knownType(typ string) bool {
	for _, types := range documentTypes {
		if contains(types, typ) {
			return true
		}
	}
	return false
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
