package model

import (
	"database/sql/driver"
	"fmt"
)

// ConsentOutType classifies a consent granted to leave the jurisdiction.
type ConsentOutType string

const (
	ConsentOutContinuation ConsentOutType = "continuation_out"
	ConsentOutAmalgamation ConsentOutType = "amalgamation_out"
)

// ConsentOutTypes lists the values of the consent_out_types enum in
// declaration order.
func ConsentOutTypes() []ConsentOutType {
	return []ConsentOutType{ConsentOutContinuation, ConsentOutAmalgamation}
}

// Valid reports whether t is a member of the enum.
func (t ConsentOutType) Valid() bool {
	for _, v := range ConsentOutTypes() {
		if t == v {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer.
func (t ConsentOutType) Value() (driver.Value, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid consent out type %q", string(t))
	}
	return string(t), nil
}

// Scan implements sql.Scanner.
func (t *ConsentOutType) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		*t = ConsentOutContinuation
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ConsentOutType", src)
	}
	ct := ConsentOutType(s)
	if !ct.Valid() {
		return fmt.Errorf("invalid consent out type %q", s)
	}
	*t = ct
	return nil
}
