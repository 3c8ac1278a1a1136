package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// ListParams represents common pagination parameters. A zero Limit means
// "no pagination": return everything.
type ListParams struct {
	Limit  int `json:"limit" form:"limit"`
	Offset int `json:"offset" form:"offset"`
}

func (p ListParams) Paginated() bool {
	return p.Limit > 0
}

// Optional is a request field that distinguishes an omitted JSON key from
// an explicit null. Set reports whether the key was present at all; a
// present key carrying null leaves Value nil, which update paths write
// through as a cleared column.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// Some wraps a value as a present optional, for building requests in code.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: &v}
}

// Null is a present-but-null optional: the field is to be cleared.
func Null[T any]() Optional[T] {
	return Optional[T]{Set: true}
}

// StringList is a JSON-serialized list column. Element order is preserved
// as given.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// FAQ is a question/answer pair stored inside a department's faqs column.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQList is a JSON-serialized list of FAQs.
type FAQList []FAQ

func (l FAQList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *FAQList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func scanJSON(src, dst interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported type %T for JSON column", src)
	}
}
