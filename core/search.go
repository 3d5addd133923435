package core

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/volatiletech/null/v8"
)

// Search returns the items whose fields contain `term` (case-insensitive substring),
// preserving relative order. When `fields` is non-empty only those fields (JSON tag
// names) are inspected; otherwise every scalar (string or number) field is. Numbers
// match on their decimal representation. The input slice is never mutated.
func Search[T any](items []T, fields []string, term string) []T {
	out := make([]T, 0, len(items))
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append(out, items...)
	}
	for _, item := range items {
		if matchesTerm(item, fields, term) {
			out = append(out, item)
		}
	}
	return out
}

func matchesTerm(rec interface{}, fields []string, term string) bool {
	v := reflect.ValueOf(rec)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return false
	}
	return matchesStruct(v, fields, term)
}

func matchesStruct(v reflect.Value, fields []string, term string) bool {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		if isEmbeddedStruct(fld) {
			// enriched row types embed their entity; its fields are flattened
			// into the record the same way encoding/json flattens them
			if matchesStruct(v.Field(i), fields, term) {
				return true
			}
			continue
		}
		name := jsonFieldName(fld)
		if name == "" {
			continue
		}
		if len(fields) > 0 && !containsField(fields, name) {
			continue
		}
		if s, ok := scalarString(v.Field(i).Interface()); ok {
			if strings.Contains(strings.ToLower(s), term) {
				return true
			}
		}
	}
	return false
}

// isEmbeddedStruct reports whether fld is an anonymous struct whose fields
// encoding/json promotes into the enclosing record.
func isEmbeddedStruct(fld reflect.StructField) bool {
	return fld.Anonymous && fld.Type.Kind() == reflect.Struct && fld.Tag.Get("json") == ""
}

// jsonFieldName resolves a struct field to the record key the SPA-facing API exposes.
func jsonFieldName(fld reflect.StructField) string {
	tag := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if tag == "-" {
		return ""
	}
	if tag == "" {
		return fld.Name
	}
	return tag
}

func containsField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

// scalarString renders a searchable field value; non-scalar fields report !ok,
// as do null optional fields.
func scalarString(val interface{}) (string, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case null.String:
		if v.Valid {
			return v.String, true
		}
	case null.Int:
		if v.Valid {
			return strconv.Itoa(v.Int), true
		}
	case null.Float64:
		if v.Valid {
			return strconv.FormatFloat(v.Float64, 'f', -1, 64), true
		}
	}
	return "", false
}
