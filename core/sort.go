package core

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/volatiletech/null/v8"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var collator = collate.New(language.English)

// SortBy stably orders a copy of `items` by the field named by its JSON tag.
// Records missing the field (or holding a null optional) always sort last, in both
// directions. Strings compare locale-aware, numbers numerically, dates
// chronologically; mixed types fall back to their string representation.
// The input slice is never mutated.
func SortBy[T any](items []T, field string, ascending bool) []T {
	out := append(make([]T, 0, len(items)), items...)
	if field == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		av, aok := sortFieldValue(out[i], field)
		bv, bok := sortFieldValue(out[j], field)
		if !aok {
			return false // missing values are always "greatest"
		}
		if !bok {
			return true
		}
		cmp := compareValues(av, bv)
		if cmp == 0 {
			return false
		}
		if ascending {
			return cmp < 0
		}
		return cmp > 0
	})
	return out
}

// SortState tracks the active sort column the way a table header does: sorting an
// already-sorted field flips direction, a new field resets to ascending.
type SortState struct {
	Field     string
	Ascending bool
}

func (st *SortState) Toggle(field string) {
	if st.Field == field {
		st.Ascending = !st.Ascending
		return
	}
	st.Field = field
	st.Ascending = true
}

// ApplySort sorts `items` per the current state.
func ApplySort[T any](st SortState, items []T) []T {
	return SortBy(items, st.Field, st.Ascending)
}

func sortFieldValue(rec interface{}, field string) (interface{}, bool) {
	v := reflect.ValueOf(rec)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, false
	}
	return structFieldValue(v, field)
}

func structFieldValue(v reflect.Value, field string) (interface{}, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		fld := t.Field(i)
		if isEmbeddedStruct(fld) {
			if val, ok := structFieldValue(v.Field(i), field); ok {
				return val, ok
			}
			continue
		}
		if jsonFieldName(fld) != field {
			continue
		}
		return normalizeValue(v.Field(i).Interface())
	}
	return nil, false
}

func normalizeValue(val interface{}) (interface{}, bool) {
	switch v := val.(type) {
	case string:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	case bool:
		return fmt.Sprintf("%t", v), true
	case time.Time:
		if v.IsZero() {
			return nil, false
		}
		return v, true
	case null.String:
		if v.Valid {
			return v.String, true
		}
	case null.Int:
		if v.Valid {
			return float64(v.Int), true
		}
	case null.Float64:
		if v.Valid {
			return v.Float64, true
		}
	case null.Time:
		if v.Valid {
			return v.Time, true
		}
	}
	return nil, false
}

func compareValues(a, b interface{}) int {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return collator.CompareString(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			switch {
			case av.Before(bv):
				return -1
			case av.After(bv):
				return 1
			}
			return 0
		}
	}
	return collator.CompareString(fmt.Sprint(a), fmt.Sprint(b))
}
