package core

import (
	"reflect"
	"testing"
	"time"

	"github.com/volatiletech/null/v8"
)

type sortRec struct {
	Name     string    `json:"name"`
	Amount   int       `json:"amount"`
	DueDate  time.Time `json:"dueDate"`
	PaidDate null.Time `json:"paidDate"`
}

func names(recs []sortRec) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Name)
	}
	return out
}

func TestSortBy(t *testing.T) {
	d1 := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	recs := []sortRec{
		{Name: "bilal", Amount: 8000, DueDate: d2, PaidDate: null.TimeFrom(d2)},
		{Name: "Ali", Amount: 15000, DueDate: d1},
		{Name: "danish", Amount: 5000, DueDate: d1, PaidDate: null.TimeFrom(d1)},
	}

	tests := []struct {
		name      string
		field     string
		ascending bool
		want      []string
	}{
		{name: "strings ascending ignores case", field: "name", ascending: true, want: []string{"Ali", "bilal", "danish"}},
		{name: "strings descending", field: "name", ascending: false, want: []string{"danish", "bilal", "Ali"}},
		{name: "numbers ascending", field: "amount", ascending: true, want: []string{"danish", "bilal", "Ali"}},
		{name: "numbers descending", field: "amount", ascending: false, want: []string{"Ali", "bilal", "danish"}},
		{name: "dates ascending keeps ties stable", field: "dueDate", ascending: true, want: []string{"Ali", "danish", "bilal"}},
		{name: "null values last ascending", field: "paidDate", ascending: true, want: []string{"danish", "bilal", "Ali"}},
		{name: "null values last descending", field: "paidDate", ascending: false, want: []string{"bilal", "danish", "Ali"}},
		{name: "unknown field keeps order", field: "lol", ascending: true, want: []string{"bilal", "Ali", "danish"}},
		{name: "empty field keeps order", field: "", ascending: true, want: []string{"bilal", "Ali", "danish"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(SortBy(recs, tt.field, tt.ascending))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortBy() = %v, want %v", got, tt.want)
			}
		})
	}

	// input must never be mutated
	if recs[0].Name != "bilal" {
		t.Error("SortBy() mutated its input")
	}
}

// enrichedRec mirrors the list-row shape the API renders: the entity embedded
// with an extra resolved reference alongside it.
type enrichedRec struct {
	sortRec
	RoomNumber string `json:"roomNumber"`
}

func TestSortBy_embeddedEntityRow(t *testing.T) {
	recs := []enrichedRec{
		{sortRec: sortRec{Name: "Omar", Amount: 300}, RoomNumber: "RM002"},
		{sortRec: sortRec{Name: "Ali", Amount: 100}, RoomNumber: "RM003"},
		{sortRec: sortRec{Name: "Bilal", Amount: 200}, RoomNumber: "RM001"},
	}

	rowNames := func(recs []enrichedRec) []string {
		out := make([]string, 0, len(recs))
		for _, r := range recs {
			out = append(out, r.Name)
		}
		return out
	}

	tests := []struct {
		name      string
		field     string
		ascending bool
		want      []string
	}{
		{name: "embedded number", field: "amount", ascending: true, want: []string{"Ali", "Bilal", "Omar"}},
		{name: "embedded number descending", field: "amount", ascending: false, want: []string{"Omar", "Bilal", "Ali"}},
		{name: "embedded string", field: "name", ascending: true, want: []string{"Ali", "Bilal", "Omar"}},
		{name: "own field", field: "roomNumber", ascending: true, want: []string{"Bilal", "Omar", "Ali"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rowNames(SortBy(recs, tt.field, tt.ascending))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortBy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortState_Toggle(t *testing.T) {
	var st SortState

	st.Toggle("name")
	if st.Field != "name" || !st.Ascending {
		t.Errorf("first toggle = %+v, want {name true}", st)
	}

	st.Toggle("name")
	if st.Field != "name" || st.Ascending {
		t.Errorf("second toggle = %+v, want {name false}", st)
	}

	st.Toggle("amount")
	if st.Field != "amount" || !st.Ascending {
		t.Errorf("new field toggle = %+v, want {amount true}", st)
	}
}

func TestApplySort(t *testing.T) {
	recs := []sortRec{
		{Name: "bilal"},
		{Name: "ali"},
	}

	got := names(ApplySort(SortState{Field: "name", Ascending: true}, recs))
	if !reflect.DeepEqual(got, []string{"ali", "bilal"}) {
		t.Errorf("ApplySort() = %v", got)
	}

	got = names(ApplySort(SortState{}, recs))
	if !reflect.DeepEqual(got, []string{"bilal", "ali"}) {
		t.Errorf("ApplySort() with empty state = %v", got)
	}
}
