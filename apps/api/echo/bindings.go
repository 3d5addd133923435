package echoapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/hostela/core"
)

var (
	orderingParam = "ordering"
	pageParam     = "page"
	pageSizeParam = "page_size"
)

// Ordering binds the `ordering` query param ("field" or "-field") to a core.SortState.
type Ordering struct {
	Sort core.SortState
}

func (ord *Ordering) Bind(ctx echo.Context) {
	val := ctx.QueryParam(orderingParam)
	if val == "" {
		return
	}

	field := strings.TrimSpace(strings.SplitN(val, ",", 2)[0])
	descending := strings.HasPrefix(field, "-")
	if descending {
		field = field[1:] // drop "-"
	}
	ord.Sort = core.SortState{Field: field, Ascending: !descending}
}

// Pagination binds the `page` and `page_size` query params; zero values fall back
// to the defaults in core.Paginate.
type Pagination struct {
	Page     int
	PageSize int
}

func (pg *Pagination) Bind(ctx echo.Context) {
	pg.Page, _ = strconv.Atoi(ctx.QueryParam(pageParam))
	pg.PageSize, _ = strconv.Atoi(ctx.QueryParam(pageSizeParam))
}

// ListResponse is the envelope all list endpoints reply with.
type ListResponse[T any] struct {
	Count      int `json:"count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
	Results    []T `json:"results"`
}

// respondList sorts then paginates `items` and writes the list envelope.
func respondList[T any](ctx echo.Context, items []T, ord Ordering, pg Pagination) error {
	items = core.ApplySort(ord.Sort, items)
	page := core.Paginate(len(items), pg.Page, pg.PageSize)
	results := items[page.Start:page.End]
	if results == nil {
		results = []T{}
	}
	return ctx.JSON(http.StatusOK, ListResponse[T]{
		Count:      page.TotalItems,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: page.TotalPages,
		Results:    results,
	})
}

func bindListParams(ctx echo.Context) (Ordering, Pagination) {
	var ord Ordering
	var pg Pagination
	ord.Bind(ctx)
	pg.Bind(ctx)
	return ord, pg
}
