package core

const DefaultPageSize = 10

// Paginator windows a collection of totalItems into fixed-size pages. Out-of-range
// navigation clamps instead of failing; 0 ≤ StartIndex ≤ EndIndex ≤ totalItems holds
// after every operation.
type Paginator struct {
	totalItems   int
	itemsPerPage int
	currentPage  int
}

func NewPaginator(totalItems, itemsPerPage, initialPage int) *Paginator {
	if totalItems < 0 {
		totalItems = 0
	}
	if itemsPerPage <= 0 {
		itemsPerPage = DefaultPageSize
	}
	if initialPage <= 0 {
		initialPage = 1
	}
	p := &Paginator{totalItems: totalItems, itemsPerPage: itemsPerPage}
	p.currentPage = p.clamp(initialPage)
	return p
}

func (p *Paginator) TotalItems() int   { return p.totalItems }
func (p *Paginator) ItemsPerPage() int { return p.itemsPerPage }
func (p *Paginator) CurrentPage() int  { return p.currentPage }

func (p *Paginator) TotalPages() int {
	return (p.totalItems + p.itemsPerPage - 1) / p.itemsPerPage
}

func (p *Paginator) StartIndex() int {
	start := (p.currentPage - 1) * p.itemsPerPage
	if start > p.totalItems {
		return p.totalItems
	}
	return start
}

func (p *Paginator) EndIndex() int {
	end := p.StartIndex() + p.itemsPerPage
	if end > p.totalItems {
		return p.totalItems
	}
	return end
}

// GoToPage clamps `page` into [1, TotalPages] (1 when the collection is empty).
func (p *Paginator) GoToPage(page int) {
	p.currentPage = p.clamp(page)
}

func (p *Paginator) NextPage() { p.GoToPage(p.currentPage + 1) }
func (p *Paginator) PrevPage() { p.GoToPage(p.currentPage - 1) }

// SetItemsPerPage changes the page size and resets to page 1 so the view is never
// stranded past the new last page.
func (p *Paginator) SetItemsPerPage(n int) {
	if n <= 0 {
		n = DefaultPageSize
	}
	p.itemsPerPage = n
	p.currentPage = 1
}

func (p *Paginator) clamp(page int) int {
	if page < 1 {
		return 1
	}
	if total := p.TotalPages(); page > total {
		if total < 1 {
			return 1
		}
		return total
	}
	return page
}

// Page is the stateless request-scoped window the API layer uses.
type Page struct {
	Number     int
	Size       int
	TotalItems int
	TotalPages int
	Start      int
	End        int
}

// Paginate clamps (page, size) over totalItems; size ≤ 0 falls back to the default.
func Paginate(totalItems, page, size int) Page {
	p := NewPaginator(totalItems, size, page)
	return Page{
		Number:     p.CurrentPage(),
		Size:       p.ItemsPerPage(),
		TotalItems: p.TotalItems(),
		TotalPages: p.TotalPages(),
		Start:      p.StartIndex(),
		End:        p.EndIndex(),
	}
}
