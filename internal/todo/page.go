package todo

// PageSize is the number of items shown per page.
const PageSize = 10

// TotalPages is ceil(n / PageSize). An empty list has zero pages.
func TotalPages(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + PageSize - 1) / PageSize
}

// Pager tracks the 1-based current page. The zero value is page 1.
type Pager struct {
	page int
}

func (p Pager) Page() int {
	if p.page < 1 {
		return 1
	}
	return p.page
}

// Clamp pulls the page back inside [1, TotalPages(n)].
func (p *Pager) Clamp(n int) {
	last := max(TotalPages(n), 1)
	p.page = min(max(p.Page(), 1), last)
}

func (p Pager) HasPrev() bool { return p.Page() > 1 }

func (p Pager) HasNext(n int) bool { return p.Page() < TotalPages(n) }

// Prev moves back a page, reporting whether it moved.
func (p *Pager) Prev() bool {
	if !p.HasPrev() {
		return false
	}
	p.page = p.Page() - 1
	return true
}

// Next moves forward a page, reporting whether it moved.
func (p *Pager) Next(n int) bool {
	if !p.HasNext(n) {
		return false
	}
	p.page = p.Page() + 1
	return true
}

// SetPage jumps to the page containing the item at index i.
func (p *Pager) SetPage(i int) {
	p.page = i/PageSize + 1
}

// Bounds returns the half-open range [start, end) of the current page
// within a list of length n.
func (p Pager) Bounds(n int) (start, end int) {
	return Bounds(p.Page(), n)
}

// Bounds returns the half-open range of a 1-based page over a list of length n.
func Bounds(page, n int) (start, end int) {
	if page < 1 {
		page = 1
	}
	start = min((page-1)*PageSize, n)
	end = min(start+PageSize, n)
	return start, end
}

// Visible returns the items shown on p's current page.
func Visible[T any](p Pager, items []T) []T {
	start, end := p.Bounds(len(items))
	return items[start:end]
}
