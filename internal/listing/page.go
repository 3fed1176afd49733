package listing

// PageSizeOptions are the page sizes offered to the user.
var PageSizeOptions = []int{5, 10, 25}

const DefaultPageSize = 5

// Page is the visible window of a sorted collection.
type Page struct {
	Rows  []Row
	Blank int // empty row slots rendered after Rows to keep the table height
	Index int
	Size  int
	Total int
}

// Start and End are the 1-based bounds of the window for a "start–end of
// total" footer. Both are 0 when the window is empty.
func (p Page) Start() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return p.Index*p.Size + 1
}

func (p Page) End() int {
	if len(p.Rows) == 0 {
		return 0
	}
	return p.Index*p.Size + len(p.Rows)
}

// Paginate returns rows[page*size : page*size+size], clamped to the
// collection. Blank slots fill the rest of the page, at most size of them,
// except on the first page which is never padded.
func Paginate(rows []Row, page, size int) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	p := Page{
		Index: page,
		Size:  size,
		Total: len(rows),
	}

	// Past the last page: empty window, no offset arithmetic.
	if page > 0 && page >= PageCount(len(rows), size) {
		p.Rows = rows[len(rows):]
		p.Blank = size
		return p
	}

	start := min(page*size, len(rows))
	end := min(start+size, len(rows))
	p.Rows = rows[start:end]
	if page > 0 {
		p.Blank = max(0, min(size-len(p.Rows), (page+1)*size-len(rows)))
	}
	return p
}

// PageCount is the number of pages needed for total rows.
func PageCount(total, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
