package listing

// View is the table state owned by one listing: sort column and direction
// plus the current page.
type View struct {
	OrderBy  Column
	Order    Order
	Page     int
	PageSize int
}

func NewView() *View {
	return &View{OrderBy: ColumnName, Order: Asc, PageSize: DefaultPageSize}
}

// RequestSort handles a click on a column header: the active ascending
// column flips to descending, anything else sorts ascending.
func (v *View) RequestSort(c Column) {
	if v.OrderBy == c && v.Order == Asc {
		v.Order = Desc
	} else {
		v.Order = Asc
	}
	v.OrderBy = c
}

func (v *View) SetPage(page int) {
	if page < 0 {
		page = 0
	}
	v.Page = page
}

// SetPageSize changes the page size and returns to the first page.
func (v *View) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	v.PageSize = size
	v.Page = 0
}

// Window sorts rows by the view's column and order and returns the current
// page.
func (v *View) Window(rows []Row) Page {
	return Paginate(Sort(rows, v.OrderBy, v.Order), v.Page, v.PageSize)
}
