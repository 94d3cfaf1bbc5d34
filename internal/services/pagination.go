package services

// Page carries clamped pagination parameters. Number is at least 1 and
// Size sits in [1, 100] no matter what the client sent.
type Page struct {
	Number int
	Size   int
}

func ClampPage(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}
	return Page{Number: page, Size: limit}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// TotalPages never reports fewer than one page, so page 1 is always a
// valid request even against an empty collection.
func TotalPages(totalItems int64, pageSize int) int {
	pages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}
