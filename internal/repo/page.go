package repo

// Page selects a window of a user's todos.
type Page struct {
	Offset int
	Limit  int
}

// NewPage resolves optional offset/count values. A missing count uses defaultSize and
// counts above maxSize are capped.
func NewPage(offset, count *int, defaultSize, maxSize int) Page {
	p := Page{Limit: defaultSize}

	if offset != nil && *offset > 0 {
		p.Offset = *offset
	}
	if count != nil {
		p.Limit = max(*count, 0)
	}
	if maxSize > 0 && p.Limit > maxSize {
		p.Limit = maxSize
	}
	return p
}
