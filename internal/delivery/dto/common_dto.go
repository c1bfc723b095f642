package dto

// DateLayout is the wire format of every calendar date
const DateLayout = "2006-01-02"

// ListQuery carries the paging parameters shared by list endpoints
type ListQuery struct {
	Page  int
	Limit int
}

// Offset turns page/limit into a row offset, clamping to sane defaults
func (q *ListQuery) Offset() int {
	q.Normalize()
	return (q.Page - 1) * q.Limit
}

// Normalize applies page 1 and limit 10 defaults and caps limit at 100
func (q *ListQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
}
