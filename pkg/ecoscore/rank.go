package ecoscore

import "time"

// Rank is 1-based: the count of strictly greater scores plus one. Tied
// entities share a rank number; no secondary key is applied.
func Rank(score int, population []int) int {
	rank := 1
	for _, s := range population {
		if s > score {
			rank++
		}
	}
	return rank
}

// Pagination mirrors the list metadata returned by every paged endpoint.
type Pagination struct {
	Current int  `json:"current"`
	Pages   int  `json:"pages"`
	Total   int  `json:"total"`
	HasNext bool `json:"hasNext"`
	HasPrev bool `json:"hasPrev"`
}

// Paginate derives page metadata from a population size. page and limit are
// clamped to sane minimums so arithmetic never divides by zero.
func Paginate(total, page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	pages := (total + limit - 1) / limit
	return Pagination{
		Current: page,
		Pages:   pages,
		Total:   total,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

// MonthWindow returns the half-open interval [start of now's calendar month,
// start of the next month) in now's location. The instant is passed in rather
// than read from the wall clock so callers stay testable and timezone
// decisions stay at the edge.
func MonthWindow(now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 1, 0)
	return start, end
}
