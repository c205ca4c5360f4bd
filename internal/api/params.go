package api

import (
	"net/url"
	"strconv"

	"ecotrackapi/pkg/config"
)

// PageParams reads page/limit query values, clamping limit to the global cap.
func PageParams(q url.Values, defaultLimit int) (page, limit int) {
	page = atoiDefault(q.Get("page"), 1)
	if page < 1 {
		page = 1
	}
	limit = atoiDefault(q.Get("limit"), defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > config.MAX_PAGE_LIMIT {
		limit = config.MAX_PAGE_LIMIT
	}
	return page, limit
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
