package request

import (
	"fmt"
	"net/url"
)

// PageQuery carries Spring-style zero-based paging parameters
type PageQuery struct {
	Page int    `validate:"min=0"`
	Size int    `validate:"min=1,max=100"`
	Sort string // e.g. "startTime,asc"
}

func DefaultPageQuery() PageQuery {
	return PageQuery{Page: 0, Size: 20, Sort: "startTime,asc"}
}

// Values encodes the paging parameters for a query string
func (q PageQuery) Values() url.Values {
	v := url.Values{}
	v.Set("page", fmt.Sprintf("%d", q.Page))
	size := q.Size
	if size < 1 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	v.Set("size", fmt.Sprintf("%d", size))
	if q.Sort != "" {
		v.Set("sort", q.Sort)
	}
	return v
}
