package response

import (
	"bytes"
	"encoding/json"
)

// Page is the normalized form of list endpoints. The server answers some of
// them with a page envelope {content, totalPages, totalElements, currentPage,
// pageSize, hasNext, hasPrevious} and others with a bare array, so one
// parser handles both shapes instead of branching at every call site.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Number        int   `json:"currentPage"`
	Size          int   `json:"pageSize"`
}

type pageEnvelope[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	CurrentPage   int   `json:"currentPage"`
	PageSize      int   `json:"pageSize"`
}

func (p *Page[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	// Bare array: wrap as a single page
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		p.Content = items
		p.TotalPages = 1
		p.TotalElements = int64(len(items))
		p.Number = 0
		p.Size = len(items)
		return nil
	}

	var env pageEnvelope[T]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return err
	}
	p.Content = env.Content
	p.TotalPages = env.TotalPages
	p.TotalElements = env.TotalElements
	p.Number = env.CurrentPage
	p.Size = env.PageSize
	return nil
}

// HasNext reports whether another page follows the current one
func (p *Page[T]) HasNext() bool {
	return p.Number+1 < p.TotalPages
}
