package http

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const defaultPageSize = 12

// Page mirrors the envelope the frontend already consumes:
// content, number, size, totalElements, totalPages.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func NewPage[T any](content []T, number, size int, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := int(total) / size
	if int(total)%size != 0 {
		pages++
	}
	return Page[T]{
		Content:       content,
		Number:        number,
		Size:          size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// pageParams reads zero-based page and size query parameters.
func pageParams(c echo.Context, defaultSize int) (page, size int) {
	page = 0
	size = defaultSize

	if v := c.QueryParam("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			page = n
		}
	}
	if v := c.QueryParam("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			size = n
		}
	}
	return page, size
}
