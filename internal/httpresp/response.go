package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// PageResponse is a list with offset pagination metadata.
type PageResponse[T any] struct {
	Data        []T   `json:"data"`
	Total       int64 `json:"total"`
	PageCount   int   `json:"pageCount"`
	CurrentPage int   `json:"currentPage"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}

func Page[T any](c *gin.Context, data []T, total int64, pageCount, currentPage int) {
	c.JSON(http.StatusOK, PageResponse[T]{
		Data:        data,
		Total:       total,
		PageCount:   pageCount,
		CurrentPage: currentPage,
	})
}

// CSV sends body as a downloadable attachment.
func CSV(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}
