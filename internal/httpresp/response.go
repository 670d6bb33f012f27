package httpresp

import "github.com/gin-gonic/gin"

// ListResponse é o envelope das listagens: data + total_registros, o shape
// que o dashboard sempre consumiu.
type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total_registros"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

func List[T any](c *gin.Context, data []T) {
	c.JSON(200, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
