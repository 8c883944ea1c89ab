package handlers

import (
	"entries-api/internal/middleware"
	"entries-api/pkg/lambda"

	"github.com/gin-gonic/gin"
)

// GinHandler exposes a Handler on a gin route. The ":id" route parameter,
// when the route declares one, becomes the "id" path parameter
func GinHandler(h Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := &lambda.Request{
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			RequestID: c.GetString(middleware.RequestIDKey),
		}
		if id, ok := c.Params.Get(lambda.PathParamID); ok {
			req.PathParams = map[string]string{lambda.PathParamID: id}
		}

		resp := h.Handle(c.Request.Context(), req)

		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		c.Data(resp.StatusCode, "text/plain; charset=utf-8", []byte(resp.Body))
	}
}
