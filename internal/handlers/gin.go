package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"ark-lookup-api/internal/middleware"
	"ark-lookup-api/pkg/lambda"
)

// maxBodySize bounds the body copied into a Request. Lookups are GETs.
const maxBodySize = 64 << 10

// GinHandler serves a RequestHandler on a gin route. The route's path
// parameters become the request's path parameters.
func GinHandler(h RequestHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := h.Handle(c.Request.Context(), RequestFromGin(c))

		contentType := ""
		for name, value := range resp.Headers {
			if http.CanonicalHeaderKey(name) == "Content-Type" {
				contentType = value
				continue
			}
			c.Header(name, value)
		}
		c.Data(resp.StatusCode, contentType, resp.Body)
	}
}

// RequestFromGin converts a gin request into a Request
func RequestFromGin(c *gin.Context) *lambda.Request {
	req := &lambda.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     make(map[string]string, len(c.Request.Header)),
		QueryParams: make(map[string]string),
		PathParams:  make(map[string]string, len(c.Params)),
	}

	for name, values := range c.Request.Header {
		if len(values) > 0 {
			req.Headers[name] = values[0]
		}
	}
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		req.Headers[RequestHeaderID] = id
	}

	for name, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			req.QueryParams[name] = values[0]
		}
	}

	for _, p := range c.Params {
		req.PathParams[p.Key] = p.Value
	}

	if c.Request.Body != nil {
		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize))
		if err == nil && len(body) > 0 {
			req.Body = body
		}
	}

	return req
}
