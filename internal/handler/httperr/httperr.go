// Package httperr defines the JSON error envelope returned by the API
// and the abort helper the handlers route failures through.
package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape of an error reply. Status is carried for
// the middleware but never serialized.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// AbortWithError writes the error envelope and records the underlying
// cause on the gin context so the logging middleware sees it. msg is
// the client-facing message; the wrapped err stays internal.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
