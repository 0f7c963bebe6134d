package httperr

import (
	"net/http"

	"hotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	Detail     any    `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	return Response{
		Success:    false,
		StatusCode: status,
		Error:      http.StatusText(status),
		Message:    msg,
		Detail:     detail,
	}
}

// preserves original error for the logging middleware; only msg reaches the client
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := NewResponse(status, msg, detail)

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
