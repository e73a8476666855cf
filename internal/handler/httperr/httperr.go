package httperr

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

// Response is the body of every handler-level failure:
// {"error":{"message":...},"detail":...}.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func New(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

func Internal() Response {
	return New(http.StatusInternalServerError, internalMessage, nil)
}

// Abort records err on the context as a public gin error carrying r, then
// writes r. The recorded error is what the request log reports.
func (r Response) Abort(c *gin.Context, err error) {
	if err == nil {
		err = errors.New(r.Error.Message)
	}
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: r,
	})
	c.AbortWithStatusJSON(r.Status, r)
}

func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	New(status, msg, detail).Abort(c, err)
}

// AbortRetryLater answers 429 with a Retry-After hint rounded up to whole seconds.
func AbortRetryLater(c *gin.Context, err error, msg string, after time.Duration) {
	secs := int((after + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	c.Header("Retry-After", strconv.Itoa(secs))
	New(http.StatusTooManyRequests, msg, nil).Abort(c, err)
}
