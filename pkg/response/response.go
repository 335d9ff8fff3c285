package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// ErrorBody is the error member of a failed response.
type ErrorBody struct {
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now().UTC(),
		RequestID: ctx.GetString(RequestIDKey),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	}
}

func Error[T any](ctx *gin.Context, status int, message string, err interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now().UTC(),
		RequestID: ctx.GetString(RequestIDKey),
		Success:   false,
		Message:   message,
		Error:     err,
	}
}

// OK writes a successful envelope.
func OK[T any](ctx *gin.Context, status int, data T, message string) {
	resp := Success(ctx, status, data, message, nil)
	ctx.JSON(resp.Status, resp)
}

// Fail writes a failed envelope and stops the handler chain.
func Fail(ctx *gin.Context, status int, message string, body *ErrorBody) {
	resp := Error[any](ctx, status, message, body)
	ctx.AbortWithStatusJSON(resp.Status, resp)
}
