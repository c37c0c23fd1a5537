package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform envelope wrapped around every response body.
type APIResponse struct {
	Success bool        `json:"success"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

type APIErrorParams struct {
	Msg string
	Err error
}

type APISuccessParams struct {
	Msg  string
	Data interface{}
}

// errorResponse builds the failure envelope. The human-readable Msg goes out
// in the error field; the underlying Err stays server-side (security log).
func errorResponse(params APIErrorParams) APIResponse {
	return APIResponse{
		Success: false,
		Error:   params.Msg,
	}
}

// CallErrorNotFound is for return API response not found
func CallErrorNotFound(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusNotFound, errorResponse(params))
}

// CallUserError is for return error from user side
func CallUserError(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusBadRequest, errorResponse(params))
}

// CallValidationError returns a 400 with per-field validation details.
func CallValidationError(c *gin.Context, details []FieldError) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Error:   "Validation failed",
		Details: details,
	})
}

// CallConflict is for return API response conflict (unique constraint violated)
func CallConflict(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusConflict, errorResponse(params))
}

// CallServerError is for return API response server error. The concrete error
// is logged as a security event and never included in the response body.
func CallServerError(c *gin.Context, params APIErrorParams) {
	LogServerError(c.ClientIP(), c.Request.URL.Path, params.Err)
	c.JSON(http.StatusInternalServerError, APIResponse{
		Success: false,
		Error:   "Internal server error",
	})
}

// CallSuccessOK is for return API response with status code 200, you need to specify msg, and data as function parameter
func CallSuccessOK(c *gin.Context, params APISuccessParams) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: params.Msg,
		Data:    params.Data,
	})
}

// CallSuccessList is like CallSuccessOK but includes the result count in the envelope.
func CallSuccessList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Count:   &count,
		Data:    data,
	})
}

// CallCreated is for return API response with status code 201 after a resource was created
func CallCreated(c *gin.Context, params APISuccessParams) {
	c.JSON(http.StatusCreated, APIResponse{
		Success: true,
		Message: params.Msg,
		Data:    params.Data,
	})
}

// CallUserNotAuthorized is for return API response with status code 401
func CallUserNotAuthorized(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusUnauthorized, errorResponse(params))
}

// CallTooManyRequests is for return API response with status code 429 when the rate limit is exceeded
func CallTooManyRequests(c *gin.Context, params APIErrorParams) {
	c.JSON(http.StatusTooManyRequests, errorResponse(params))
}
