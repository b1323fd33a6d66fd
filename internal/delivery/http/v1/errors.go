package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type apiError struct {
	Code    int
	Message string
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, errorResponse{Error: err.Message})
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newInternalServerError(message string) apiError {
	return newAPIError(http.StatusInternalServerError, message)
}

type errorResponse struct {
	Error string `json:"error" example:"invalid task id \"42\""`
}
