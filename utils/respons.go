package utils

import "github.com/gin-gonic/gin"

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondAppError maps a service error to its HTTP status. Anything that is
// not an AppError is an unexpected store failure: log it, answer 500.
func RespondAppError(c *gin.Context, err error) {
	if ae, ok := AsAppError(err); ok {
		RespondError(c, ae.Code, ae)
		return
	}
	ErrorLogger.Printf("internal error: %v", err)
	RespondError(c, 500, ErrInternal)
}
