package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nexuscrm/formbridge/internal/interfaces/middleware"
	"github.com/nexuscrm/formbridge/pkg/constants"
	"github.com/nexuscrm/formbridge/pkg/errors"
)

// RespondAppError sends the failure envelope {success:false, error}.
// Application failures travel in the payload with HTTP 200.
func RespondAppError(c *gin.Context, log *zap.Logger, err error) {
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("code", errors.GetErrorCode(err)),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	}
	switch {
	case errors.IsValidation(err), errors.IsNotFound(err):
		log.Info("request rejected", fields...)
	case errors.IsUpstream(err):
		log.Warn("backend call failed", fields...)
	default:
		log.Error("request failed", fields...)
	}

	c.JSON(http.StatusOK, gin.H{
		constants.ResponseSuccess: false,
		constants.ResponseError:   err.Error(),
	})
}

// RespondSuccess sends {success:true, ...body}
func RespondSuccess(c *gin.Context, body gin.H) {
	response := gin.H{constants.ResponseSuccess: true}
	for k, v := range body {
		response[k] = v
	}
	c.JSON(http.StatusOK, response)
}

// HandleGetEnvelope executes a read action and returns the result wrapped in a JSON key
// Response: { success: true, [key]: result }
func HandleGetEnvelope(c *gin.Context, log *zap.Logger, key string, action func() (interface{}, error)) {
	result, err := action()
	if err != nil {
		RespondAppError(c, log, err)
		return
	}
	RespondSuccess(c, gin.H{key: result})
}

// NotFound is the NoRoute handler
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		constants.ResponseSuccess: false,
		constants.ResponseError:   constants.ResponseNotFound,
	})
}
