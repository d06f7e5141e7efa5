package responses

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"voicehub/control-api/internal/infrastructure/livekit"
	"voicehub/control-api/internal/utils/platformerrors"
)

// HandleError writes an error as an HTTP response. Known sentinel errors
// are mapped to their status; platform errors carry their own type; anything
// else is a plain 500 with the remote error untouched.
func HandleError(c *gin.Context, err error, message string) {
	logger := log.With().Str("path", c.Request.URL.Path).Logger()

	if errors.Is(err, livekit.ErrMissingCredentials) {
		platformerrors.WriteInternalError(c, message)
		return
	}

	platformerrors.WriteError(c, err, logger)
}

// HandleNewError creates and writes a new typed error response.
// Use this for route-level errors like validation failures.
func HandleNewError(c *gin.Context, errorType platformerrors.ErrorType, message string) {
	status := platformerrors.ErrorTypeToHTTPStatus(errorType)
	c.JSON(status, ErrorResponse{
		Error: &ErrorDetail{
			Message: message,
			Type:    errorTypeToString(errorType),
		},
	})
}

func errorTypeToString(t platformerrors.ErrorType) string {
	switch t {
	case platformerrors.ErrorTypeNotFound:
		return "not_found_error"
	case platformerrors.ErrorTypeValidation:
		return "validation_error"
	case platformerrors.ErrorTypeConflict:
		return "conflict_error"
	case platformerrors.ErrorTypeUnauthorized:
		return "unauthorized_error"
	case platformerrors.ErrorTypeExternal:
		return "external_error"
	default:
		return "internal_error"
	}
}
