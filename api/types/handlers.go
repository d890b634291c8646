package types

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/killallgit/rofind-api/pkg/errors"
	"github.com/killallgit/rofind-api/pkg/log"
)

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Error:   string(apperrors.ErrCodeInvalidInput),
			Details: err.Error(),
		})
		return false
	}
	return true
}

// QueryInt parses an optional integer query parameter.
// A missing parameter yields def; an unparsable one sends 400 and returns false.
func QueryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		SendBadRequest(c, "Invalid "+name+": must be an integer")
		return 0, false
	}
	return value, true
}

// QueryOptionalInt parses an integer query parameter that may be absent
func QueryOptionalInt(c *gin.Context, name string) (*int, bool) {
	if strings.TrimSpace(c.Query(name)) == "" {
		return nil, true
	}
	value, ok := QueryInt(c, name, 0)
	if !ok {
		return nil, false
	}
	return &value, true
}

// QueryList splits a comma separated query parameter and also accepts repeated keys
func QueryList(c *gin.Context, name string) []string {
	var out []string
	for _, raw := range c.QueryArray(name) {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// LimitParam reads ?limit= bounded to [1, MaxListLimit]. 0 means "use the default".
func LimitParam(c *gin.Context) (int, bool) {
	limit, ok := QueryInt(c, "limit", 0)
	if !ok {
		return 0, false
	}
	if limit < 0 || limit > MaxListLimit {
		SendBadRequest(c, "limit must be between 1 and "+strconv.Itoa(MaxListLimit))
		return 0, false
	}
	return limit, true
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.ErrCodeValidation),
	})
}

// SendError maps err to its HTTP status and logs it
func SendError(c *gin.Context, message string, err error) {
	status := apperrors.GetHTTPCode(err)

	l := log.Ctx(c.Request.Context())
	l.Error().Err(err).Int(log.FieldStatus, status).Msg(message)

	c.JSON(status, ErrorResponse{
		Status:  StatusError,
		Message: message,
		Error:   string(apperrors.GetCode(err)),
	})
}

// OK builds a success envelope
func OK(message string) BaseResponse {
	return BaseResponse{Status: StatusOK, Message: message}
}
