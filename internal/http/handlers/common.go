package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"laundry/internal/http/response"
	"laundry/internal/pagination"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindJSON parses the body and reports the first failed field with its
// fixed message (one failure at a time, never an aggregate list). The
// messages map is keyed by "Field.tag" first, then bare "Field".
func bindJSON(c *gin.Context, dst any, messages map[string]string) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			response.Error(c, response.BadRequest, msg)
			return false
		}
		if msg, ok := messages[fe.Field()]; ok {
			response.Error(c, response.BadRequest, msg)
			return false
		}
		response.Error(c, response.BadRequest, fe.Error())
		return false
	}

	response.Error(c, response.BadRequest, "request body is not valid")
	return false
}

// idParam parses the numeric path segment; a non-numeric value is a
// malformed parameter, not a missing resource.
func idParam(c *gin.Context, name string) (int64, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		response.Error(c, response.BadRequest, fmt.Sprintf("%s should be of type integer", name))
		return 0, false
	}
	return id, true
}

// intQuery reads an optional integer query parameter; nil means the
// caller omitted it.
func intQuery(c *gin.Context, name string) (*int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		response.Error(c, response.BadRequest, fmt.Sprintf("%s should be of type integer", name))
		return nil, false
	}
	return &n, true
}

// pagingFromQuery normalizes the list query parameters; pagination rule
// violations answer with the Invalid parameter label and the rule's
// fixed message.
func pagingFromQuery(c *gin.Context) (pagination.Request, bool) {
	page, ok := intQuery(c, "page")
	if !ok {
		return pagination.Request{}, false
	}
	size, ok := intQuery(c, "size")
	if !ok {
		return pagination.Request{}, false
	}

	req, err := pagination.Normalize(page, size, c.Query("sortBy"), c.Query("direction"))
	if err != nil {
		response.Error(c, response.InvalidParameter, err.Error())
		return pagination.Request{}, false
	}
	return req, true
}
