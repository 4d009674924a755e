package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"approvalflow-backend/internal/domain/apperr"
	reqdomain "approvalflow-backend/internal/domain/request"

	"github.com/labstack/echo/v4"
)

// writeErr maps the domain error taxonomy to HTTP statuses.
func writeErr(c echo.Context, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperr.KindValidation:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperr.KindForbidden:
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	case apperr.KindConflict:
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// caller reads the identity the calling layer supplies. The engine never
// authenticates; it only matches ownership/assignment against these.
func caller(c echo.Context) (userID, userName string) {
	userID = strings.TrimSpace(c.Request().Header.Get("Ax-User-Id"))
	userName = strings.TrimSpace(c.Request().Header.Get("Ax-User-Name"))
	return
}

// requireCaller writes a 400 and reports ok=false when the identity
// header is absent.
func requireCaller(c echo.Context) (userID, userName string, ok bool) {
	userID, userName = caller(c)
	if userID == "" {
		_ = c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing Ax-User-Id"})
		return "", "", false
	}
	return userID, userName, true
}

func parseFilter(c echo.Context) reqdomain.Filter {
	f := reqdomain.Filter{
		Status:       reqdomain.Status(c.QueryParam("status")),
		Priority:     c.QueryParam("priority"),
		EntityType:   c.QueryParam("entity_type"),
		RequesterID:  c.QueryParam("requester_id"),
		WorkflowCode: c.QueryParam("workflow_code"),
		Search:       c.QueryParam("search"),
		SortBy:       c.QueryParam("sort_by"),
		SortDir:      c.QueryParam("sort_dir"),
	}
	if n, err := strconv.Atoi(c.QueryParam("page")); err == nil {
		f.Page = n
	}
	if n, err := strconv.Atoi(c.QueryParam("limit")); err == nil {
		f.Limit = n
	}
	if t, err := time.Parse(time.RFC3339, c.QueryParam("date_from")); err == nil {
		f.DateFrom = &t
	}
	if t, err := time.Parse(time.RFC3339, c.QueryParam("date_to")); err == nil {
		f.DateTo = &t
	}
	return f
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
