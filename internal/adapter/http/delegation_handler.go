package http

import (
	"net/http"
	"time"

	dg "approvalflow-backend/internal/usecase/delegation"

	"github.com/labstack/echo/v4"
)

type DelegationHandler struct{ uc *dg.Usecase }

func NewDelegationHandler(uc *dg.Usecase) *DelegationHandler { return &DelegationHandler{uc: uc} }

type createDelegationReq struct {
	ToUserID     string    `json:"to_user_id"    validate:"required"`
	WorkflowCode *string   `json:"workflow_code"`
	StartDate    time.Time `json:"start_date"    validate:"required"`
	EndDate      time.Time `json:"end_date"      validate:"required"`
	Reason       string    `json:"reason"`
}

func (h *DelegationHandler) Create(c echo.Context) error {
	userID, _, ok := requireCaller(c)
	if !ok {
		return nil
	}
	var body createDelegationReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), dg.CreateInput{
		FromUserID:   userID,
		ToUserID:     body.ToUserID,
		WorkflowCode: body.WorkflowCode,
		StartDate:    body.StartDate,
		EndDate:      body.EndDate,
		Reason:       body.Reason,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DelegationHandler) ListMine(c echo.Context) error {
	userID, _, ok := requireCaller(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListMine(c.Request().Context(), userID)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// ListActive reports the delegations currently in force for the caller,
// optionally narrowed with ?workflow_code=.
func (h *DelegationHandler) ListActive(c echo.Context) error {
	userID, _, ok := requireCaller(c)
	if !ok {
		return nil
	}
	out, err := h.uc.FindActiveDelegations(c.Request().Context(), userID, c.QueryParam("workflow_code"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DelegationHandler) Deactivate(c echo.Context) error {
	userID, _, ok := requireCaller(c)
	if !ok {
		return nil
	}
	if err := h.uc.Deactivate(c.Request().Context(), c.Param("delegation_id"), userID); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *DelegationHandler) Delete(c echo.Context) error {
	userID, _, ok := requireCaller(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(c.Request().Context(), c.Param("delegation_id"), userID); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CleanupExpired is an operational endpoint; a scheduler hits it
// periodically to switch off delegations past their window.
func (h *DelegationHandler) CleanupExpired(c echo.Context) error {
	n, err := h.uc.CleanupExpired(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"deactivated": n})
}
