package http

import (
	"encoding/json"
	"net/http"

	domain "approvalflow-backend/internal/domain/workflow"
	wf "approvalflow-backend/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
)

type WorkflowHandler struct{ uc *wf.Usecase }

func NewWorkflowHandler(uc *wf.Usecase) *WorkflowHandler { return &WorkflowHandler{uc: uc} }

type stepReq struct {
	Name              string          `json:"name"               validate:"required"`
	StepOrder         int             `json:"step_order"         validate:"required,min=1"`
	Approvers         []string        `json:"approvers"          validate:"required,min=1"`
	ApproverRoles     []string        `json:"approver_roles"`
	RequiredApprovals int             `json:"required_approvals" validate:"gte=0"`
	TimeoutHours      *int            `json:"timeout_hours"`
	IsOptional        bool            `json:"is_optional"`
	CanDelegate       bool            `json:"can_delegate"`
	Conditions        json.RawMessage `json:"conditions"`
	Config            json.RawMessage `json:"config"`
}

type createWorkflowReq struct {
	Code        string          `json:"code"        validate:"required"`
	Name        string          `json:"name"        validate:"required"`
	Type        string          `json:"type"        validate:"required"`
	Description string          `json:"description"`
	Config      json.RawMessage `json:"config"`
	Steps       []stepReq       `json:"steps"       validate:"dive"`
}

func stepInput(s stepReq) wf.StepInput {
	return wf.StepInput{
		Name:              s.Name,
		StepOrder:         s.StepOrder,
		Approvers:         s.Approvers,
		ApproverRoles:     s.ApproverRoles,
		RequiredApprovals: s.RequiredApprovals,
		TimeoutHours:      s.TimeoutHours,
		IsOptional:        s.IsOptional,
		CanDelegate:       s.CanDelegate,
		Conditions:        s.Conditions,
		Config:            s.Config,
	}
}

func (h *WorkflowHandler) Create(c echo.Context) error {
	var req createWorkflowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	in := wf.CreateInput{
		Code:        req.Code,
		Name:        req.Name,
		Type:        domain.Type(req.Type),
		Description: req.Description,
		Config:      req.Config,
	}
	for _, s := range req.Steps {
		in.Steps = append(in.Steps, stepInput(s))
	}
	dto, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *WorkflowHandler) Get(c echo.Context) error {
	dto, err := h.uc.GetByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WorkflowHandler) List(c echo.Context) error {
	out, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type updateWorkflowReq struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Config      json.RawMessage `json:"config"`
}

func (h *WorkflowHandler) Update(c echo.Context) error {
	var req updateWorkflowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Update(c.Request().Context(), c.Param("code"), wf.UpdateInput(req))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WorkflowHandler) Delete(c echo.Context) error {
	if err := h.uc.SoftDelete(c.Request().Context(), c.Param("code")); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *WorkflowHandler) AddStep(c echo.Context) error {
	var req stepReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.AddStep(c.Request().Context(), c.Param("code"), stepInput(req))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type reorderReq struct {
	Items []wf.ReorderItem `json:"items" validate:"required,min=1,dive"`
}

func (h *WorkflowHandler) ReorderSteps(c echo.Context) error {
	var req reorderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.ReorderSteps(c.Request().Context(), c.Param("code"), req.Items); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *WorkflowHandler) ValidateSteps(c echo.Context) error {
	ok, err := h.uc.ValidateWorkflowSteps(c.Request().Context(), c.Param("code"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"valid": ok})
}
