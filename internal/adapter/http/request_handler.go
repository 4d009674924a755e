package http

import (
	"encoding/json"
	"net/http"
	"time"

	reqdomain "approvalflow-backend/internal/domain/request"
	req "approvalflow-backend/internal/usecase/request"

	"github.com/labstack/echo/v4"
)

type RequestHandler struct{ uc *req.Usecase }

func NewRequestHandler(uc *req.Usecase) *RequestHandler { return &RequestHandler{uc: uc} }

type createRequestReq struct {
	WorkflowCode string          `json:"workflow_code" validate:"required"`
	Title        string          `json:"title"         validate:"required"`
	Description  string          `json:"description"`
	EntityType   string          `json:"entity_type"   validate:"required"`
	EntityID     string          `json:"entity_id"     validate:"required"`
	EntityData   json.RawMessage `json:"entity_data"`
	Priority     string          `json:"priority"      validate:"priority"`
	DueDate      *time.Time      `json:"due_date"`
}

func (h *RequestHandler) Create(c echo.Context) error {
	userID, _, ok := requireCaller(c)
	if !ok {
		return nil
	}
	var body createRequestReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), req.CreateInput{
		WorkflowCode: body.WorkflowCode,
		RequesterID:  userID,
		Title:        body.Title,
		Description:  body.Description,
		EntityType:   body.EntityType,
		EntityID:     body.EntityID,
		EntityData:   body.EntityData,
		Priority:     body.Priority,
		DueDate:      body.DueDate,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RequestHandler) Get(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type actionReq struct {
	Action   string `json:"action"   validate:"required,decision"`
	Comments string `json:"comments"`
}

func (h *RequestHandler) TakeAction(c echo.Context) error {
	userID, userName, ok := requireCaller(c)
	if !ok {
		return nil
	}
	var body actionReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.TakeAction(c.Request().Context(), c.Param("request_id"), req.ActionInput{
		ApproverID:   userID,
		ApproverName: userName,
		Decision:     reqdomain.Decision(body.Action),
		Comments:     body.Comments,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type withdrawReq struct {
	Reason string `json:"reason"`
}

func (h *RequestHandler) Withdraw(c echo.Context) error {
	userID, _, ok := requireCaller(c)
	if !ok {
		return nil
	}
	var body withdrawReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	dto, err := h.uc.Withdraw(c.Request().Context(), c.Param("request_id"), userID, body.Reason)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RequestHandler) List(c echo.Context) error {
	page, err := h.uc.Find(c.Request().Context(), parseFilter(c))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *RequestHandler) ListMine(c echo.Context) error {
	userID, _, ok := requireCaller(c)
	if !ok {
		return nil
	}
	page, err := h.uc.MyRequests(c.Request().Context(), userID, parseFilter(c))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

func (h *RequestHandler) ListPending(c echo.Context) error {
	userID, _, ok := requireCaller(c)
	if !ok {
		return nil
	}
	page, err := h.uc.PendingFor(c.Request().Context(), userID, parseFilter(c))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, page)
}
