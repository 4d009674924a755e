package http

import (
	"net/http"
	"strconv"

	cm "approvalflow-backend/internal/usecase/comment"

	"github.com/labstack/echo/v4"
)

type CommentHandler struct{ uc *cm.Usecase }

func NewCommentHandler(uc *cm.Usecase) *CommentHandler { return &CommentHandler{uc: uc} }

type createCommentReq struct {
	Content         string  `json:"content" validate:"required"`
	ParentCommentID *uint64 `json:"parent_comment_id"`
}

func (h *CommentHandler) Create(c echo.Context) error {
	userID, userName, ok := requireCaller(c)
	if !ok {
		return nil
	}
	var body createCommentReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), cm.CreateInput{
		RequestID:       c.Param("request_id"),
		UserID:          userID,
		UserName:        userName,
		Content:         body.Content,
		ParentCommentID: body.ParentCommentID,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CommentHandler) Thread(c echo.Context) error {
	out, err := h.uc.Thread(c.Request().Context(), c.Param("request_id"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type updateCommentReq struct {
	Content string `json:"content" validate:"required"`
}

func (h *CommentHandler) Update(c echo.Context) error {
	userID, _, ok := requireCaller(c)
	if !ok {
		return nil
	}
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid comment id"})
	}
	var body updateCommentReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), commentID, userID, body.Content)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *CommentHandler) Delete(c echo.Context) error {
	userID, _, ok := requireCaller(c)
	if !ok {
		return nil
	}
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid comment id"})
	}
	if err := h.uc.Delete(c.Request().Context(), commentID, userID); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
