package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Sameer222006/flatfinder/internal/errors"
	"github.com/Sameer222006/flatfinder/internal/service"
)

// MessageHandler handles messaging endpoints.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendMessageRequest represents a new message payload.
type SendMessageRequest struct {
	ReceiverID uint   `json:"receiverId" validate:"required"`
	PropertyID uint   `json:"propertyId" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

// Send godoc
// @Summary Send a message about a property
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SendMessageRequest true "Message data"
// @Success 201 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	message, err := h.messageService.Send(c.Request().Context(), claims.UserID, req.ReceiverID, req.PropertyID, req.Content)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, message)
}

// Conversations godoc
// @Summary List the caller's conversations, most recent first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ConversationSummary
// @Router /conversations [get]
func (h *MessageHandler) Conversations(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	conversations, err := h.messageService.Conversations(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, conversations)
}

// Thread godoc
// @Summary Fetch a conversation thread and mark received messages read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param userId path int true "Other user ID"
// @Param propertyId path int true "Property ID"
// @Success 200 {array} model.ThreadMessage
// @Router /conversations/{userId}/{propertyId} [get]
func (h *MessageHandler) Thread(c echo.Context) error {
	claims, ok := currentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	otherUserID, err := idParam(c, "userId")
	if err != nil {
		return err
	}
	propertyID, err := idParam(c, "propertyId")
	if err != nil {
		return err
	}

	messages, err := h.messageService.Thread(c.Request().Context(), claims.UserID, otherUserID, propertyID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, messages)
}
