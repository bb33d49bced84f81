package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zoombxu/surplus/internal/server/http/dto"
)

// ChatHandler manages transcript endpoints for both roles.
type ChatHandler struct {
	facade ChatFacade
}

// NewChatHandler constructs ChatHandler.
func NewChatHandler(facade ChatFacade) *ChatHandler {
	return &ChatHandler{facade: facade}
}

// List handles GET /api/messages: the customer's own conversation.
func (h *ChatHandler) List(c *gin.Context) {
	claims := CurrentClaims(c)
	h.writeTranscript(c, claims.Subject)
}

// Send handles POST /api/messages.
func (h *ChatHandler) Send(c *gin.Context) {
	claims := CurrentClaims(c)

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	message, err := h.facade.SendMessage(c.Request.Context(), claims, req.Recipient, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromMessage(*message))
}

// Sessions handles GET /api/admin/chats.
func (h *ChatHandler) Sessions(c *gin.Context) {
	sessions, err := h.facade.ChatSessions(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		response = append(response, dto.FromSession(session))
	}
	c.JSON(http.StatusOK, response)
}

// SessionTranscript handles GET /api/admin/chats/:phone/messages.
func (h *ChatHandler) SessionTranscript(c *gin.Context) {
	h.writeTranscript(c, c.Param("phone"))
}

// SessionSend handles POST /api/admin/chats/:phone/messages.
func (h *ChatHandler) SessionSend(c *gin.Context) {
	claims := CurrentClaims(c)

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	message, err := h.facade.SendMessage(c.Request.Context(), claims, c.Param("phone"), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromMessage(*message))
}

func (h *ChatHandler) writeTranscript(c *gin.Context, participant string) {
	messages, err := h.facade.Transcript(c.Request.Context(), participant)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.MessageResponse, 0, len(messages))
	for _, message := range messages {
		response = append(response, dto.FromMessage(message))
	}
	c.JSON(http.StatusOK, response)
}
