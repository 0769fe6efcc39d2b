package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vibecommerce/storefront/internal/assistant"
)

// ChatHandler runs one shopping-assistant turn per request.
type ChatHandler struct {
	Assistant *assistant.Assistant
}

func NewChatHandler(a *assistant.Assistant) *ChatHandler {
	return &ChatHandler{Assistant: a}
}

type chatReq struct {
	Message string `json:"message"`
}

type chatResp struct {
	Reply    string `json:"reply"`
	Navigate string `json:"navigate,omitempty"`
}

// Chat handles POST /chat. The assistant never propagates oracle failures;
// the worst case is a fallback reply with no navigation directive.
func (h *ChatHandler) Chat(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "message is required"})
	}

	reply := h.Assistant.Respond(c.Request().Context(), req.Message)
	return c.JSON(http.StatusOK, chatResp{Reply: reply.Utterance, Navigate: reply.Navigate})
}
