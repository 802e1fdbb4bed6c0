package handlers

import (
	"net/http"

	"victory-pos/internal/ai"
	"victory-pos/internal/middleware"

	"github.com/gin-gonic/gin"
)

type AskRequest struct {
	Message string `json:"message" binding:"required"`
}

// Ask streams the assistant's answer as server-sent events. Fragments arrive
// as "message" events; the request ends with exactly one "done" or one
// "error" event. Closing the connection cancels the upstream stream through
// the request context.
func (a *API) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	err := a.Assistant.Ask(c.Request.Context(), req.Message, a.Store.Snapshot(), middleware.Role(c), func(fragment string) {
		c.SSEvent("message", fragment)
		c.Writer.Flush()
	})
	if err != nil {
		c.SSEvent("error", ai.UserMessage(err))
		c.Writer.Flush()
		return
	}

	c.SSEvent("done", "")
	c.Writer.Flush()
}
