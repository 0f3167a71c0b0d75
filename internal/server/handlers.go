package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"amy/internal/command"
	"amy/internal/session"
)

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Status:  "ok",
		Service: "Amy AI Backend",
		Version: serviceVersion,
		Mode:    s.mode,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: "healthy", Mode: s.mode})
}

func (s *Server) handleComponents(c *gin.Context) {
	c.JSON(http.StatusOK, s.deps.Registry.All())
}

// handleChat runs the full pipeline: snapshot in, resolve, normalize,
// assemble, reply out. Backend failures never surface here; the resolver
// already degraded to the matcher.
func (s *Server) handleChat(c *gin.Context) {
	start := time.Now()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "message is required"})
		return
	}

	sessionID := c.DefaultQuery("session_id", "default")

	// Caller-supplied history wins; otherwise consult the server-side store.
	history := req.ConversationHistory
	usingStore := history == nil
	if usingStore {
		history = s.deps.Store.Get(sessionID)
	}

	var reply string
	var raws []command.Raw
	if s.deps.Resolver != nil {
		reply, raws = s.deps.Resolver.Resolve(c.Request.Context(), req.Message, req.LayoutState, req.UserContext, history)
	} else {
		text, cmds := s.deps.Matcher.Match(req.Message, req.LayoutState)
		reply, raws = text, command.FromCommands(cmds)
	}

	resp := command.Assemble(reply, s.deps.Normalizer.Normalize(raws))

	if usingStore {
		s.deps.Store.Append(sessionID,
			session.Turn{Role: session.RoleUser, Content: req.Message},
			session.Turn{Role: session.RoleAssistant, Content: resp.Message},
		)
	}

	if s.deps.Metrics != nil {
		s.deps.Metrics.ChatRequests.WithLabelValues(s.mode).Inc()
		s.deps.Metrics.RequestDuration.Observe(time.Since(start).Seconds())
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleReset(c *gin.Context) {
	sessionID := c.DefaultQuery("session_id", "default")
	s.deps.Store.Reset(sessionID)
	c.JSON(http.StatusOK, StatusResponse{Status: "ok", Message: "Session reset"})
}
