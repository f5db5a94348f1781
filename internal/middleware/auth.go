package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const AgentIDKey = "agent_id"

// ValidateAgent is a stubbed identification middleware that extracts the
// orchestrating agent's ID from the X-Agent-ID header
func ValidateAgent() gin.HandlerFunc {
	return func(c *gin.Context) {
		agentID := c.GetHeader("X-Agent-ID")
		if agentID == "" {
			c.Next()
			return
		}

		c.Set(AgentIDKey, agentID)
		c.Next()
	}
}

// GetAgentID retrieves the agent ID from the context
func GetAgentID(c *gin.Context) (string, bool) {
	agentID, exists := c.Get(AgentIDKey)
	if !exists {
		return "", false
	}
	return agentID.(string), true
}

// RequireAgent ensures the caller identified itself as an orchestrating agent
func RequireAgent() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := GetAgentID(c); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "agent identification required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
