package middleware

import "github.com/gin-gonic/gin"

// actorIDKey is the key used to store the acting identity in the Gin
// context. Using a custom type prevents collisions.
const actorIDKey = contextKey("actorID")

// actorIDHeader names the request header carrying the acting identity for
// audit attribution.
const actorIDHeader = "X-Actor-ID"

// defaultActorID is recorded when a request carries no actor header,
// e.g. startup seeding or unattributed API calls.
const defaultActorID = "system"

// ActorAttribution creates a Gin middleware that captures the acting
// identity from the request headers for audit columns.
func ActorAttribution() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(actorIDHeader)
		if actorID == "" {
			actorID = defaultActorID
		}
		c.Set(string(actorIDKey), actorID)
		c.Next()
	}
}

// GetActorFromContext retrieves the acting identity from the Gin context.
// It falls back to the default actor when the middleware did not run.
func GetActorFromContext(c *gin.Context) string {
	actorVal, exists := c.Get(string(actorIDKey))
	if !exists {
		return defaultActorID
	}
	actorID, ok := actorVal.(string)
	if !ok || actorID == "" {
		return defaultActorID
	}
	return actorID
}
