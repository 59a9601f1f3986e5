package api

import (
	"coinwatch/internal/logger"

	"github.com/gin-gonic/gin"
)

type webhookSource struct {
	UserID string `json:"userId"`
}

type webhookEvent struct {
	Source webhookSource `json:"source"`
}

type webhookRequest struct {
	Events []webhookEvent `json:"events"`
}

// webhook receives platform events and registers the sending users as
// subscribers. The platform treats any non-200 as a delivery failure and
// retries, so this endpoint acknowledges unconditionally - registration
// errors are logged and swallowed.
func (m ApiHandler) webhook(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	var requestBody webhookRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		log.Warnw("ignoring malformed webhook body", "error", err)
		c.String(200, "OK")
		return
	}

	for _, event := range requestBody.Events {
		userID := event.Source.UserID
		if userID == "" {
			continue
		}

		created, err := m.SubscriberRepository.Register(m.Db, userID)
		if err != nil {
			log.Errorw("failed to register subscriber", "user", userID, "error", err)
			continue
		}
		if created {
			log.Infow("registered new subscriber", "user", userID)
		}
	}

	c.String(200, "OK")
}
