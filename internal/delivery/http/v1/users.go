package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleListUsers lists the users the caller can assign tasks to, besides
// themselves.
func (h *handlerImpl) HandleListUsers(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	users, err := h.users.ListOtherUsers(c, identity.UserID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list users")
		h.abort(c, newServiceError(err))
		return
	}

	response := make([]userResponse, len(users))
	for i, user := range users {
		response[i] = newUserResponse(user)
	}
	c.JSON(http.StatusOK, response)
}
