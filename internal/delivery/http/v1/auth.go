package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      userResponse `json:"user"`
}

func (h *handlerImpl) HandleLogin(c *gin.Context) {
	var req loginRequest
	err := bindStrictJSON(c, &req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		h.abort(c, newBadRequestError())
		return
	}

	result, err := h.auth.Authenticate(c, req.Username, req.Password)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("username", req.Username).
			Msg("failed to login")
		h.abort(c, newServiceError(err))
		return
	}

	h.logger.Info().
		Str("user_id", result.User.ID).
		Msg("logged in")
	c.JSON(http.StatusOK, loginResponse{
		Token:     result.Assertion,
		ExpiresAt: result.ExpiresAt,
		User:      newUserResponse(result.User),
	})
}

func (h *handlerImpl) HandleMe(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	user, err := h.users.GetUser(c, identity.UserID)
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("user_id", identity.UserID).
			Msg("failed to get current user")
		h.abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
