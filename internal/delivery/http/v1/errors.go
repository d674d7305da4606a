package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/study-board/internal/services"
)

var (
	errInvalidRequestBody = errors.New("invalid request body")
	errNullField          = errors.New("field must not be null")
	errTrailingData       = errors.New("unexpected data after json object")
)

const (
	kindBadRequest         = "BadRequest"
	kindInvalidCredentials = "InvalidCredentials"
	kindUnauthenticated    = "Unauthenticated"
	kindForbidden          = "Forbidden"
	kindNotFound           = "NotFound"
	kindValidation         = "Validation"
	kindStoreFailure       = "StoreFailure"
)

// apiError is an error response. The message is looked up by MessageID in
// the caller's language when the response is written.
type apiError struct {
	Code      int
	Kind      string
	MessageID string
}

func newAPIError(code int, kind, messageID string) apiError {
	return apiError{
		Code:      code,
		Kind:      kind,
		MessageID: messageID,
	}
}

func (e apiError) Error() string {
	return e.Kind + ": " + e.MessageID
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *handlerImpl) abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, errorResponse{
		Error:   err.Kind,
		Message: h.translator.Localize(err.MessageID, getLanguage(c)),
	})
}

func newBadRequestError() apiError {
	return newAPIError(http.StatusBadRequest, kindBadRequest, "badRequest")
}

func newInternalError() apiError {
	return newAPIError(http.StatusInternalServerError, kindStoreFailure, "internal")
}

// newServiceError maps a service error to its response. Anything it does
// not recognise is reported as a store failure.
func newServiceError(err error) apiError {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return newAPIError(http.StatusBadRequest, kindInvalidCredentials, "invalidCredentials")

	case errors.Is(err, services.ErrAssertionExpired):
		return newAPIError(http.StatusUnauthorized, kindUnauthenticated, "tokenExpired")
	case errors.Is(err, services.ErrInvalidAssertion):
		return newAPIError(http.StatusUnauthorized, kindUnauthenticated, "invalidToken")
	case errors.Is(err, services.ErrUnauthenticated):
		return newAPIError(http.StatusUnauthorized, kindUnauthenticated, "unauthenticated")

	case errors.Is(err, services.ErrForbidden):
		return newAPIError(http.StatusForbidden, kindForbidden, "forbidden")

	case errors.Is(err, services.ErrTaskNotFound):
		return newAPIError(http.StatusNotFound, kindNotFound, "taskNotFound")
	case errors.Is(err, services.ErrNoteNotFound):
		return newAPIError(http.StatusNotFound, kindNotFound, "noteNotFound")
	case errors.Is(err, services.ErrUserNotFound):
		return newAPIError(http.StatusNotFound, kindNotFound, "userNotFound")

	case errors.Is(err, services.ErrInvalidCategory):
		return newAPIError(http.StatusBadRequest, kindValidation, "invalidCategory")
	case errors.Is(err, services.ErrInvalidStatus):
		return newAPIError(http.StatusBadRequest, kindValidation, "invalidStatus")
	case errors.Is(err, services.ErrAssigneeNotFound):
		return newAPIError(http.StatusBadRequest, kindValidation, "assigneeNotFound")
	case errors.Is(err, services.ErrEmptyField):
		return newAPIError(http.StatusBadRequest, kindValidation, "emptyField")
	case errors.Is(err, services.ErrValidation):
		return newAPIError(http.StatusBadRequest, kindValidation, "validationFailed")

	default:
		return newInternalError()
	}
}
