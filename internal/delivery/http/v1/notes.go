package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/study-board/internal/services"
)

type createNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category,omitempty"`
}

func (h *handlerImpl) HandleCreateNote(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req createNoteRequest
	err := bindStrictJSON(c, &req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		h.abort(c, newBadRequestError())
		return
	}

	note, err := h.notes.CreateNote(c, identity, services.CreateNoteParams{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		h.abort(c, newServiceError(err))
		return
	}

	directory, ok := h.userDirectory(c)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, directory.note(note))
}

func (h *handlerImpl) HandleListNotes(c *gin.Context) {
	if _, ok := h.requireIdentity(c); !ok {
		return
	}

	notes, err := h.notes.ListNotes(c)
	if err != nil {
		h.abort(c, newServiceError(err))
		return
	}

	directory, ok := h.userDirectory(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, directory.notes(notes))
}

type updateNoteRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
}

func (h *handlerImpl) HandleUpdateNote(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req updateNoteRequest
	err := bindPatchJSON(c, &req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		h.abort(c, newBadRequestError())
		return
	}

	note, err := h.notes.UpdateNote(c, identity, services.UpdateNoteParams{
		ID:       c.Param("id"),
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		h.abort(c, newServiceError(err))
		return
	}

	directory, ok := h.userDirectory(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, directory.note(note))
}

func (h *handlerImpl) HandleDeleteNote(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	err := h.notes.DeleteNote(c, identity, c.Param("id"))
	if err != nil {
		h.abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		Message: h.translator.Localize("noteDeleted", getLanguage(c)),
	})
}
