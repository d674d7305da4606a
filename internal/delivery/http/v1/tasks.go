package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/study-board/internal/models"
	"github.com/adanyl0v/study-board/internal/services"
)

type createTaskRequest struct {
	Title      string  `json:"title"`
	Link       string  `json:"link"`
	Category   string  `json:"category"`
	AssignedTo string  `json:"assignedTo"`
	Notes      *string `json:"notes,omitempty"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req createTaskRequest
	err := bindStrictJSON(c, &req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		h.abort(c, newBadRequestError())
		return
	}

	task, err := h.tasks.CreateTask(c, identity, services.CreateTaskParams{
		Title:      req.Title,
		Link:       req.Link,
		Category:   models.TaskCategory(req.Category),
		AssignedTo: req.AssignedTo,
		Notes:      req.Notes,
	})
	if err != nil {
		h.abort(c, newServiceError(err))
		return
	}

	directory, ok := h.userDirectory(c)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, directory.task(task))
}

func (h *handlerImpl) HandleListMyTasks(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListAssignedTo(c, identity.UserID)
	if err != nil {
		h.abort(c, newServiceError(err))
		return
	}

	directory, ok := h.userDirectory(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, directory.tasks(tasks))
}

func (h *handlerImpl) HandleListAssignedByMe(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.ListAssignedBy(c, identity.UserID)
	if err != nil {
		h.abort(c, newServiceError(err))
		return
	}

	directory, ok := h.userDirectory(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, directory.tasks(tasks))
}

type updateTaskRequest struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	err := bindPatchJSON(c, &req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		h.abort(c, newBadRequestError())
		return
	}

	params := services.UpdateTaskParams{
		ID:    c.Param("id"),
		Notes: req.Notes,
	}
	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		params.Status = &status
	}

	task, err := h.tasks.UpdateTask(c, identity, params)
	if err != nil {
		h.abort(c, newServiceError(err))
		return
	}

	directory, ok := h.userDirectory(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, directory.task(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	identity, ok := h.requireIdentity(c)
	if !ok {
		return
	}

	err := h.tasks.DeleteTask(c, identity, c.Param("id"))
	if err != nil {
		h.abort(c, newServiceError(err))
		return
	}

	c.JSON(http.StatusOK, messageResponse{
		Message: h.translator.Localize("taskDeleted", getLanguage(c)),
	})
}
