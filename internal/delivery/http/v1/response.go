package v1

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adanyl0v/study-board/internal/models"
)

type userRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResponse(user *models.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

type taskResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Link       string    `json:"link"`
	Category   string    `json:"category"`
	Status     string    `json:"status"`
	AssignedBy userRef   `json:"assignedBy"`
	AssignedTo userRef   `json:"assignedTo"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type noteResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedBy userRef   `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// userDirectory resolves user IDs to the references embedded in task and
// note responses.
type userDirectory map[string]userRef

func (d userDirectory) ref(id string) userRef {
	if ref, ok := d[id]; ok {
		return ref
	}
	return userRef{ID: id}
}

func (d userDirectory) task(task *models.Task) taskResponse {
	return taskResponse{
		ID:         task.ID,
		Title:      task.Title,
		Link:       task.Link,
		Category:   string(task.Category),
		Status:     string(task.Status),
		AssignedBy: d.ref(task.AssignedBy),
		AssignedTo: d.ref(task.AssignedTo),
		Notes:      task.Notes,
		CreatedAt:  task.CreatedAt,
		UpdatedAt:  task.UpdatedAt,
	}
}

func (d userDirectory) tasks(tasks []*models.Task) []taskResponse {
	response := make([]taskResponse, len(tasks))
	for i, task := range tasks {
		response[i] = d.task(task)
	}
	return response
}

func (d userDirectory) note(note *models.Note) noteResponse {
	return noteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Category:  note.Category,
		CreatedBy: d.ref(note.CreatedBy),
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func (d userDirectory) notes(notes []*models.Note) []noteResponse {
	response := make([]noteResponse, len(notes))
	for i, note := range notes {
		response[i] = d.note(note)
	}
	return response
}

// userDirectory loads every user. It aborts the request and returns false
// on failure.
func (h *handlerImpl) userDirectory(c *gin.Context) (userDirectory, bool) {
	users, err := h.users.ListUsers(c)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to list users")
		h.abort(c, newServiceError(err))
		return nil, false
	}

	directory := make(userDirectory, len(users))
	for _, user := range users {
		directory[user.ID] = userRef{
			ID:       user.ID,
			Username: user.Username,
			Name:     user.Name,
		}
	}
	return directory, true
}
