package sqlite

import (
	"time"

	"github.com/adanyl0v/study-board/internal/models"
)

type userRow struct {
	ID           string `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"not null;default:''"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (userRow) TableName() string { return "users" }

type taskRow struct {
	ID         string `gorm:"primaryKey"`
	Title      string `gorm:"not null"`
	Link       string `gorm:"not null"`
	Category   string `gorm:"not null"`
	Status     string `gorm:"not null;default:'not completed'"`
	AssignedBy string `gorm:"index;not null"`
	AssignedTo string `gorm:"index;not null"`
	Notes      string `gorm:"not null;default:''"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (taskRow) TableName() string { return "tasks" }

type noteRow struct {
	ID        string `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Content   string `gorm:"not null"`
	Category  string `gorm:"not null;default:'General'"`
	CreatedBy string `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (noteRow) TableName() string { return "notes" }

func newUserRow(user *models.User) userRow {
	return userRow{
		ID:           user.ID,
		Username:     user.Username,
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
	}
}

func (r userRow) toModel() *models.User {
	return &models.User{
		ID:           r.ID,
		Username:     r.Username,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

func newTaskRow(task *models.Task) taskRow {
	return taskRow{
		ID:         task.ID,
		Title:      task.Title,
		Link:       task.Link,
		Category:   string(task.Category),
		Status:     string(task.Status),
		AssignedBy: task.AssignedBy,
		AssignedTo: task.AssignedTo,
		Notes:      task.Notes,
		CreatedAt:  task.CreatedAt,
		UpdatedAt:  task.UpdatedAt,
	}
}

func (r taskRow) toModel() *models.Task {
	return &models.Task{
		ID:         r.ID,
		Title:      r.Title,
		Link:       r.Link,
		Category:   models.TaskCategory(r.Category),
		Status:     models.TaskStatus(r.Status),
		AssignedBy: r.AssignedBy,
		AssignedTo: r.AssignedTo,
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func newNoteRow(note *models.Note) noteRow {
	return noteRow{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		Category:  note.Category,
		CreatedBy: note.CreatedBy,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

func (r noteRow) toModel() *models.Note {
	return &models.Note{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Category:  r.Category,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
