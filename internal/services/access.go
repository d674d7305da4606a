package services

import "github.com/adanyl0v/study-board/internal/models"

// CanUpdateTask reports whether the caller may change the task's status or notes.
func CanUpdateTask(caller Identity, task *models.Task) bool {
	return caller.UserID != "" && caller.UserID == task.AssignedTo
}

// CanDeleteTask reports whether the caller is the task's assignee or creator.
func CanDeleteTask(caller Identity, task *models.Task) bool {
	return caller.UserID != "" &&
		(caller.UserID == task.AssignedTo || caller.UserID == task.AssignedBy)
}

// CanModifyNote reports whether the caller created the note.
func CanModifyNote(caller Identity, note *models.Note) bool {
	return caller.UserID != "" && caller.UserID == note.CreatedBy
}
