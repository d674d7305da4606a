package models

import "time"

type TaskStatus string

const (
	StatusNotCompleted TaskStatus = "not completed"
	StatusCompleted    TaskStatus = "completed"
	StatusMarkAsRead   TaskStatus = "mark as read"
	StatusNeedRevision TaskStatus = "need revision"
)

// TaskStatuses lists every status a task may hold. Any status may be
// replaced by any other one at any time.
var TaskStatuses = []TaskStatus{
	StatusNotCompleted,
	StatusCompleted,
	StatusMarkAsRead,
	StatusNeedRevision,
}

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusNotCompleted, StatusCompleted, StatusMarkAsRead, StatusNeedRevision:
		return true
	}
	return false
}

type TaskCategory string

const (
	CategoryDSA                 TaskCategory = "DSA"
	CategorySystemDesign        TaskCategory = "System Design"
	CategoryWebDev              TaskCategory = "Web Dev"
	CategoryReact               TaskCategory = "React"
	CategoryJavaScript          TaskCategory = "JavaScript"
	CategoryOther               TaskCategory = "Other"
	CategoryArticles            TaskCategory = "Articles"
	CategoryProgrammingLanguage TaskCategory = "Programming Language"
	CategoryVideos              TaskCategory = "Videos"
)

var TaskCategories = []TaskCategory{
	CategoryDSA,
	CategorySystemDesign,
	CategoryWebDev,
	CategoryReact,
	CategoryJavaScript,
	CategoryOther,
	CategoryArticles,
	CategoryProgrammingLanguage,
	CategoryVideos,
}

func (c TaskCategory) Valid() bool {
	for _, category := range TaskCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Task struct {
	ID         string
	Title      string
	Link       string
	Category   TaskCategory
	Status     TaskStatus
	AssignedBy string
	AssignedTo string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
