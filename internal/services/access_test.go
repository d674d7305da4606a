package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adanyl0v/study-board/internal/models"
)

func TestTaskPredicates(t *testing.T) {
	task := &models.Task{ID: "t1", AssignedBy: "creator", AssignedTo: "assignee"}

	tests := []struct {
		name      string
		caller    Identity
		canUpdate bool
		canDelete bool
	}{
		{"assignee", Identity{UserID: "assignee"}, true, true},
		{"creator", Identity{UserID: "creator"}, false, true},
		{"stranger", Identity{UserID: "stranger"}, false, false},
		{"anonymous", Identity{}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canUpdate, CanUpdateTask(tt.caller, task))
			assert.Equal(t, tt.canDelete, CanDeleteTask(tt.caller, task))
		})
	}
}

func TestTaskPredicates_SelfAssigned(t *testing.T) {
	task := &models.Task{ID: "t1", AssignedBy: "u1", AssignedTo: "u1"}
	caller := Identity{UserID: "u1"}

	assert.True(t, CanUpdateTask(caller, task))
	assert.True(t, CanDeleteTask(caller, task))
	assert.False(t, CanUpdateTask(Identity{UserID: "u2"}, task))
}

func TestCanModifyNote(t *testing.T) {
	note := &models.Note{ID: "n1", CreatedBy: "author"}

	assert.True(t, CanModifyNote(Identity{UserID: "author"}, note))
	assert.False(t, CanModifyNote(Identity{UserID: "reader"}, note))
	assert.False(t, CanModifyNote(Identity{}, note))
}
