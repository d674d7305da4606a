package sqlite

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/adanyl0v/study-board/internal/models"
	"github.com/adanyl0v/study-board/internal/repository"
)

type StoreSuite struct {
	suite.Suite

	store *Store
	ctx   context.Context
	alice *models.User
	bob   *models.User
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(s.T().Name(), "/", "_"))
	db, err := Open(dsn, zerolog.Nop())
	s.Require().NoError(err)

	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	s.store = NewStore(db)
	s.ctx = context.Background()

	now := time.Now().UTC()
	s.alice = &models.User{ID: "u-alice", Username: "alice", Name: "Alice", PasswordHash: "h", CreatedAt: now}
	s.bob = &models.User{ID: "u-bob", Username: "bob", Name: "Bob", PasswordHash: "h", CreatedAt: now}
	s.Require().NoError(s.store.Users.CreateMany(s.ctx, []*models.User{s.alice, s.bob}))
}

func (s *StoreSuite) TearDownTest() {
	s.Require().NoError(s.store.Close())
}

func (s *StoreSuite) newTask(id, by, to string, createdAt time.Time) *models.Task {
	task := &models.Task{
		ID:         id,
		Title:      "task " + id,
		Link:       "https://example.com/" + id,
		Category:   models.CategoryDSA,
		Status:     models.StatusNotCompleted,
		AssignedBy: by,
		AssignedTo: to,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	s.Require().NoError(s.store.Tasks.Create(s.ctx, task))
	return task
}

func (s *StoreSuite) TestUsers() {
	count, err := s.store.Users.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(2), count)

	user, err := s.store.Users.GetByUsername(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal(s.bob.ID, user.ID)

	_, err = s.store.Users.GetByID(s.ctx, "missing")
	s.ErrorIs(err, repository.ErrNotFound)

	users, err := s.store.Users.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("alice", users[0].Username)
}

func (s *StoreSuite) TestUsers_DuplicateUsername() {
	dup := &models.User{ID: "u-other", Username: "alice", Name: "Other", PasswordHash: "h", CreatedAt: time.Now()}
	err := s.store.Users.CreateMany(s.ctx, []*models.User{dup})
	s.ErrorIs(err, repository.ErrAlreadyExists)
}

func (s *StoreSuite) TestTasks_ListOrderAndFilter() {
	base := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s.newTask("t1", s.alice.ID, s.bob.ID, base)
	s.newTask("t2", s.alice.ID, s.bob.ID, base.Add(time.Hour))
	s.newTask("t3", s.bob.ID, s.alice.ID, base.Add(2*time.Hour))

	toBob, err := s.store.Tasks.ListByAssignee(s.ctx, s.bob.ID)
	s.Require().NoError(err)
	s.Require().Len(toBob, 2)
	s.Equal("t2", toBob[0].ID)
	s.Equal("t1", toBob[1].ID)

	byAlice, err := s.store.Tasks.ListByAssigner(s.ctx, s.alice.ID)
	s.Require().NoError(err)
	s.Len(byAlice, 2)

	toAlice, err := s.store.Tasks.ListByAssignee(s.ctx, s.alice.ID)
	s.Require().NoError(err)
	s.Require().Len(toAlice, 1)
	s.Equal("t3", toAlice[0].ID)

	none, err := s.store.Tasks.ListByAssignee(s.ctx, "nobody")
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *StoreSuite) TestTasks_PartialUpdate() {
	created := s.newTask("t1", s.alice.ID, s.bob.ID, time.Now().UTC())

	notes := "halfway"
	later := created.UpdatedAt.Add(time.Minute)
	updated, err := s.store.Tasks.Update(s.ctx, "t1", repository.TaskUpdate{Notes: &notes, UpdatedAt: later})
	s.Require().NoError(err)
	s.Equal("halfway", updated.Notes)
	s.Equal(models.StatusNotCompleted, updated.Status)

	status := models.StatusCompleted
	updated, err = s.store.Tasks.Update(s.ctx, "t1", repository.TaskUpdate{Status: &status, UpdatedAt: later})
	s.Require().NoError(err)
	s.Equal(models.StatusCompleted, updated.Status)
	s.Equal("halfway", updated.Notes)
	s.Equal(created.Title, updated.Title)
	s.Equal(created.AssignedBy, updated.AssignedBy)

	_, err = s.store.Tasks.Update(s.ctx, "missing", repository.TaskUpdate{Status: &status, UpdatedAt: later})
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *StoreSuite) TestTasks_Delete() {
	s.newTask("t1", s.alice.ID, s.bob.ID, time.Now().UTC())

	s.Require().NoError(s.store.Tasks.Delete(s.ctx, "t1"))
	s.ErrorIs(s.store.Tasks.Delete(s.ctx, "t1"), repository.ErrNotFound)

	_, err := s.store.Tasks.GetByID(s.ctx, "t1")
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *StoreSuite) TestNotes() {
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	first := &models.Note{ID: "n1", Title: "Graphs", Content: "BFS", Category: "DSA", CreatedBy: s.alice.ID, CreatedAt: now, UpdatedAt: now}
	second := &models.Note{ID: "n2", Title: "Hooks", Content: "useEffect", Category: "React", CreatedBy: s.bob.ID, CreatedAt: now, UpdatedAt: now.Add(time.Minute)}
	s.Require().NoError(s.store.Notes.Create(s.ctx, first))
	s.Require().NoError(s.store.Notes.Create(s.ctx, second))

	notes, err := s.store.Notes.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(notes, 2)
	s.Equal("n2", notes[0].ID)

	title := "Graph search"
	updated, err := s.store.Notes.Update(s.ctx, "n1", repository.NoteUpdate{Title: &title, UpdatedAt: now.Add(time.Hour)})
	s.Require().NoError(err)
	s.Equal("Graph search", updated.Title)
	s.Equal("BFS", updated.Content)
	s.True(updated.UpdatedAt.Equal(now.Add(time.Hour)))

	notes, err = s.store.Notes.List(s.ctx)
	s.Require().NoError(err)
	s.Equal("n1", notes[0].ID)

	s.Require().NoError(s.store.Notes.Delete(s.ctx, "n1"))
	s.ErrorIs(s.store.Notes.Delete(s.ctx, "n1"), repository.ErrNotFound)
}

func TestEnsureDirForSQLite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ensureDirForSQLite("file:"+dir+"/nested/db.sqlite?cache=shared"))
	assert.DirExists(t, dir+"/nested")

	require.NoError(t, ensureDirForSQLite(":memory:"))
}
