package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/study-board/internal/models"
	"github.com/adanyl0v/study-board/internal/repository"
)

type noteServiceImpl struct {
	logger zerolog.Logger
	notes  repository.NoteRepository
}

func NewNoteService(
	logger zerolog.Logger,
	notes repository.NoteRepository,
) NoteService {
	return &noteServiceImpl{
		logger: logger,
		notes:  notes,
	}
}

func (s *noteServiceImpl) CreateNote(ctx context.Context, caller Identity, params CreateNoteParams) (*models.Note, error) {
	title := strings.TrimSpace(params.Title)
	content := strings.TrimSpace(params.Content)
	if title == "" || content == "" {
		s.logger.Error().
			Str("user_id", caller.UserID).
			Msg("note title and content are required")
		return nil, ErrEmptyField
	}

	noteUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate note uuid")
		return nil, err
	}

	now := time.Now().UTC()
	note := &models.Note{
		ID:        noteUUID.String(),
		Title:     title,
		Content:   content,
		Category:  noteCategory(params.Category),
		CreatedBy: caller.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.notes.Create(ctx, note)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert note")
		return nil, err
	}

	s.logger.Info().
		Str("note_id", note.ID).
		Str("user_id", caller.UserID).
		Msg("created note")
	return note, nil
}

func (s *noteServiceImpl) ListNotes(ctx context.Context) ([]*models.Note, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to select notes")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(notes)).
		Msg("selected notes")
	return notes, nil
}

func (s *noteServiceImpl) UpdateNote(ctx context.Context, caller Identity, params UpdateNoteParams) (*models.Note, error) {
	update := repository.NoteUpdate{
		UpdatedAt: time.Now().UTC(),
	}
	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if title == "" {
			return nil, ErrEmptyField
		}
		update.Title = &title
	}
	if params.Content != nil {
		content := strings.TrimSpace(*params.Content)
		if content == "" {
			return nil, ErrEmptyField
		}
		update.Content = &content
	}
	if params.Category != nil {
		category := noteCategory(*params.Category)
		update.Category = &category
	}

	note, err := s.getOwnedNote(ctx, caller, params.ID)
	if err != nil {
		return nil, err
	}

	note, err = s.notes.Update(ctx, note.ID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().
				Str("note_id", params.ID).
				Msg("note deleted before update")
			return nil, ErrNoteNotFound
		}

		s.logger.Error().
			Err(err).
			Str("note_id", params.ID).
			Msg("failed to update note")
		return nil, err
	}

	s.logger.Info().
		Str("note_id", note.ID).
		Msg("updated note")
	return note, nil
}

func (s *noteServiceImpl) DeleteNote(ctx context.Context, caller Identity, noteID string) error {
	note, err := s.getOwnedNote(ctx, caller, noteID)
	if err != nil {
		return err
	}

	err = s.notes.Delete(ctx, note.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().
				Str("note_id", noteID).
				Msg("note already deleted")
			return ErrNoteNotFound
		}

		s.logger.Error().
			Err(err).
			Str("note_id", noteID).
			Msg("failed to delete note")
		return err
	}

	s.logger.Info().
		Str("note_id", noteID).
		Str("user_id", caller.UserID).
		Msg("deleted note")
	return nil
}

func (s *noteServiceImpl) getOwnedNote(ctx context.Context, caller Identity, noteID string) (*models.Note, error) {
	note, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Error().
				Str("note_id", noteID).
				Msg("note not found")
			return nil, ErrNoteNotFound
		}

		s.logger.Error().
			Err(err).
			Str("note_id", noteID).
			Msg("failed to select note")
		return nil, err
	}

	if !CanModifyNote(caller, note) {
		s.logger.Warn().
			Str("note_id", note.ID).
			Str("user_id", caller.UserID).
			Msg("only the creator may modify a note")
		return nil, ErrForbidden
	}
	return note, nil
}

func noteCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return models.DefaultNoteCategory
	}
	return category
}
