package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dododo1295/tonotes-api/model"
	"github.com/dododo1295/tonotes-api/repository"
	"github.com/dododo1295/tonotes-api/services"
	"github.com/dododo1295/tonotes-api/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type NotesRepository interface {
	CreateNote(ctx context.Context, note *model.Note) error
	GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error)
	UpdateNote(ctx context.Context, noteID, userID string, update model.NoteUpdate) (*model.Note, error)
	DeleteNote(ctx context.Context, noteID, userID string) error
}

// NotesService scopes every note operation to the calling user. Notes of
// other users are reported as ErrNoteNotFound, never as forbidden.
type NotesService struct {
	NotesRepo NotesRepository
	Cache     services.NotesCache
	Log       logrus.FieldLogger
}

func NewNotesService(repo NotesRepository, cache services.NotesCache, log logrus.FieldLogger) *NotesService {
	if cache == nil {
		cache = services.NoopNotesCache{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &NotesService{NotesRepo: repo, Cache: cache, Log: log}
}

// NoteInput is the payload of a new note.
type NoteInput struct {
	Title   string
	Content string
	Tags    []string
}

// NoteChanges is the payload of a partial update. Nil fields are not supplied.
type NoteChanges struct {
	Title    *string
	Content  *string
	Tags     *[]string
	IsPinned *bool
}

// PinnedFirst reorders notes so pinned ones lead. Order inside each group is
// kept.
func PinnedFirst(notes []*model.Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].IsPinned && !notes[j].IsPinned
	})
}

func (s *NotesService) invalidate(ctx context.Context, userID string) {
	if err := s.Cache.Invalidate(ctx, userID); err != nil {
		s.Log.WithError(err).WithField("user_id", userID).Warn("failed to invalidate notes cache")
	}
}

func (s *NotesService) CreateNote(ctx context.Context, userID string, input NoteInput) (*model.Note, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, invalid("Title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, invalid("Content is required")
	}

	now := time.Now().UTC()
	note := &model.Note{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   input.Content,
		Tags:      model.NormalizeTags(input.Tags),
		IsPinned:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.NotesRepo.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.invalidate(ctx, userID)
	utils.TrackNoteOperation("create")
	return note, nil
}

// UpdateNote applies only the supplied fields. Blank title or content count
// as not supplied; an explicit isPinned=false unpins.
func (s *NotesService) UpdateNote(ctx context.Context, userID, noteID string, changes NoteChanges) (*model.Note, error) {
	var update model.NoteUpdate
	if changes.Title != nil && strings.TrimSpace(*changes.Title) != "" {
		title := strings.TrimSpace(*changes.Title)
		update.Title = &title
	}
	if changes.Content != nil && strings.TrimSpace(*changes.Content) != "" {
		update.Content = changes.Content
	}
	if changes.Tags != nil {
		update.Tags = model.NormalizeTags(*changes.Tags)
		update.SetTags = true
	}
	update.IsPinned = changes.IsPinned

	if update.IsEmpty() {
		return nil, invalid("No changes made")
	}

	note, err := s.NotesRepo.UpdateNote(ctx, noteID, userID, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.invalidate(ctx, userID)
	utils.TrackNoteOperation("update")
	return note, nil
}

// GetUserNotes lists the user's notes, pinned first.
func (s *NotesService) GetUserNotes(ctx context.Context, userID string) ([]*model.Note, error) {
	notes, hit, err := s.Cache.GetNotes(ctx, userID)
	switch {
	case err != nil:
		utils.TrackCacheLookup("error")
		s.Log.WithError(err).WithField("user_id", userID).Warn("notes cache read failed")
	case hit:
		utils.TrackCacheLookup("hit")
		utils.TrackNoteOperation("list")
		return notes, nil
	default:
		utils.TrackCacheLookup("miss")
	}

	// Taken before the read so a write landing in between voids the store.
	version, versionErr := s.Cache.Version(ctx, userID)

	notes, err = s.NotesRepo.GetUserNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	PinnedFirst(notes)

	if versionErr != nil {
		s.Log.WithError(versionErr).WithField("user_id", userID).Warn("notes cache version read failed")
	} else if err := s.Cache.SetNotes(ctx, userID, version, notes); err != nil {
		s.Log.WithError(err).WithField("user_id", userID).Warn("notes cache write failed")
	}

	utils.TrackNoteOperation("list")
	return notes, nil
}

func (s *NotesService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := s.NotesRepo.DeleteNote(ctx, noteID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("delete note: %w", err)
	}

	s.invalidate(ctx, userID)
	utils.TrackNoteOperation("delete")
	return nil
}
