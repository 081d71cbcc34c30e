package repository

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/dododo1295/tonotes-api/model"
)

// MemoryUserRepo keeps users in process memory. It backs STORAGE_DRIVER=memory
// and the service tests.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]model.User // keyed by email
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{users: make(map[string]model.User)}
}

func (r *MemoryUserRepo) AddUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return ErrDuplicateEmail
	}
	r.users[user.Email] = *user
	return nil
}

func (r *MemoryUserRepo) FindUserByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *MemoryUserRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// MemoryNotesRepo keeps notes in insertion order.
type MemoryNotesRepo struct {
	mu    sync.RWMutex
	notes []model.Note
}

func NewMemoryNotesRepo() *MemoryNotesRepo {
	return &MemoryNotesRepo{}
}

func cloneNote(n model.Note) *model.Note {
	n.Tags = slices.Clone(n.Tags)
	if n.Tags == nil {
		n.Tags = []string{}
	}
	return &n
}

func (r *MemoryNotesRepo) indexOf(noteID, userID string) int {
	return slices.IndexFunc(r.notes, func(n model.Note) bool {
		return n.ID == noteID && n.UserID == userID
	})
}

func (r *MemoryNotesRepo) CreateNote(_ context.Context, note *model.Note) error {
	if note.UserID == "" {
		return errors.New("user ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.notes = append(r.notes, *cloneNote(*note))
	return nil
}

func (r *MemoryNotesRepo) GetUserNotes(_ context.Context, userID string) ([]*model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]*model.Note, 0)
	for _, n := range r.notes {
		if n.UserID == userID {
			notes = append(notes, cloneNote(n))
		}
	}
	return notes, nil
}

func (r *MemoryNotesRepo) UpdateNote(_ context.Context, noteID, userID string, update model.NoteUpdate) (*model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(noteID, userID)
	if i < 0 {
		return nil, ErrNotFound
	}

	if update.SetTags {
		update.Tags = model.NormalizeTags(update.Tags)
	}
	update.Apply(&r.notes[i])
	r.notes[i].UpdatedAt = time.Now().UTC()

	return cloneNote(r.notes[i]), nil
}

func (r *MemoryNotesRepo) DeleteNote(_ context.Context, noteID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(noteID, userID)
	if i < 0 {
		return ErrNotFound
	}
	r.notes = slices.Delete(r.notes, i, i+1)
	return nil
}
