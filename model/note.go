package model

import (
	"strings"
	"time"
)

type Note struct {
	ID        string    `bson:"_id" json:"_id"`
	UserID    string    `bson:"user_id" json:"userId"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Tags      []string  `bson:"tags" json:"tags"`
	IsPinned  bool      `bson:"is_pinned" json:"isPinned"`
	CreatedAt time.Time `bson:"created_at" json:"createdOn"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedOn"`
}

// NoteUpdate carries the fields of a partial update. Nil means "leave as is".
type NoteUpdate struct {
	Title    *string
	Content  *string
	Tags     []string
	SetTags  bool
	IsPinned *bool
}

func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && !u.SetTags && u.IsPinned == nil
}

// Apply copies the supplied fields onto n.
func (u NoteUpdate) Apply(n *Note) {
	if u.Title != nil {
		n.Title = *u.Title
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
	if u.SetTags {
		n.Tags = append([]string{}, u.Tags...)
	}
	if u.IsPinned != nil {
		n.IsPinned = *u.IsPinned
	}
}

// NormalizeTags trims tags and drops blank ones. The result is never nil so
// it serialises as an empty array.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}
