package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestNoteUpdate_IsEmpty(t *testing.T) {
	assert.True(t, NoteUpdate{}.IsEmpty())
	assert.False(t, NoteUpdate{IsPinned: ptr(false)}.IsEmpty())
	assert.False(t, NoteUpdate{SetTags: true}.IsEmpty())
}

func TestNoteUpdate_Apply(t *testing.T) {
	note := Note{Title: "old", Content: "body", Tags: []string{"a"}, IsPinned: true}

	NoteUpdate{Title: ptr("new"), IsPinned: ptr(false)}.Apply(&note)

	assert.Equal(t, "new", note.Title)
	assert.Equal(t, "body", note.Content)
	assert.Equal(t, []string{"a"}, note.Tags)
	assert.False(t, note.IsPinned)

	NoteUpdate{SetTags: true}.Apply(&note)
	assert.NotNil(t, note.Tags)
	assert.Empty(t, note.Tags)
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{"go", "db"}, NormalizeTags([]string{" go ", "", "  ", "db"}))
	assert.NotNil(t, NormalizeTags(nil))
}
