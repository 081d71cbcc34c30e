package handler

import (
	"errors"
	"io"

	"github.com/dododo1295/tonotes-api/dto"
	"github.com/dododo1295/tonotes-api/middleware"
	"github.com/dododo1295/tonotes-api/usecase"
	"github.com/dododo1295/tonotes-api/utils"

	"github.com/gin-gonic/gin"
)

var addNoteMessages = map[string]string{
	"Title":   "Title is required",
	"Content": "Content is required",
}

func AddNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	ctx := c.Request.Context()
	userID := middleware.UserIDFromContext(ctx)

	var req dto.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, bindingMessage(err, addNoteMessages, "Invalid request body"))
		return
	}

	note, err := notesService.CreateNote(ctx, userID, usecase.NoteInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		respondError(c, err, "add_note")
		return
	}

	utils.Created(c, "Note added successfully", gin.H{"note": dto.ToNoteResponse(note)})
}

func EditNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	ctx := c.Request.Context()
	userID := middleware.UserIDFromContext(ctx)
	noteID := c.Param("noteId")

	var req dto.EditNoteRequest
	// An empty body is the same as supplying no fields.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		bindFailed(c, err, "Invalid request body")
		return
	}

	note, err := notesService.UpdateNote(ctx, userID, noteID, usecase.NoteChanges{
		Title:    req.Title,
		Content:  req.Content,
		Tags:     req.Tags,
		IsPinned: req.IsPinned,
	})
	if err != nil {
		respondError(c, err, "edit_note")
		return
	}

	utils.Success(c, "Note updated successfully", gin.H{"note": dto.ToNoteResponse(note)})
}

func GetAllNotesHandler(c *gin.Context, notesService *usecase.NotesService) {
	ctx := c.Request.Context()

	notes, err := notesService.GetUserNotes(ctx, middleware.UserIDFromContext(ctx))
	if err != nil {
		respondError(c, err, "get_all_notes")
		return
	}

	utils.Success(c, "Notes fetched successfully", gin.H{"notes": dto.ToNoteResponses(notes)})
}

func DeleteNoteHandler(c *gin.Context, notesService *usecase.NotesService) {
	ctx := c.Request.Context()

	if err := notesService.DeleteNote(ctx, middleware.UserIDFromContext(ctx), c.Param("noteId")); err != nil {
		respondError(c, err, "delete_note")
		return
	}

	utils.Success(c, "Note deleted successfully", nil)
}
