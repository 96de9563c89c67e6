package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"notesapi/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidNoteID = "invalid note id"
	errMissingQuery  = "missing search query 'q'"
	errNoteNotFound  = "note not found"
	errInternal      = "internal error"
)

// Request DTO for creating and updating notes.
type noteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// userAndNoteID pulls the resolved identity and the :id path param, handling
// the error responses itself. Returns ok=false if the request was answered.
func (h *Handler) userAndNoteID(c *gin.Context) (userID, noteID int, ok bool) {
	userID, ok = currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errCredentials})
		return 0, 0, false
	}
	noteID, err := strconv.Atoi(c.Param("id"))
	if err != nil || noteID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidNoteID})
		return 0, 0, false
	}
	return userID, noteID, true
}

// noteError maps service failures to HTTP statuses. Ownership mismatches
// arrive here already folded into ErrNoteNotFound.
func (h *Handler) noteError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": errNoteNotFound})
	case errors.Is(err, service.ErrEmptyTitle):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternal})
	}
}

// @Summary      List notes
// @Tags         notes
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, notes"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/notes [get]
// @Security     BearerAuth
func (h *Handler) listNotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errCredentials})
		return
	}
	notes, err := h.services.Notes.List(c.Request.Context(), userID)
	if err != nil {
		h.noteError(c, err, "notes_list_failed", "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(notes), "notes": notes})
}

// @Summary      Search notes
// @Description  Case-insensitive substring match against title or content.
// @Tags         notes
// @Produce      json
// @Param        q    query     string  true  "Search query"
// @Success      200  {object}  map[string]interface{}  "count, notes"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/notes/search [get]
// @Security     BearerAuth
func (h *Handler) searchNotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errCredentials})
		return
	}
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingQuery})
		return
	}
	notes, err := h.services.Notes.Search(c.Request.Context(), userID, query)
	if err != nil {
		h.noteError(c, err, "notes_search_failed", "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(notes), "notes": notes})
}

// @Summary      Create note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        body  body      noteRequest  true  "Note payload"
// @Success      200   {object}  models.Note
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/notes [post]
// @Security     BearerAuth
func (h *Handler) createNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": errCredentials})
		return
	}
	var req noteRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	note, err := h.services.Notes.Create(c.Request.Context(), userID, req.Title, req.Content)
	if err != nil {
		h.noteError(c, err, "note_create_failed", "user_id", userID)
		return
	}
	c.JSON(http.StatusOK, note)
}

// @Summary      Get note
// @Tags         notes
// @Produce      json
// @Param        id   path      int  true  "Note ID"
// @Success      200  {object}  models.Note
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/notes/{id} [get]
// @Security     BearerAuth
func (h *Handler) getNote(c *gin.Context) {
	userID, noteID, ok := h.userAndNoteID(c)
	if !ok {
		return
	}
	note, err := h.services.Notes.GetByID(c.Request.Context(), userID, noteID)
	if err != nil {
		h.noteError(c, err, "note_get_failed", "user_id", userID, "note_id", noteID)
		return
	}
	c.JSON(http.StatusOK, note)
}

// @Summary      Update note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Param        id    path      int          true  "Note ID"
// @Param        body  body      noteRequest  true  "Note payload"
// @Success      200   {object}  models.Note
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/notes/{id} [put]
// @Security     BearerAuth
func (h *Handler) updateNote(c *gin.Context) {
	userID, noteID, ok := h.userAndNoteID(c)
	if !ok {
		return
	}
	var req noteRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	note, err := h.services.Notes.Update(c.Request.Context(), userID, noteID, req.Title, req.Content)
	if err != nil {
		h.noteError(c, err, "note_update_failed", "user_id", userID, "note_id", noteID)
		return
	}
	c.JSON(http.StatusOK, note)
}

// @Summary      Delete note
// @Tags         notes
// @Produce      json
// @Param        id   path      int  true  "Note ID"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/notes/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deleteNote(c *gin.Context) {
	userID, noteID, ok := h.userAndNoteID(c)
	if !ok {
		return
	}
	if err := h.services.Notes.Delete(c.Request.Context(), userID, noteID); err != nil {
		h.noteError(c, err, "note_delete_failed", "user_id", userID, "note_id", noteID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "note deleted"})
}
