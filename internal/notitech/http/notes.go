package http

import (
	"net/http"

	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/pkg/httpx"
	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
)

type NotesHandler struct {
	NoteService *service.NoteService
}

// HandleList godoc
//
//	@Summary		List notes
//	@Description	Newest first.
//	@Tags			Notes
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		notitechsdk.Note
//	@Failure		401	{object}	notitechsdk.ErrorResponse
//	@Router			/api/notes [get].
func (h *NotesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	notes, err := h.NoteService.List(r.Context(), uid)
	if err != nil {
		writeError(w, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toNotes(notes))
}

// HandleSearch godoc
//
//	@Summary		Search notes by title
//	@Tags			Notes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			query	path		string	true	"Title substring"
//	@Success		200		{array}		notitechsdk.Note
//	@Failure		401		{object}	notitechsdk.ErrorResponse
//	@Router			/api/notes/search/{query} [get].
func (h *NotesHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	notes, err := h.NoteService.Search(r.Context(), uid, r.PathValue("query"))
	if err != nil {
		writeError(w, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toNotes(notes))
}

// HandleGet godoc
//
//	@Summary		Get a note
//	@Tags			Notes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Note ID"
//	@Success		200	{object}	notitechsdk.Note
//	@Failure		404	{object}	notitechsdk.ErrorResponse	"Note not found"
//	@Router			/api/notes/{id} [get].
func (h *NotesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	n, err := h.NoteService.Get(r.Context(), uid, r.PathValue("id"))
	if err != nil {
		writeError(w, err, msgNoteNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toNote(n))
}

// HandleCreate godoc
//
//	@Summary		Create a note
//	@Tags			Notes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notitechsdk.NoteRequest	true	"Note"
//	@Success		201		{object}	notitechsdk.Note
//	@Failure		400		{object}	notitechsdk.ErrorResponse
//	@Router			/api/notes [post].
func (h *NotesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	var req notitechsdk.NoteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	n, err := h.NoteService.Create(r.Context(), uid, service.NoteInput{Title: req.Title, Body: req.Body})
	if err != nil {
		writeError(w, err, msgUserNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toNote(n))
}

// HandleUpdate godoc
//
//	@Summary		Update a note
//	@Tags			Notes
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Note ID"
//	@Param			request	body		notitechsdk.NoteRequest	true	"Note"
//	@Success		200		{object}	notitechsdk.Note
//	@Failure		404		{object}	notitechsdk.ErrorResponse	"Note not found or not authorized"
//	@Router			/api/notes/{id} [put].
func (h *NotesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	var req notitechsdk.NoteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	n, err := h.NoteService.Update(r.Context(), uid, r.PathValue("id"), service.NoteInput{Title: req.Title, Body: req.Body})
	if err != nil {
		writeError(w, err, "Note not found or not authorized")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toNote(n))
}

// HandleDelete godoc
//
//	@Summary		Delete a note
//	@Tags			Notes
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Note ID"
//	@Success		200	{object}	notitechsdk.MessageResponse
//	@Failure		404	{object}	notitechsdk.ErrorResponse	"Note not found"
//	@Router			/api/notes/{id} [delete].
func (h *NotesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	if err := h.NoteService.Delete(r.Context(), uid, r.PathValue("id")); err != nil {
		writeError(w, err, msgNoteNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notitechsdk.MessageResponse{Success: true, Message: "Note removed"})
}
