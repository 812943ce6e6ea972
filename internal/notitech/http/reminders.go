package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/pkg/httpx"
	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
)

type RemindersHandler struct {
	ReminderService *service.ReminderService
}

var errBadDateTime = httpx.NewAPIError(http.StatusBadRequest, "Invalid input: dateTime must be an RFC 3339 timestamp")

func reminderInput(req notitechsdk.ReminderRequest) (service.ReminderInput, error) {
	in := service.ReminderInput{Title: req.Title, Description: req.Description}
	if s := strings.TrimSpace(req.DateTime); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return service.ReminderInput{}, errBadDateTime
		}
		in.DateTime = t
	}
	return in, nil
}

// HandleList godoc
//
//	@Summary		List reminders
//	@Description	Ordered by due time.
//	@Tags			Reminders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		notitechsdk.Reminder
//	@Failure		401	{object}	notitechsdk.ErrorResponse
//	@Router			/api/reminders [get].
func (h *RemindersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	rs, err := h.ReminderService.List(r.Context(), uid)
	if err != nil {
		writeError(w, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toReminders(rs))
}

// HandleToday godoc
//
//	@Summary		Today's reminders
//	@Description	Reminders due between midnight and midnight in the server's time zone.
//	@Tags			Reminders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		notitechsdk.Reminder
//	@Failure		401	{object}	notitechsdk.ErrorResponse
//	@Router			/api/reminders/today [get].
func (h *RemindersHandler) HandleToday(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	rs, err := h.ReminderService.Today(r.Context(), uid)
	if err != nil {
		writeError(w, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toReminders(rs))
}

// HandleGet godoc
//
//	@Summary		Get a reminder
//	@Tags			Reminders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Reminder ID"
//	@Success		200	{object}	notitechsdk.Reminder
//	@Failure		404	{object}	notitechsdk.ErrorResponse	"Reminder not found"
//	@Router			/api/reminders/{id} [get].
func (h *RemindersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	rem, err := h.ReminderService.Get(r.Context(), uid, r.PathValue("id"))
	if err != nil {
		writeError(w, err, msgReminderNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toReminder(rem))
}

// HandleCreate godoc
//
//	@Summary		Create a reminder
//	@Tags			Reminders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notitechsdk.ReminderRequest	true	"Reminder"
//	@Success		201		{object}	notitechsdk.Reminder
//	@Failure		400		{object}	notitechsdk.ErrorResponse
//	@Router			/api/reminders [post].
func (h *RemindersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	var req notitechsdk.ReminderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	in, err := reminderInput(req)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	rem, err := h.ReminderService.Create(r.Context(), uid, in)
	if err != nil {
		writeError(w, err, msgUserNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toReminder(rem))
}

// HandleUpdate godoc
//
//	@Summary		Update a reminder
//	@Tags			Reminders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Reminder ID"
//	@Param			request	body		notitechsdk.ReminderRequest	true	"Reminder"
//	@Success		200		{object}	notitechsdk.Reminder
//	@Failure		404		{object}	notitechsdk.ErrorResponse	"Reminder not found or not authorized"
//	@Router			/api/reminders/{id} [put].
func (h *RemindersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	var req notitechsdk.ReminderRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}
	in, err := reminderInput(req)
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	rem, err := h.ReminderService.Update(r.Context(), uid, r.PathValue("id"), in)
	if err != nil {
		writeError(w, err, "Reminder not found or not authorized")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toReminder(rem))
}

// HandleDelete godoc
//
//	@Summary		Delete a reminder
//	@Tags			Reminders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Reminder ID"
//	@Success		200	{object}	notitechsdk.MessageResponse
//	@Failure		404	{object}	notitechsdk.ErrorResponse	"Reminder not found"
//	@Router			/api/reminders/{id} [delete].
func (h *RemindersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	if err := h.ReminderService.Delete(r.Context(), uid, r.PathValue("id")); err != nil {
		writeError(w, err, msgReminderNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notitechsdk.MessageResponse{Success: true, Message: "Reminder removed"})
}
