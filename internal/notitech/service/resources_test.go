package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/stretchr/testify/require"
)

func TestNotes(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	alice := e.register(t, "alice@example.com", "pw1").User.ID
	bob := e.register(t, "bob@example.com", "pw1").User.ID

	groceries, err := e.notes.Create(ctx, alice, service.NoteInput{Title: "Groceries", Body: "milk"})
	require.NoError(t, err)
	e.clock.Advance(time.Minute)
	_, err = e.notes.Create(ctx, alice, service.NoteInput{Title: "Work", Body: "ship it"})
	require.NoError(t, err)

	list, err := e.notes.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Work", list[0].Title)

	found, err := e.notes.Search(ctx, alice, "roc")
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, groceries.ID, found[0].ID)

	t.Run("scoped to owner", func(t *testing.T) {
		_, err := e.notes.Get(ctx, bob, groceries.ID)
		require.ErrorIs(t, err, service.ErrNotFound)
		_, err = e.notes.Update(ctx, bob, groceries.ID, service.NoteInput{Title: "mine"})
		require.ErrorIs(t, err, service.ErrNotFound)
		require.ErrorIs(t, e.notes.Delete(ctx, bob, groceries.ID), service.ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		e.clock.Advance(time.Minute)
		n, err := e.notes.Update(ctx, alice, groceries.ID, service.NoteInput{Title: "Groceries", Body: "milk, eggs"})
		require.NoError(t, err)
		require.Equal(t, "milk, eggs", n.Body)
		require.True(t, n.UpdatedAt.After(n.CreatedAt))
	})

	t.Run("validation", func(t *testing.T) {
		_, err := e.notes.Create(ctx, alice, service.NoteInput{Body: "untitled"})
		require.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("counted in statistics", func(t *testing.T) {
		st, err := e.statistics.Get(ctx, alice)
		require.NoError(t, err)
		require.EqualValues(t, 2, st.NotesCreated)
	})

	require.NoError(t, e.notes.Delete(ctx, alice, groceries.ID))
	_, err = e.notes.Get(ctx, alice, groceries.ID)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestReminders(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	alice := e.register(t, "alice@example.com", "pw1").User.ID
	now := e.clock.Now()

	at := func(d time.Duration) time.Time { return now.Add(d) }
	yesterday, err := e.reminders.Create(ctx, alice, service.ReminderInput{Title: "yesterday", DateTime: at(-24 * time.Hour)})
	require.NoError(t, err)
	_, err = e.reminders.Create(ctx, alice, service.ReminderInput{Title: "tonight", DateTime: at(12 * time.Hour)})
	require.NoError(t, err)
	_, err = e.reminders.Create(ctx, alice, service.ReminderInput{Title: "this morning", DateTime: at(-2 * time.Hour)})
	require.NoError(t, err)
	_, err = e.reminders.Create(ctx, alice, service.ReminderInput{Title: "tomorrow", DateTime: at(14 * time.Hour)})
	require.NoError(t, err)

	all, err := e.reminders.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, "yesterday", all[0].Title)

	today, err := e.reminders.Today(ctx, alice)
	require.NoError(t, err)
	require.Len(t, today, 2)
	require.Equal(t, "this morning", today[0].Title)
	require.Equal(t, "tonight", today[1].Title)

	updated, err := e.reminders.Update(ctx, alice, yesterday.ID, service.ReminderInput{
		Title:       "moved",
		Description: "now today",
		DateTime:    at(time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, "moved", updated.Title)
	require.True(t, updated.DateTime.Equal(at(time.Hour)))

	_, err = e.reminders.Create(ctx, alice, service.ReminderInput{Title: "no time"})
	require.ErrorIs(t, err, service.ErrInvalidInput)

	st, err := e.statistics.Get(ctx, alice)
	require.NoError(t, err)
	require.EqualValues(t, 4, st.RemindersCreated)

	require.NoError(t, e.reminders.Delete(ctx, alice, yesterday.ID))
	require.ErrorIs(t, e.reminders.Delete(ctx, alice, yesterday.ID), service.ErrNotFound)
}

func TestStatistics_MissingUser(t *testing.T) {
	e := newEnv(t)
	_, err := e.statistics.Get(context.Background(), "missing")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestHousekeeping(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.register(t, "alice@example.com", "pw1")
	e.register(t, "bob@example.com", "pw1")

	_, err := e.recovery.RequestResetCode(ctx, "alice@example.com")
	require.NoError(t, err)
	e.clock.Advance(20 * time.Minute)
	_, err = e.recovery.RequestResetCode(ctx, "bob@example.com")
	require.NoError(t, err)
	e.clock.Advance(15 * time.Minute)

	hk := service.NewHousekeepingService(e.store, slogDiscard(), time.Hour)
	hk.Now = e.clock.Now
	require.EqualValues(t, 1, hk.Cleanup(ctx))

	_, err = e.store.ResetCodes().GetResetCode(ctx, "bob@example.com")
	require.NoError(t, err)

	hk.Start()
	hk.Stop()
}
