package notitech_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterLoginMe(t *testing.T) {
	baseURL, cleanup := setupContainer(t, nil)
	defer cleanup()

	client := notitechsdk.NewClient(baseURL)
	registerUser(t, client, "alice@example.com")

	_, _, err := client.Register(t.Context(), notitechsdk.RegisterRequest{
		Name: userName, Email: "alice@example.com", Password: userPassword,
	})
	assertStatus(t, err, http.StatusBadRequest)

	_, _, err = client.Login(t.Context(), "alice@example.com", "wrong")
	assertStatus(t, err, http.StatusBadRequest)

	session, _, err := client.Login(t.Context(), "alice@example.com", userPassword)
	require.NoError(t, err)

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", me.Email)
	require.EqualValues(t, 1, me.SignInCount)

	_, err = client.NewSession("garbage").Me(t.Context())
	require.True(t, notitechsdk.IsUnauthorized(err))

	check, err := client.CheckEmail(t.Context(), "alice@example.com")
	require.NoError(t, err)
	require.True(t, check.Exists)

	_, err = client.CheckEmail(t.Context(), "bob@example.com")
	require.True(t, notitechsdk.IsNotFound(err))
}
