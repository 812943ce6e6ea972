package notitech_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
	"github.com/stretchr/testify/require"
)

func TestResetCodeRevokesSessions(t *testing.T) {
	baseURL, cleanup := setupContainer(t, nil)
	defer cleanup()

	client := notitechsdk.NewClient(baseURL)
	session := registerUser(t, client, "alice@example.com")

	issued, err := client.RequestResetCode(t.Context(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, issued.Code, 4)

	verified, err := client.VerifyResetCode(t.Context(), "alice@example.com", issued.Code)
	require.NoError(t, err)
	require.True(t, verified.Valid)

	_, err = client.ResetPassword(t.Context(), notitechsdk.ResetPasswordRequest{
		Email: "alice@example.com", Code: issued.Code, NewPassword: "New-Password-2",
	})
	require.NoError(t, err)

	_, err = session.Me(t.Context())
	require.True(t, notitechsdk.IsUnauthorized(err), "old session should be revoked, got %v", err)

	_, err = client.ResetPassword(t.Context(), notitechsdk.ResetPasswordRequest{
		Email: "alice@example.com", Code: issued.Code, NewPassword: "Another-3",
	})
	assertStatus(t, err, http.StatusBadRequest)

	_, _, err = client.Login(t.Context(), "alice@example.com", "New-Password-2")
	require.NoError(t, err)
}

func TestSecurityQuestionReset(t *testing.T) {
	baseURL, cleanup := setupContainer(t, nil)
	defer cleanup()

	client := notitechsdk.NewClient(baseURL)
	registerUser(t, client, "alice@example.com")

	q, err := client.SecurityQuestion(t.Context(), "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "first_pet", q.Key)

	_, err = client.ResetPasswordWithAnswer(t.Context(), notitechsdk.SecurityResetRequest{
		Email: "alice@example.com", SecurityAnswer: "Max", NewPassword: "New-Password-2",
	})
	assertStatus(t, err, http.StatusBadRequest)

	_, err = client.ResetPasswordWithAnswer(t.Context(), notitechsdk.SecurityResetRequest{
		Email: "alice@example.com", SecurityAnswer: " rex ", NewPassword: "New-Password-2",
	})
	require.NoError(t, err)

	_, _, err = client.Login(t.Context(), "alice@example.com", "New-Password-2")
	require.NoError(t, err)
}

func TestAdminResetPassword(t *testing.T) {
	baseURL, cleanup := setupContainer(t, nil)
	defer cleanup()

	client := notitechsdk.NewClient(baseURL)
	registerUser(t, client, "alice@example.com")

	req := notitechsdk.AdminResetPasswordRequest{Email: "alice@example.com", NewPassword: "Admin-Set-4"}

	_, err := client.AdminResetPassword(t.Context(), "wrong-token", req)
	assertStatus(t, err, http.StatusUnauthorized)

	_, err = client.AdminResetPassword(t.Context(), adminToken, req)
	require.NoError(t, err)

	_, _, err = client.Login(t.Context(), "alice@example.com", "Admin-Set-4")
	require.NoError(t, err)
}

func TestAdminResetPassword_Disabled(t *testing.T) {
	baseURL, cleanup := setupContainer(t, map[string]string{"ADMIN_TOKEN": ""})
	defer cleanup()

	client := notitechsdk.NewClient(baseURL)
	_, err := client.AdminResetPassword(t.Context(), adminToken, notitechsdk.AdminResetPasswordRequest{
		Email: "alice@example.com", NewPassword: "x",
	})
	assertStatus(t, err, http.StatusNotFound)
}
