/*
Package notitechsdk is a Go client for the NotiTech notes and reminders API.

# Client vs Session

Client covers the anonymous endpoints: registration, login, the password
recovery flows and health checks. Register and Login return a Session bound
to the issued bearer token:

	client := notitechsdk.NewClient("http://localhost:8080")

	session, _, err := client.Login(ctx, "alice@example.com", "correct horse")
	if err != nil {
		return err
	}

	note, err := session.CreateNote(ctx, notitechsdk.NoteRequest{Title: "Groceries"})

Tokens are not refreshed. A password reset on the account retires every
token issued before it, after which calls fail with IsUnauthorized.

# Errors

Non-2xx responses are returned as *Error carrying the status code and the
server's message. StatusCode, IsNotFound and IsUnauthorized inspect them.
*/
package notitechsdk
