package notitech_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Container setup and shared assertions for the notitech end-to-end tests.
 */

const (
	testImageName = "notitech-test:latest"

	adminToken   = "test-admin-token-12345"
	jwtSecret    = "e2e-secret-0123456789abcdef0123456789"
	userName     = "Alice"
	userPassword = "Correct-Horse-1"
)

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building notitech Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up notitech Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/notitech/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// setupContainer starts notitech with extra env layered over the test
// defaults and returns the base URL.
func setupContainer(t *testing.T, extraEnv map[string]string) (string, func()) {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"ENV":               "test",
		"LOG_LEVEL":         "info",
		"LOG_FORMAT":        "json",
		"DATABASE_FILE":     "/data/notitech.db",
		"PEPPER_FILE":       "/data/pepper",
		"JWT_SECRET":        jwtSecret,
		"ADMIN_TOKEN":       adminToken,
		"EXPOSE_RESET_CODE": "true",
	}
	for k, v := range extraEnv {
		env[k] = v
	}

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	baseURL := fmt.Sprintf("http://%s:%s", host, mappedPort.Port())

	cleanup := func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	return baseURL, cleanup
}

// registerUser creates an account with a security question and returns its
// session.
func registerUser(t *testing.T, client *notitechsdk.Client, email string) *notitechsdk.Session {
	t.Helper()

	session, resp, err := client.Register(t.Context(), notitechsdk.RegisterRequest{
		Name:             userName,
		Email:            email,
		Password:         userPassword,
		SecurityQuestion: "first_pet",
		SecurityAnswer:   "Rex",
	})
	require.NoError(t, err, "Register should succeed")
	require.NotEmpty(t, resp.Token)
	require.Equal(t, email, resp.User.Email)

	return session
}

func assertHealthy(t *testing.T, health *notitechsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

func assertStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, status, notitechsdk.StatusCode(err), "unexpected error: %v", err)
}
