package client

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tracklabs/projtrack/internal/api/v1/handlers"
	"github.com/tracklabs/projtrack/internal/api/v1/services"
	"github.com/tracklabs/projtrack/internal/app"
	"github.com/tracklabs/projtrack/internal/db/models"
	"github.com/tracklabs/projtrack/internal/db/repos"
	"github.com/tracklabs/projtrack/internal/types"
)

// startTestServer runs the full API stack on an ephemeral port and returns a
// client pointed at it. The fiber Agent needs a live listener, so app.Test is
// not enough here.
func startTestServer(t *testing.T) Client {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Project{}))

	handler := handlers.NewProjectHandler(services.NewProjectService(repos.NewProjectRepository(db)))
	fiberApp := app.New(handler, app.Options{})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		_ = fiberApp.Listener(ln)
	}()
	t.Cleanup(func() {
		_ = fiberApp.Shutdown()
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	apiClient, err := NewClient(&ClientOptions{
		BaseURL: "http://" + ln.Addr().String(),
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
	return apiClient
}

func projectRequest() types.ProjectRequest {
	return types.ProjectRequest{
		Name:      "Website Revamp",
		Owner:     "Alice",
		Status:    "Planned",
		StartDate: models.NewDate(2024, time.January, 1),
		EndDate:   models.NewDate(2024, time.March, 1),
	}
}

func TestClientProjectLifecycle(t *testing.T) {
	apiClient := startTestServer(t)
	ctx := context.Background()

	health, err := apiClient.HealthCheck(ctx)
	require.NoError(t, err)
	require.Equal(t, "healthy", health["status"])

	created, err := apiClient.CreateProject(ctx, projectRequest())
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, 1, created.Version)

	fetched, err := apiClient.GetProject(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, "Website Revamp", fetched.Name)

	update := projectRequest()
	update.ID = created.ID
	update.Owner = "Bob"
	update.Status = "InProgress"
	update.Version = created.Version
	require.NoError(t, apiClient.UpdateProject(ctx, created.ID, update))

	fetched, err = apiClient.GetProject(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Bob", fetched.Owner)
	require.Equal(t, models.StatusInProgress, fetched.Status)
	require.Equal(t, 2, fetched.Version)

	projects, err := apiClient.ListProjects(ctx, "InProgress")
	require.NoError(t, err)
	require.Len(t, projects, 1)

	projects, err = apiClient.ListProjects(ctx, "Completed")
	require.NoError(t, err)
	require.Empty(t, projects)

	require.NoError(t, apiClient.DeleteProject(ctx, created.ID))

	_, err = apiClient.GetProject(ctx, created.ID)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.StatusCode)
}

func TestClientSurfacesValidationFields(t *testing.T) {
	apiClient := startTestServer(t)

	req := projectRequest()
	req.Name = "X"
	req.Owner = ""

	_, err := apiClient.CreateProject(context.Background(), req)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.StatusCode)
	require.Equal(t, "invalid-input", apiErr.Slug)
	require.Contains(t, apiErr.Fields, "name")
	require.Contains(t, apiErr.Fields, "owner")
}

func TestClientStaleVersionConflict(t *testing.T) {
	apiClient := startTestServer(t)
	ctx := context.Background()

	created, err := apiClient.CreateProject(ctx, projectRequest())
	require.NoError(t, err)

	update := projectRequest()
	update.ID = created.ID
	update.Version = created.Version
	require.NoError(t, apiClient.UpdateProject(ctx, created.ID, update))

	// Replaying the same observed version conflicts.
	err = apiClient.UpdateProject(ctx, created.ID, update)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 409, apiErr.StatusCode)
	require.Equal(t, "conflict", apiErr.Slug)
}
