package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tracklabs/projtrack/internal/db/models"
	"github.com/tracklabs/projtrack/internal/db/repos"
	"github.com/tracklabs/projtrack/internal/types"
)

func newTestService(t *testing.T) *ProjectService {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Project{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return NewProjectService(repos.NewProjectRepository(db))
}

func validRequest() types.ProjectRequest {
	return types.ProjectRequest{
		Name:      "Website Revamp",
		Owner:     "Alice",
		Status:    "Planned",
		StartDate: models.NewDate(2024, time.January, 1),
		EndDate:   models.NewDate(2024, time.March, 1),
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := validRequest()
	created, err := svc.Create(ctx, &req)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, 1, created.Version)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)
	require.Equal(t, "Website Revamp", fetched.Name)
	require.Equal(t, "Alice", fetched.Owner)
	require.Equal(t, models.StatusPlanned, fetched.Status)
	require.True(t, created.StartDate.Equal(fetched.StartDate))
	require.True(t, created.EndDate.Equal(fetched.EndDate))
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Short name
	req := validRequest()
	req.Name = "X"
	_, err := svc.Create(ctx, &req)

	var verrs types.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	require.Contains(t, verrs.Fields(), "name")

	// Inverted date range reports both fields
	req = validRequest()
	req.Name = "Migration"
	req.Owner = "Carl"
	req.Status = "InProgress"
	req.StartDate = models.NewDate(2024, time.June, 1)
	req.EndDate = models.NewDate(2024, time.May, 1)
	_, err = svc.Create(ctx, &req)
	require.ErrorAs(t, err, &verrs)
	require.Contains(t, verrs.Fields(), "startDate")
	require.Contains(t, verrs.Fields(), "endDate")

	// Nothing was persisted
	projects, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, projects)
}

func TestListByStatus(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, status := range []string{"Planned", "InProgress", "Planned"} {
		req := validRequest()
		req.Status = status
		_, err := svc.Create(ctx, &req)
		require.NoError(t, err)
	}

	status := models.StatusPlanned
	planned, err := svc.List(ctx, &models.ListOptions{Status: &status})
	require.NoError(t, err)
	require.Len(t, planned, 2)

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestUpdateIDMismatch(t *testing.T) {
	svc := newTestService(t)

	req := validRequest()
	req.ID = 6
	err := svc.Update(context.Background(), 5, &req)
	require.ErrorIs(t, err, ErrIDMismatch)
}

func TestUpdateStaleVersion(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := validRequest()
	created, err := svc.Create(ctx, &req)
	require.NoError(t, err)

	// First writer succeeds
	update := validRequest()
	update.ID = created.ID
	update.Owner = "Bob"
	update.Version = created.Version
	require.NoError(t, svc.Update(ctx, created.ID, &update))

	// Second writer, still holding the original version, conflicts
	stale := validRequest()
	stale.ID = created.ID
	stale.Owner = "Carol"
	stale.Version = created.Version
	err = svc.Update(ctx, created.ID, &stale)
	require.ErrorIs(t, err, repos.ErrProjectStale)
}

func TestUpdateMissingProject(t *testing.T) {
	svc := newTestService(t)

	req := validRequest()
	req.ID = 42
	req.Version = 1
	err := svc.Update(context.Background(), 42, &req)
	require.ErrorIs(t, err, repos.ErrProjectNotFound)
}

func TestDeleteIsNotIdempotentlySilent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := validRequest()
	created, err := svc.Create(ctx, &req)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	require.ErrorIs(t, err, repos.ErrProjectNotFound)
}
