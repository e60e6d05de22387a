package routes

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetRoute(t *testing.T) {
	require.Equal(t, "/health", GetRoute(HealthCheck))
	require.Equal(t, "/api/v1/projects/", GetRoute(GetProjects))
	require.Equal(t, "/api/v1/projects/:id", GetRoute(GetProject))
	require.Equal(t, "/api/v1/projects/", GetRoute(CreateProject))
	require.Equal(t, "/api/v1/projects/:id", GetRoute(UpdateProject))
	require.Equal(t, "/api/v1/projects/:id", GetRoute(DeleteProject))

	require.Empty(t, GetRoute("NoSuchRoute"))
}

func TestBuildURL(t *testing.T) {
	require.Equal(t, "/api/v1/projects", GetProjectsURL(nil))
	require.Equal(t, "/api/v1/projects", CreateProjectURL())
	require.Equal(t, "/api/v1/projects/42", GetProjectURL("42"))
	require.Equal(t, "/api/v1/projects/42", UpdateProjectURL("42"))
	require.Equal(t, "/api/v1/projects/42", DeleteProjectURL("42"))
	require.Equal(t, "/health", HealthCheckURL())

	query := url.Values{}
	query.Set("status", "Planned")
	require.Equal(t, "/api/v1/projects?status=Planned", GetProjectsURL(query))

	require.Empty(t, BuildURL("NoSuchRoute", nil, nil))
}
