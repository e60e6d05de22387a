// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/tracklabs/projtrack/internal/api/v1/handlers"
)

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8080"
	// APIv1Prefix is the prefix for all API endpoints
	APIv1Prefix = "/api/v1"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Route names for lookup
const (
	// Health check
	HealthCheck = "HealthCheck"

	// Project routes
	GetProjects   = "GetProjects"
	GetProject    = "GetProject"
	CreateProject = "CreateProject"
	UpdateProject = "UpdateProject"
	DeleteProject = "DeleteProject"
)

// routeCache stores extracted routes for use prior to compilation
var (
	routeCache     map[string]string
	routeCacheMu   sync.RWMutex
	routeCacheInit sync.Once
)

// RegisterRoutes configures all the v1 routes.
//
// NOTE: route ordering matters because routes match in registration order:
// fixed slugs must be registered before param routes (/:id) or fiber will
// interpret them as the param.
func RegisterRoutes(app *fiber.App, projectHandler *handlers.ProjectHandler) {
	// Health check
	app.Get("/health", handlers.HealthCheck).Name(HealthCheck)

	// API v1 routes
	v1 := app.Group(APIv1Prefix)

	// Project endpoints
	projects := v1.Group("/projects")
	projects.Get("/", projectHandler.ListProjects).Name(GetProjects)
	projects.Get("/:id", projectHandler.GetProject).Name(GetProject)
	projects.Post("/", projectHandler.CreateProject).Name(CreateProject)
	projects.Put("/:id", projectHandler.UpdateProject).Name(UpdateProject)
	projects.Delete("/:id", projectHandler.DeleteProject).Name(DeleteProject)
}

// initRouteCache initializes the route cache by creating a mock app and
// extracting the registered routes from it.
func initRouteCache() {
	routeCacheInit.Do(func() {
		routeCache = make(map[string]string)

		app := fiber.New()
		RegisterRoutes(app, &handlers.ProjectHandler{})

		for _, route := range app.GetRoutes() {
			if route.Name != "" {
				routeCache[route.Name] = route.Path
			}
		}
	})
}

// GetRoute returns the route pattern for the given route name
func GetRoute(name string) string {
	routeCacheMu.RLock()
	defer routeCacheMu.RUnlock()

	if routeCache == nil {
		routeCacheMu.RUnlock()
		initRouteCache()
		routeCacheMu.RLock()
	}

	return routeCache[name]
}

// BuildURL builds a URL for the given route name and parameters
func BuildURL(routeName string, params map[string]string, queryParams url.Values) string {
	route := GetRoute(routeName)
	if route == "" {
		return ""
	}

	for param, value := range params {
		route = strings.ReplaceAll(route, ":"+param, value)
	}

	// Remove trailing slash if it's a base endpoint with no parameters
	if strings.HasSuffix(route, "/") && !strings.Contains(route, ":") {
		route = strings.TrimSuffix(route, "/")
	}

	if len(queryParams) > 0 {
		route = fmt.Sprintf("%s?%s", route, queryParams.Encode())
	}

	return route
}

// HealthCheckURL returns the URL for the health check endpoint
func HealthCheckURL() string {
	return BuildURL(HealthCheck, nil, nil)
}

// GetProjectsURL returns the URL for listing projects
func GetProjectsURL(queryParams url.Values) string {
	return BuildURL(GetProjects, nil, queryParams)
}

// GetProjectURL returns the URL for getting a project by id
func GetProjectURL(id string) string {
	return BuildURL(GetProject, map[string]string{"id": id}, nil)
}

// CreateProjectURL returns the URL for creating a project
func CreateProjectURL() string {
	return BuildURL(CreateProject, nil, nil)
}

// UpdateProjectURL returns the URL for updating a project by id
func UpdateProjectURL(id string) string {
	return BuildURL(UpdateProject, map[string]string{"id": id}, nil)
}

// DeleteProjectURL returns the URL for deleting a project by id
func DeleteProjectURL(id string) string {
	return BuildURL(DeleteProject, map[string]string{"id": id}, nil)
}
