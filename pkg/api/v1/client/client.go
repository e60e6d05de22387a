// Package client provides a typed Go client for the projtrack API.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/tracklabs/projtrack/internal/api/v1/routes"
	"github.com/tracklabs/projtrack/internal/db/models"
	"github.com/tracklabs/projtrack/internal/types"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// Client defines the interface for interacting with the projtrack API
type Client interface {
	ListProjects(ctx context.Context, status string) ([]models.Project, error)
	GetProject(ctx context.Context, id uint) (*models.Project, error)
	CreateProject(ctx context.Context, req types.ProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, id uint, req types.ProjectRequest) error
	DeleteProject(ctx context.Context, id uint) error

	// Health check
	HealthCheck(ctx context.Context) (map[string]string, error)
}

// ClientOptions contains configuration options for the API client
type ClientOptions struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the request timeout
	Timeout time.Duration
}

// DefaultOptions returns the default client options
func DefaultOptions() *ClientOptions {
	return &ClientOptions{
		BaseURL: routes.DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// APIClient implements the Client interface
type APIClient struct {
	baseURL string
	timeout time.Duration
}

// NewClient creates a new API client with the given options
func NewClient(opts *ClientOptions) (Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &APIClient{
		baseURL: opts.BaseURL,
		timeout: timeout,
	}, nil
}

// APIError is the decoded form of a non-2xx response.
type APIError struct {
	StatusCode int
	Slug       string
	Message    string
	Fields     map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// errorEnvelope mirrors the server's error response shape.
type errorEnvelope struct {
	Slug   string              `json:"slug"`
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields"`
}

// createAgent creates a new fiber Agent for the given method and endpoint
func (c *APIClient) createAgent(ctx context.Context, method, endpoint string, body interface{}) (*fiber.Agent, error) {
	fullURL := c.baseURL + endpoint

	var agent *fiber.Agent
	switch method {
	case http.MethodGet:
		agent = fiber.Get(fullURL)
	case http.MethodPost:
		agent = fiber.Post(fullURL)
	case http.MethodPut:
		agent = fiber.Put(fullURL)
	case http.MethodDelete:
		agent = fiber.Delete(fullURL)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	// Set timeout from context or client default
	if deadline, ok := ctx.Deadline(); ok {
		agent.Timeout(time.Until(deadline))
	} else {
		agent.Timeout(c.timeout)
	}

	agent.Set("Content-Type", "application/json")
	agent.Set("Accept", "application/json")

	if body != nil {
		agent.JSON(body)
	}

	return agent, nil
}

// executeRequest creates an agent, sends the request, and processes the response
func (c *APIClient) executeRequest(ctx context.Context, method, endpoint string, body, response interface{}) error {
	agent, err := c.createAgent(ctx, method, endpoint, body)
	if err != nil {
		return err
	}

	return c.doRequest(agent, response)
}

// doRequest sends the HTTP request and processes the response
func (c *APIClient) doRequest(agent *fiber.Agent, v interface{}) error {
	statusCode, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("error sending request: %w", errs[0])
	}

	if statusCode < 200 || statusCode >= 300 {
		apiErr := &APIError{StatusCode: statusCode}
		var envelope errorEnvelope
		if err := json.Unmarshal(body, &envelope); err == nil {
			apiErr.Slug = envelope.Slug
			apiErr.Message = envelope.Error
			apiErr.Fields = envelope.Fields
		}
		return apiErr
	}

	if v != nil && len(body) > 0 {
		if err := json.Unmarshal(body, v); err != nil {
			return fmt.Errorf("error decoding response: %w", err)
		}
	}

	return nil
}

// ListProjects lists projects, optionally filtered by status
func (c *APIClient) ListProjects(ctx context.Context, status string) ([]models.Project, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}

	var projects []models.Project
	if err := c.executeRequest(ctx, http.MethodGet, routes.GetProjectsURL(query), nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProject retrieves a project by id
func (c *APIClient) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	if err := c.executeRequest(ctx, http.MethodGet, routes.GetProjectURL(formatID(id)), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// CreateProject creates a new project and returns the created record,
// including its assigned id and initial version
func (c *APIClient) CreateProject(ctx context.Context, req types.ProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := c.executeRequest(ctx, http.MethodPost, routes.CreateProjectURL(), req, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject replaces the project identified by id. The request must
// carry the same id and the version last observed by the caller.
func (c *APIClient) UpdateProject(ctx context.Context, id uint, req types.ProjectRequest) error {
	return c.executeRequest(ctx, http.MethodPut, routes.UpdateProjectURL(formatID(id)), req, nil)
}

// DeleteProject deletes a project by id
func (c *APIClient) DeleteProject(ctx context.Context, id uint) error {
	return c.executeRequest(ctx, http.MethodDelete, routes.DeleteProjectURL(formatID(id)), nil, nil)
}

// HealthCheck checks the API health status
func (c *APIClient) HealthCheck(ctx context.Context) (map[string]string, error) {
	var response map[string]string
	if err := c.executeRequest(ctx, http.MethodGet, routes.HealthCheckURL(), nil, &response); err != nil {
		return nil, err
	}
	return response, nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
