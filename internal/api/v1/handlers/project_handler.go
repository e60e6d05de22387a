// Package handlers provides HTTP request handling for the v1 API.
package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tracklabs/projtrack/internal/api/v1/services"
	"github.com/tracklabs/projtrack/internal/db/models"
	"github.com/tracklabs/projtrack/internal/db/repos"
	"github.com/tracklabs/projtrack/internal/logger"
	"github.com/tracklabs/projtrack/internal/types"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	service *services.ProjectService
}

// NewProjectHandler creates a new project handler instance
func NewProjectHandler(service *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		service: service,
	}
}

// HealthCheck reports service liveness.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "healthy"})
}

// ListProjects returns all projects. An optional status query parameter
// filters the results; an unrecognized value is a client error, not silently
// ignored.
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	opts := &models.ListOptions{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseProjectStatus(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(
				fmt.Sprintf("invalid status filter %q: must be one of Planned, InProgress or Completed", raw)))
		}
		opts.Status = &status
	}

	projects, err := h.service.List(c.Context(), opts)
	if err != nil {
		return respondWithServiceError(c, err, "failed to list projects")
	}
	return c.JSON(projects)
}

// GetProject returns a single project by its identifier.
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	project, err := h.service.Get(c.Context(), id)
	if err != nil {
		return respondWithServiceError(c, err, "failed to get project")
	}
	return c.JSON(project)
}

// CreateProject creates a new project from the request body and responds
// with the created record and a Location header pointing at it.
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var req types.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid request body"))
	}

	project, err := h.service.Create(c.Context(), &req)
	if err != nil {
		return respondWithServiceError(c, err, "failed to create project")
	}

	c.Location(fmt.Sprintf("/api/v1/projects/%d", project.ID))
	return c.Status(fiber.StatusCreated).JSON(project)
}

// UpdateProject replaces an existing project. The id in the route must match
// the id in the request body.
func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	var req types.ProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput("invalid request body"))
	}

	if err := h.service.Update(c.Context(), id, &req); err != nil {
		return respondWithServiceError(c, err, "failed to update project")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteProject deletes a project by its identifier.
func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		return respondWithServiceError(c, err, "failed to delete project")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseID extracts the numeric project id from the route.
func parseID(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid project id %q", raw)
	}
	return uint(id), nil
}

// respondWithServiceError maps service and repository outcomes onto the HTTP
// error taxonomy. Every store error is surfaced; nothing is swallowed.
func respondWithServiceError(c *fiber.Ctx, err error, logMsg string) error {
	var verrs types.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusBadRequest).JSON(errValidation(verrs))
	case errors.Is(err, services.ErrIDMismatch):
		return c.Status(fiber.StatusBadRequest).JSON(errInvalidInput(err.Error()))
	case errors.Is(err, repos.ErrProjectNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errNotFound(err.Error()))
	case errors.Is(err, repos.ErrProjectStale):
		return c.Status(fiber.StatusConflict).JSON(errConflict(err.Error()))
	}

	logger.Errorf("%s: %v", logMsg, err)
	return c.Status(fiber.StatusInternalServerError).JSON(errServer(logMsg))
}
