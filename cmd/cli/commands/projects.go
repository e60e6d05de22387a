package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracklabs/projtrack/internal/db/models"
	"github.com/tracklabs/projtrack/internal/types"
)

// Flag names
const (
	flagID          = "id"
	flagName        = "name"
	flagDescription = "description"
	flagOwner       = "owner"
	flagStatus      = "status"
	flagStartDate   = "start-date"
	flagEndDate     = "end-date"
)

func init() {
	projectsCmd.AddCommand(createProjectCmd)
	projectsCmd.AddCommand(getProjectCmd)
	projectsCmd.AddCommand(listProjectsCmd)
	projectsCmd.AddCommand(updateProjectCmd)
	projectsCmd.AddCommand(deleteProjectCmd)

	// Add flags for create
	createProjectCmd.Flags().StringP(flagName, "n", "", "Project name")
	createProjectCmd.Flags().StringP(flagDescription, "d", "", "Project description")
	createProjectCmd.Flags().StringP(flagOwner, "o", "", "Project owner")
	createProjectCmd.Flags().String(flagStatus, string(models.StatusPlanned), "Project status (Planned, InProgress, Completed)")
	createProjectCmd.Flags().String(flagStartDate, "", "Start date (YYYY-MM-DD)")
	createProjectCmd.Flags().String(flagEndDate, "", "End date (YYYY-MM-DD)")
	for _, required := range []string{flagName, flagOwner} {
		if err := createProjectCmd.MarkFlagRequired(required); err != nil {
			panic(fmt.Errorf("failed to mark %s flag as required for create project command: %w", required, err))
		}
	}

	// Add flags for get
	getProjectCmd.Flags().Uint(flagID, 0, "Project id")
	if err := getProjectCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for get project command: %w", err))
	}

	// Add flags for list
	listProjectsCmd.Flags().String(flagStatus, "", "Filter by status (Planned, InProgress, Completed)")

	// Add flags for update
	updateProjectCmd.Flags().Uint(flagID, 0, "Project id")
	updateProjectCmd.Flags().StringP(flagName, "n", "", "Project name")
	updateProjectCmd.Flags().StringP(flagDescription, "d", "", "Project description")
	updateProjectCmd.Flags().StringP(flagOwner, "o", "", "Project owner")
	updateProjectCmd.Flags().String(flagStatus, "", "Project status (Planned, InProgress, Completed)")
	updateProjectCmd.Flags().String(flagStartDate, "", "Start date (YYYY-MM-DD)")
	updateProjectCmd.Flags().String(flagEndDate, "", "End date (YYYY-MM-DD)")
	if err := updateProjectCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for update project command: %w", err))
	}

	// Add flags for delete
	deleteProjectCmd.Flags().Uint(flagID, 0, "Project id")
	if err := deleteProjectCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for delete project command: %w", err))
	}
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Manage projects",
}

var createProjectCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		// The status flag has a default, so seed it before the overlay.
		req, err := projectRequestFromFlags(cmd, types.ProjectRequest{
			Status: string(models.StatusPlanned),
		})
		if err != nil {
			return err
		}

		project, err := apiClient.CreateProject(context.Background(), req)
		if err != nil {
			return fmt.Errorf("error creating project: %w", err)
		}

		return printJSON(project)
	},
}

var getProjectCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a specific project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := cmd.Flags().GetUint(flagID)
		if err != nil {
			return fmt.Errorf("error getting id flag: %w", err)
		}

		project, err := apiClient.GetProject(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error getting project: %w", err)
		}

		return printJSON(project)
	},
}

var listProjectsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all projects",
	RunE: func(cmd *cobra.Command, _ []string) error {
		status, err := cmd.Flags().GetString(flagStatus)
		if err != nil {
			return fmt.Errorf("error getting status flag: %w", err)
		}

		projects, err := apiClient.ListProjects(context.Background(), status)
		if err != nil {
			return fmt.Errorf("error listing projects: %w", err)
		}

		return printJSON(struct {
			Projects []models.Project `json:"projects"`
		}{Projects: projects})
	},
}

var updateProjectCmd = &cobra.Command{
	Use:   "update",
	Short: "Update an existing project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := cmd.Flags().GetUint(flagID)
		if err != nil {
			return fmt.Errorf("error getting id flag: %w", err)
		}

		// Fetch the current record so unset flags keep their stored values
		// and the update carries the version we just observed.
		current, err := apiClient.GetProject(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error getting project: %w", err)
		}

		req := types.ProjectRequest{
			ID:          current.ID,
			Name:        current.Name,
			Description: current.Description,
			Owner:       current.Owner,
			Status:      string(current.Status),
			StartDate:   current.StartDate,
			EndDate:     current.EndDate,
			Version:     current.Version,
		}
		req, err = projectRequestFromFlags(cmd, req)
		if err != nil {
			return err
		}

		if err := apiClient.UpdateProject(context.Background(), id, req); err != nil {
			return fmt.Errorf("error updating project: %w", err)
		}

		fmt.Printf("Project %d updated successfully\n", id)
		return nil
	},
}

var deleteProjectCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a project",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := cmd.Flags().GetUint(flagID)
		if err != nil {
			return fmt.Errorf("error getting id flag: %w", err)
		}

		if err := apiClient.DeleteProject(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting project: %w", err)
		}

		fmt.Printf("Project %d deleted successfully\n", id)
		return nil
	},
}

// projectRequestFromFlags overlays every project flag the user set onto req.
func projectRequestFromFlags(cmd *cobra.Command, req types.ProjectRequest) (types.ProjectRequest, error) {
	stringFields := map[string]*string{
		flagName:        &req.Name,
		flagDescription: &req.Description,
		flagOwner:       &req.Owner,
		flagStatus:      &req.Status,
	}
	for flag, target := range stringFields {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		value, err := cmd.Flags().GetString(flag)
		if err != nil {
			return req, fmt.Errorf("error getting %s flag: %w", flag, err)
		}
		*target = value
	}

	dateFields := map[string]*models.Date{
		flagStartDate: &req.StartDate,
		flagEndDate:   &req.EndDate,
	}
	for flag, target := range dateFields {
		if !cmd.Flags().Changed(flag) {
			continue
		}
		value, err := cmd.Flags().GetString(flag)
		if err != nil {
			return req, fmt.Errorf("error getting %s flag: %w", flag, err)
		}
		date, err := models.ParseDate(value)
		if err != nil {
			return req, fmt.Errorf("invalid %s: %w", flag, err)
		}
		*target = date
	}

	return req, nil
}

// printJSON pretty prints the response
func printJSON(v interface{}) error {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	fmt.Println(string(prettyJSON))
	return nil
}

// GetProjectsCmd returns the projects command
func GetProjectsCmd() *cobra.Command {
	return projectsCmd
}
