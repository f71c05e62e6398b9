package gitlab

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fuseraft/gitlab-cli/internal/access"
	"github.com/fuseraft/gitlab-cli/internal/logger"
	"github.com/fuseraft/gitlab-cli/internal/model"
	"github.com/xanzy/go-gitlab"
)

// Projects are fetched with this page size, consuming every page
const projectPageSize = 20

// GitLabClient defines the interface for GitLab API operations
// This interface enables mocking in tests while maintaining production functionality
//
//nolint:revive // GitLabClient is intentional - distinguishes interface from concrete Client struct
type GitLabClient interface {
	SearchProjects(name string) ([]model.Project, error)
	SearchGroups(name string) ([]model.Group, error)
	ShareProject(projectID, groupID int, level access.Level) error
	TestConnection() error
}

// Client wraps the GitLab API client and implements GitLabClient interface
type Client struct {
	client *gitlab.Client
}

// New creates a new GitLab client with timeout
func New(url, token string, timeout time.Duration) (*Client, error) {
	httpClient := &http.Client{
		Timeout: timeout,
	}

	client, err := gitlab.NewClient(
		token,
		gitlab.WithBaseURL(url),
		gitlab.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}

	return &Client{client: client}, nil
}

// SearchProjects fetches all projects matching name via the server-side
// search filter, page by page, preserving API return order.
func (c *Client) SearchProjects(name string) ([]model.Project, error) {
	opt := &gitlab.ListProjectsOptions{
		ListOptions: gitlab.ListOptions{
			PerPage: projectPageSize,
			Page:    1,
		},
		Search: gitlab.Ptr(name),
	}

	var result []model.Project
	for {
		projects, resp, err := c.client.Projects.ListProjects(opt)
		if err != nil {
			return nil, fmt.Errorf("failed to list projects (page %d): %w", opt.Page, err)
		}

		for _, project := range projects {
			namespace := ""
			if project.Namespace != nil {
				namespace = project.Namespace.Name
			}

			var sharedWith []string
			for _, shared := range project.SharedWithGroups {
				sharedWith = append(sharedWith, shared.GroupName)
			}

			result = append(result, model.Project{
				ID:         project.ID,
				Name:       project.Name,
				Namespace:  namespace,
				SharedWith: sharedWith,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opt.Page = resp.NextPage
	}

	logger.Debug("Project search %q matched %d project(s)", name, len(result))
	return result, nil
}

// SearchGroups searches groups by name. Single call, no pagination loop.
func (c *Client) SearchGroups(name string) ([]model.Group, error) {
	groups, _, err := c.client.Groups.SearchGroup(name)
	if err != nil {
		return nil, fmt.Errorf("failed to search groups: %w", err)
	}

	var result []model.Group
	for _, group := range groups {
		result = append(result, model.Group{
			ID:   group.ID,
			Name: group.Name,
		})
	}

	logger.Debug("Group search %q matched %d group(s)", name, len(result))
	return result, nil
}

// ShareProject shares the project with the group at the given access level
func (c *Client) ShareProject(projectID, groupID int, level access.Level) error {
	opt := &gitlab.ShareWithGroupOptions{
		GroupID:     gitlab.Ptr(groupID),
		GroupAccess: gitlab.Ptr(gitlab.AccessLevelValue(level.Value())),
	}

	_, err := c.client.Projects.ShareProjectWithGroup(projectID, opt)
	if err != nil {
		return fmt.Errorf("failed to share project %d with group %d: %w", projectID, groupID, err)
	}
	return nil
}

// TestConnection tests the connection to GitLab by fetching current user
func (c *Client) TestConnection() error {
	_, _, err := c.client.Users.CurrentUser()
	if err != nil {
		return fmt.Errorf("failed to connect to GitLab: %w", err)
	}
	return nil
}
