package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fuseraft/gitlab-cli/internal/access"
	"github.com/fuseraft/gitlab-cli/internal/config"
	"github.com/fuseraft/gitlab-cli/internal/gitlab"
	"github.com/fuseraft/gitlab-cli/internal/logger"
	"github.com/fuseraft/gitlab-cli/internal/model"
	"github.com/fuseraft/gitlab-cli/internal/presenter"
	"github.com/fuseraft/gitlab-cli/internal/prompt"
	"github.com/spf13/cobra"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"     // Version from git tag or "dev"
	commit    = "unknown" // Git commit hash (used in version output)
	buildTime = "unknown" // Build timestamp (used in version output)
)

// The group_access column wraps at this display width
const groupAccessColumnWidth = 40

var (
	verbose     bool   // Flag to enable verbose logging
	searchMode  bool   // Flag to enable search mode (list only, no mutation)
	projectName string // Project name filter
	groupName   string // Group name filter
	accessName  string // Access level name for share mode
	listLevels  bool   // Flag to print access levels and exit
)

var rootCmd = &cobra.Command{
	Use:   "gitlab-cli",
	Short: "Search GitLab projects and groups, and share projects with groups",
	Long: `gitlab-cli searches a GitLab instance for projects or groups by name,
and can share matched projects with a group at a chosen access level.

Search mode (--search) only lists matches and performs no mutation.
Without --search, matched projects are shared with the matched group.

Examples:
  gitlab-cli --search --project api       # List projects matching "api"
  gitlab-cli --search --group platform    # List groups matching "platform"
  gitlab-cli -p api -g platform           # Share as reporter (default)
  gitlab-cli -p api -g platform -a owner  # Share as owner (asks to confirm)
  gitlab-cli --list-access-levels         # Show valid access levels

Configuration:
  Set your GitLab URL and token in ~/.config/gitlab-cli/config.yaml or via
  environment:
    GITLAB_URL=https://gitlab.example.com
    GITLAB_PRIVATE_TOKEN=your-token-here`,
	RunE: runRoot,
	Args: cobra.NoArgs,
}

// runRoot dispatches to the search or share operation
func runRoot(cmd *cobra.Command, args []string) error {
	// Listing access levels needs neither configuration nor network
	if listLevels {
		printAccessLevels(os.Stdout)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			logger.Info("No GitLab configuration found.")
			logger.Info("Run 'gitlab-cli config' or set GITLAB_URL and GITLAB_PRIVATE_TOKEN.")
		}
		return fmt.Errorf("configuration error: %w", err)
	}

	logger.Debug("Connecting to GitLab at %s (timeout: %ds)", cfg.URL, cfg.Timeout)
	client, err := gitlab.New(cfg.URL, cfg.Token, cfg.GetTimeout())
	if err != nil {
		return fmt.Errorf("GitLab client error: %w", err)
	}

	if searchMode {
		return runSearchWithClient(client, os.Stdout, projectName, groupName)
	}
	return runShareWithClient(client, os.Stdout, prompt.New(os.Stdin, os.Stdout), projectName, groupName, accessName)
}

// printAccessLevels prints the enumerated access levels in fixed order
func printAccessLevels(out io.Writer) {
	fmt.Fprintln(out, "Access levels:")
	for _, level := range access.Levels() {
		fmt.Fprintf(out, "  %-10s = %d\n", level, level.Value())
	}
}

// runSearchWithClient handles search mode. Project search takes priority:
// when a project name is given, the group filter is ignored entirely.
func runSearchWithClient(client gitlab.GitLabClient, out io.Writer, projectName, groupName string) error {
	if projectName == "" && groupName == "" {
		fmt.Fprintln(out, "Nothing to search for.")
		return nil
	}

	if projectName != "" {
		projects, err := findProjects(client, out, projectName)
		if err != nil {
			return err
		}
		if len(projects) == 0 {
			fmt.Fprintf(out, "No projects found matching '%s'\n", projectName)
		}
		return nil
	}

	groups, err := client.SearchGroups(groupName)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Fprintf(out, "No groups found matching '%s'\n", groupName)
		return nil
	}
	fmt.Fprintf(out, "Found %d group(s) matching '%s'\n", len(groups), groupName)
	printGroupTable(out, groups)
	return nil
}

// shareFailure records one project that could not be shared
type shareFailure struct {
	project model.Project
	err     error
}

// runShareWithClient handles share mode: validate arguments, disambiguate
// the target group, confirm elevated access, then share each matched
// project. Failures are collected per project and reported in the summary
// instead of aborting the loop.
func runShareWithClient(client gitlab.GitLabClient, out io.Writer, prompter prompt.Prompter, projectName, groupName, accessName string) error {
	if projectName == "" {
		fmt.Fprintln(out, "No project name given. Use --project to specify one.")
		return nil
	}
	if groupName == "" {
		fmt.Fprintln(out, "No group name given. Use --group to specify one.")
		return nil
	}
	level, err := access.Parse(accessName)
	if err != nil {
		fmt.Fprintf(out, "Invalid access level '%s'. Use --list-access-levels to see valid levels.\n", accessName)
		return nil
	}

	projects, err := findProjects(client, out, projectName)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Fprintf(out, "No projects found matching '%s'\n", projectName)
		return nil
	}

	groups, err := client.SearchGroups(groupName)
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		fmt.Fprintf(out, "No groups found matching '%s'\n", groupName)
		return nil
	}

	group, ok, err := selectGroup(out, prompter, groups)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if level >= access.Developer {
		proceed, err := confirmElevatedAccess(out, prompter, level, group)
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	shared := 0
	var failures []shareFailure
	for _, project := range projects {
		fmt.Fprintf(out, "Sharing project '%s' (ID %d) with group '%s' as %s...\n",
			project.Name, project.ID, group.Name, level)
		if err := client.ShareProject(project.ID, group.ID, level); err != nil {
			logger.Debug("Share failed for project %d: %v", project.ID, err)
			failures = append(failures, shareFailure{project: project, err: err})
			continue
		}
		shared++
	}

	fmt.Fprintf(out, "Shared %d of %d project(s) with group '%s'\n", shared, len(projects), group.Name)
	for _, failure := range failures {
		fmt.Fprintf(out, "  failed '%s': %v\n", failure.project.Name, failure.err)
	}
	return nil
}

// selectGroup resolves the target group. A single match is used as is;
// multiple matches are listed and the user is asked for a Group ID, which
// must be one of the matched ids. Returns ok=false when selection aborts.
func selectGroup(out io.Writer, prompter prompt.Prompter, groups []model.Group) (model.Group, bool, error) {
	if len(groups) == 1 {
		return groups[0], true, nil
	}

	printGroupTable(out, groups)
	answer, err := prompter.Ask("Group ID: ")
	if err != nil {
		return model.Group{}, false, err
	}

	id, convErr := strconv.Atoi(answer)
	if convErr == nil {
		for _, group := range groups {
			if group.ID == id {
				return group, true, nil
			}
		}
	}
	fmt.Fprintln(out, "Invalid Group ID")
	return model.Group{}, false, nil
}

// confirmElevatedAccess gates DEVELOPER-and-above shares behind a y/N
// prompt. "n" declines silently, "y" proceeds, anything else aborts with a
// message.
func confirmElevatedAccess(out io.Writer, prompter prompt.Prompter, level access.Level, group model.Group) (bool, error) {
	question := fmt.Sprintf("Grant %s access to group '%s'? (y/N): ", level, group.Name)
	answer, err := prompter.Ask(question)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y":
		return true, nil
	case "n":
		// Declined, nothing to report
		return false, nil
	default:
		fmt.Fprintln(out, "Invalid choice, aborting.")
		return false, nil
	}
}

// findProjects fetches projects matching name and prints the count and
// table when the result is non-empty. The sequence is returned to the
// caller either way; the empty-result message is the caller's concern.
func findProjects(client gitlab.GitLabClient, out io.Writer, name string) ([]model.Project, error) {
	projects, err := client.SearchProjects(name)
	if err != nil {
		return nil, err
	}
	if len(projects) > 0 {
		fmt.Fprintf(out, "Found %d project(s) matching '%s'\n", len(projects), name)
		printProjectTable(out, projects)
	}
	return projects, nil
}

// printProjectTable renders id, namespace, name and the shared-group names,
// with the group access column wrapped at 40 display characters
func printProjectTable(out io.Writer, projects []model.Project) {
	rows := make([][]string, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, []string{
			strconv.Itoa(project.ID),
			project.Namespace,
			project.Name,
			project.SharedWithDisplay(),
		})
	}
	rows = presenter.WrapRows(rows, 3, groupAccessColumnWidth)
	presenter.PrintTable(out, []string{"ID", "NAMESPACE", "NAME", "GROUP ACCESS"}, rows)
}

// printGroupTable renders group ids and names
func printGroupTable(out io.Writer, groups []model.Group) {
	rows := make([][]string, 0, len(groups))
	for _, group := range groups {
		rows = append(rows, []string{strconv.Itoa(group.ID), group.Name})
	}
	presenter.PrintTable(out, []string{"ID", "NAME"}, rows)
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime)

	rootCmd.Flags().BoolVarP(&searchMode, "search", "s", false, "search mode: list matches without sharing")
	rootCmd.Flags().StringVarP(&projectName, "project", "p", "", "project name filter")
	rootCmd.Flags().StringVarP(&groupName, "group", "g", "", "group name filter")
	rootCmd.Flags().StringVarP(&accessName, "access", "a", "reporter", "access level to grant")
	rootCmd.Flags().BoolVarP(&listLevels, "list-access-levels", "l", false, "print access levels and exit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
		logger.Debug("Verbose mode enabled")
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
