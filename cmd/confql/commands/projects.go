package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"confql/internal/config"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List configured projects",
	Long: `List projects defined in the configuration file with their Confluence
space keys. The default project (default_project, or the first project when
unset) is used when a command needs a space and none was given.`,
	RunE: runProjects,
}

func runProjects(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(cfg.Projects) == 0 {
		fmt.Fprintln(out, "No projects defined (using confluence.space_key).")
		return nil
	}

	defaultName := cfg.DefaultProject
	if defaultName == "" {
		defaultName = cfg.Projects[0].Name
	}

	projects := make([]config.ProjectConfig, len(cfg.Projects))
	copy(projects, cfg.Projects)
	sort.SliceStable(projects, func(i, j int) bool { return projects[i].Name < projects[j].Name })

	fmt.Fprintln(out, "Configured Projects:")
	fmt.Fprintln(out)
	for _, p := range projects {
		defaultMarker := ""
		if p.Name == defaultName {
			defaultMarker = " (default)"
		}
		fmt.Fprintf(out, "- %s%s\n  space: %s\n", p.Name, defaultMarker, p.SpaceKey)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}
