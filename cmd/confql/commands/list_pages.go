package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"confql/pkg/confluence"
)

var (
	space       string
	parentPage  string
	listProject string
)

// listPagesCmd represents the list-pages command
var listPagesCmd = &cobra.Command{
	Use:   "list-pages",
	Short: "List page hierarchy from a Confluence space",
	Long: `List page hierarchy from a Confluence space with visual tree formatting:
  🏢 Space indicators
  📁 Folders (pages with children)
  📄 Pages (leaf nodes)

The whole space is fetched with one CQL search and arranged by ancestry.
You can optionally specify a parent page to start the hierarchy from.`,
	Example: `  confql list-pages --space DOCS                     # List all pages in space
  confql list-pages --space DOCS --parent "API"      # List pages under parent
  confql list-pages --project docs -v                # Space from project, verbose`,
	RunE: runListPages,
}

func runListPages(cmd *cobra.Command, args []string) error {
	cfg, log, client, err := setup()
	if err != nil {
		return err
	}

	spaceKey, err := cfg.ResolveSpace(space, listProject)
	if err != nil {
		return fmt.Errorf("space flag or --project required for list-pages command: %w", err)
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	log.Debug("Fetching page hierarchy for space %s", spaceKey)
	pages, err := client.GetPageHierarchy(ctx, spaceKey, parentPage)
	if err != nil {
		return fmt.Errorf("failed to get page hierarchy: %w", err)
	}

	out := cmd.OutOrStdout()
	if parentPage != "" {
		fmt.Fprintf(out, "🏢 Space '%s' → 📁 '%s':\n\n", spaceKey, parentPage)
	} else {
		fmt.Fprintf(out, "🏢 Space '%s':\n\n", spaceKey)
	}

	printPageTree(out, pages, 0, true)
	return nil
}

func printPageTree(w io.Writer, pages []confluence.PageInfo, indent int, isRoot bool) {
	for i, page := range pages {
		isLast := i == len(pages)-1

		prefix := ""
		if !isRoot {
			prefix = strings.Repeat("  ", indent)
			if isLast {
				prefix += "└── "
			} else {
				prefix += "├── "
			}
		}

		icon := "📄"
		if len(page.Children) > 0 {
			icon = "📁"
		}

		if isRoot {
			fmt.Fprintf(w, "%s %s (ID: %s)\n", icon, page.Title, page.ID)
		} else {
			fmt.Fprintf(w, "%s%s %s (ID: %s)\n", prefix, icon, page.Title, page.ID)
		}

		if len(page.Children) > 0 {
			printPageTree(w, page.Children, indent+1, false)
		}
	}
}

func init() {
	rootCmd.AddCommand(listPagesCmd)

	listPagesCmd.Flags().StringVarP(&space, "space", "s", "", "Confluence space key (can be inferred from --project)")
	listPagesCmd.Flags().StringVarP(&parentPage, "parent", "p", "", "Parent page title to start from (optional)")
	listPagesCmd.Flags().StringVarP(&listProject, "project", "P", "", "Project name defined in config to infer space")
}
