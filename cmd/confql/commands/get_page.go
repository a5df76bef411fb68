package commands

import (
	"context"
	"fmt"
	"strconv"

	htmldoc "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/spf13/cobra"

	"confql/pkg/confluence"
	"confql/pkg/logger"
)

var (
	getPageSpace     string
	getPageIDOrTitle string
	getPageFormat    string
	getPageProject   string
)

// getPageCmd prints a page body in one of several formats
var getPageCmd = &cobra.Command{
	Use:   "get-page",
	Short: "Return the contents of a Confluence page",
	Long: `Fetch a Confluence page by ID or title and print its body.

A numeric --page is tried as an ID first and falls back to a title lookup.
Title lookups need a space, given with --space or inferred from --project,
confluence.space_key or the default project.`,
	Example: `  confql get-page --space DOCS --page 123456789
  confql get-page --space DOCS --page "My Page Title" --format markdown`,
	RunE: runGetPage,
}

func runGetPage(cmd *cobra.Command, args []string) error {
	if getPageIDOrTitle == "" {
		return fmt.Errorf("page flag is required for get-page command")
	}

	switch getPageFormat {
	case "", "storage", "html", "markdown":
	default:
		return fmt.Errorf("unsupported format: %s", getPageFormat)
	}

	cfg, log, client, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	page, err := resolvePage(ctx, client, log, getPageIDOrTitle, func() (string, error) {
		return cfg.ResolveSpace(getPageSpace, getPageProject)
	}, "body.storage", "body.view", "space", "version")
	if err != nil {
		return err
	}

	format := getPageFormat
	if format == "" {
		format = "storage"
	}

	content, err := generatePageOutput(page, format)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s (ID: %s)\n\n", page.Title, page.ID)
	fmt.Fprintln(out, content)
	return nil
}

// resolvePage finds content by ID when ref is numeric, otherwise (or when
// the ID lookup fails) by title in the space returned by space.
func resolvePage(ctx context.Context, client confluence.API, log *logger.Logger, ref string, space func() (string, error), expand ...string) (*confluence.Content, error) {
	if isNumeric(ref) {
		page, err := client.GetContent(ctx, ref, expand...)
		if err == nil {
			return page, nil
		}
		log.Debug("failed to get page by ID: %v", err)
	}

	spaceKey, err := space()
	if err != nil {
		return nil, err
	}

	page, err := client.FindContentByTitle(ctx, spaceKey, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to find page by title: %w", err)
	}
	if page == nil {
		return nil, fmt.Errorf("page '%s' not found in space '%s'", ref, spaceKey)
	}
	return page, nil
}

// generatePageOutput returns the page body in the requested format.
// It does not include the header line with title/ID.
func generatePageOutput(page *confluence.Content, format string) (string, error) {
	html := page.Body.View.Value
	if html == "" {
		html = page.Body.Storage.Value
	}

	switch format {
	case "storage":
		return page.Body.Storage.Value, nil
	case "html":
		return html, nil
	case "markdown":
		md, err := htmldoc.ConvertString(html)
		if err != nil {
			return html, nil // fallback to raw HTML on conversion errors
		}
		return md, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

func init() {
	rootCmd.AddCommand(getPageCmd)

	getPageCmd.Flags().StringVarP(&getPageSpace, "space", "s", "", "Confluence space key (can be inferred from --project)")
	getPageCmd.Flags().StringVarP(&getPageIDOrTitle, "page", "p", "", "Page title or ID to fetch (required)")
	getPageCmd.Flags().StringVarP(&getPageFormat, "format", "f", "storage", "Output format: storage|html|markdown")
	getPageCmd.Flags().StringVarP(&getPageProject, "project", "P", "", "Project name defined in config to infer space")

	if err := getPageCmd.MarkFlagRequired("page"); err != nil {
		panic(fmt.Sprintf("Failed to mark page flag as required: %v", err))
	}
}
