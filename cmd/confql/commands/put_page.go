package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"confql/pkg/confluence"
)

var (
	putPageFile    string
	putPageTitle   string
	putPageSpace   string
	putPageParent  string
	putPageProject string
	putPageBlog    bool
)

// putPageCmd creates or updates a page from a storage-format file
var putPageCmd = &cobra.Command{
	Use:   "put-page",
	Short: "Create or update a page from a storage-format file",
	Long: `Create or update a Confluence page from a local file holding Confluence
storage-format XHTML.

The title defaults to the file name without its extension. If a page with the
title already exists in the space it is updated (bumping its version);
otherwise it is created.

Parent resolution:
  - If --parent looks numeric it is treated as a page ID
  - Otherwise it is resolved as a title in the target space.`,
	Example: `  confql put-page --space DOCS --file release-notes.xhtml
  confql put-page --project docs --file page.html --title "API" --parent "Reference"`,
	RunE: runPutPage,
}

func runPutPage(cmd *cobra.Command, args []string) error {
	if putPageFile == "" {
		return fmt.Errorf("file flag is required for put-page command")
	}

	info, err := os.Stat(putPageFile)
	if err != nil {
		return fmt.Errorf("failed to access file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory; provide a single file", putPageFile)
	}
	body, err := os.ReadFile(putPageFile)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	title := strings.TrimSpace(putPageTitle)
	if title == "" {
		base := filepath.Base(putPageFile)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	cfg, log, client, err := setup()
	if err != nil {
		return err
	}

	spaceKey, err := cfg.ResolveSpace(putPageSpace, putPageProject)
	if err != nil {
		return fmt.Errorf("space flag or --project required for put-page command: %w", err)
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	var parentID string
	if putPageParent != "" {
		if isNumeric(putPageParent) {
			parentID = putPageParent
			log.Debug("Using numeric parent page ID: %s", parentID)
		} else {
			log.Debug("Resolving parent by title: %s", putPageParent)
			parent, err := client.FindContentByTitle(ctx, spaceKey, putPageParent)
			if err != nil {
				return fmt.Errorf("failed to resolve parent page '%s': %w", putPageParent, err)
			}
			if parent == nil {
				return fmt.Errorf("parent page '%s' not found in space '%s'", putPageParent, spaceKey)
			}
			parentID = parent.ID
		}
	}

	existing, err := client.FindContentByTitle(ctx, spaceKey, title)
	if err != nil {
		return fmt.Errorf("failed to search for existing page: %w", err)
	}

	out := cmd.OutOrStdout()
	if existing != nil {
		log.Debug("Updating existing page ID=%s title=%s", existing.ID, existing.Title)
		page, err := client.UpdateContent(ctx, existing.ID, title, string(body))
		if err != nil {
			if confluence.IsContentUpdateForbidden(err) {
				return err
			}
			return fmt.Errorf("failed to update page: %w", err)
		}
		fmt.Fprintf(out, "Updated page '%s' (ID: %s) in space '%s'\n", page.Title, page.ID, spaceKey)
		return nil
	}

	contentType := "page"
	if putPageBlog {
		contentType = "blogpost"
	}
	log.Debug("Creating new %s in space %s (parent %q)", contentType, spaceKey, parentID)
	page, err := client.CreateContent(ctx, confluence.NewContent{
		Type:     contentType,
		SpaceKey: spaceKey,
		Title:    title,
		Body:     string(body),
		ParentID: parentID,
	})
	if err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}
	fmt.Fprintf(out, "Created page '%s' (ID: %s) in space '%s'\n", page.Title, page.ID, spaceKey)
	return nil
}

func init() {
	rootCmd.AddCommand(putPageCmd)

	putPageCmd.Flags().StringVarP(&putPageFile, "file", "f", "", "Path to a storage-format file (required)")
	putPageCmd.Flags().StringVarP(&putPageTitle, "title", "t", "", "Page title (defaults to the file name)")
	putPageCmd.Flags().StringVarP(&putPageSpace, "space", "s", "", "Confluence space key (can be inferred from --project)")
	putPageCmd.Flags().StringVarP(&putPageParent, "parent", "p", "", "Optional parent page title or ID")
	putPageCmd.Flags().StringVarP(&putPageProject, "project", "P", "", "Project name defined in config to infer space")
	putPageCmd.Flags().BoolVar(&putPageBlog, "blog", false, "Create a blog post instead of a page")

	if err := putPageCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("Failed to mark file flag as required: %v", err))
	}
}
