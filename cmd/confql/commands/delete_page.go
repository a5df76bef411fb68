package commands

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

var (
	deletePageRef     string
	deletePageSpace   string
	deletePageProject string
	deletePageYes     bool
)

var deletePageCmd = &cobra.Command{
	Use:   "delete-page",
	Short: "Delete a Confluence page",
	Long: `Delete a page by ID or title. Confluence moves it to the space trash.
You are asked to confirm unless --yes is given.`,
	Example: `  confql delete-page --space DOCS --page "Old Draft"
  confql delete-page --page 123456 --yes`,
	RunE: runDeletePage,
}

// confirmDelete is swapped out in tests.
var confirmDelete = func(message string) (bool, error) {
	confirm := false
	err := survey.AskOne(&survey.Confirm{Message: message, Default: false}, &confirm)
	return confirm, err
}

func runDeletePage(cmd *cobra.Command, args []string) error {
	if deletePageRef == "" {
		return fmt.Errorf("page flag is required for delete-page command")
	}

	cfg, log, client, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	page, err := resolvePage(ctx, client, log, deletePageRef, func() (string, error) {
		return cfg.ResolveSpace(deletePageSpace, deletePageProject)
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !deletePageYes {
		ok, err := confirmDelete(fmt.Sprintf("Delete '%s' (ID: %s)?", page.Title, page.ID))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Aborted (nothing deleted).")
			return nil
		}
	}

	if err := client.DeleteContent(ctx, page.ID); err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted page '%s' (ID: %s)\n", page.Title, page.ID)
	return nil
}

func init() {
	rootCmd.AddCommand(deletePageCmd)

	deletePageCmd.Flags().StringVarP(&deletePageRef, "page", "p", "", "Page title or ID to delete (required)")
	deletePageCmd.Flags().StringVarP(&deletePageSpace, "space", "s", "", "Confluence space key (can be inferred from --project)")
	deletePageCmd.Flags().StringVarP(&deletePageProject, "project", "P", "", "Project name defined in config to infer space")
	deletePageCmd.Flags().BoolVar(&deletePageYes, "yes", false, "Delete without asking for confirmation")
}
