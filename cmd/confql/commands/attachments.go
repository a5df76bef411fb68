package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"confql/pkg/confluence"
	"confql/pkg/logger"
)

var (
	attachPage    string
	attachSpace   string
	attachProject string
	attachFiles   []string
	attachID      string
	attachOutput  string
)

var attachmentsCmd = &cobra.Command{
	Use:   "attachments",
	Short: "List, upload and download page attachments",
	Long: `Work with the attachments of a page. The page is given with --page as an ID
or a title; titles are looked up in the space from --space or --project.`,
}

var attachmentsListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the attachments of a page",
	Example: `  confql attachments list --space DOCS --page "Architecture"`,
	RunE:    runAttachmentsList,
}

var attachmentsUploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Attach files to a page",
	Long: `Upload one or more files to a page. A file whose name matches an existing
attachment replaces it as a new version.`,
	Example: `  confql attachments upload --page 123456 --file diagram.png --file notes.pdf`,
	RunE:    runAttachmentsUpload,
}

var attachmentsDownloadCmd = &cobra.Command{
	Use:     "download",
	Short:   "Download an attachment",
	Example: `  confql attachments download --page 123456 --id att789 --output diagram.png`,
	RunE:    runAttachmentsDownload,
}

func attachmentTarget(cmd *cobra.Command) (*logger.Logger, confluence.API, *confluence.Content, error) {
	if attachPage == "" {
		return nil, nil, nil, fmt.Errorf("page flag is required for attachments commands")
	}
	cfg, log, client, err := setup()
	if err != nil {
		return nil, nil, nil, err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	page, err := resolvePage(ctx, client, log, attachPage, func() (string, error) {
		return cfg.ResolveSpace(attachSpace, attachProject)
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return log, client, page, nil
}

func runAttachmentsList(cmd *cobra.Command, args []string) error {
	_, client, page, err := attachmentTarget(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	attachments, err := client.ListAttachments(ctx, page.ID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(attachments) == 0 {
		fmt.Fprintf(out, "No attachments on '%s'.\n", page.Title)
		return nil
	}
	fmt.Fprintf(out, "Attachments on '%s' (ID: %s):\n\n", page.Title, page.ID)
	for _, a := range attachments {
		mediaType := a.Extensions.MediaType
		if mediaType == "" {
			mediaType = a.Metadata.MediaType
		}
		fmt.Fprintf(out, "📎 %s (ID: %s, v%d", a.Title, a.ID, a.Version.Number)
		if mediaType != "" {
			fmt.Fprintf(out, ", %s", mediaType)
		}
		if a.Extensions.FileSize > 0 {
			fmt.Fprintf(out, ", %d bytes", a.Extensions.FileSize)
		}
		fmt.Fprintln(out, ")")
	}
	return nil
}

func runAttachmentsUpload(cmd *cobra.Command, args []string) error {
	files := append(append([]string(nil), attachFiles...), args...)
	if len(files) == 0 {
		return fmt.Errorf("file flag is required for attachments upload")
	}
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			return fmt.Errorf("failed to access file: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("%s is a directory; provide files", f)
		}
	}

	log, client, page, err := attachmentTarget(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	out := cmd.OutOrStdout()
	for _, f := range files {
		log.Debug("Uploading %s to page %s", f, page.ID)
		att, err := client.UploadAttachment(ctx, page.ID, f)
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", f, err)
		}
		fmt.Fprintf(out, "Uploaded '%s' (ID: %s) to '%s'\n", att.Title, att.ID, page.Title)
	}
	return nil
}

func runAttachmentsDownload(cmd *cobra.Command, args []string) error {
	if attachID == "" {
		return fmt.Errorf("id flag is required for attachments download")
	}

	_, client, page, err := attachmentTarget(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	var w io.Writer = cmd.OutOrStdout()
	if attachOutput != "" && attachOutput != "-" {
		f, err := os.Create(attachOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := client.DownloadAttachment(ctx, page.ID, attachID, w); err != nil {
		return err
	}
	if attachOutput != "" && attachOutput != "-" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved attachment %s to %s\n", attachID, attachOutput)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(attachmentsCmd)
	attachmentsCmd.AddCommand(attachmentsListCmd, attachmentsUploadCmd, attachmentsDownloadCmd)

	attachmentsCmd.PersistentFlags().StringVarP(&attachPage, "page", "p", "", "Page title or ID (required)")
	attachmentsCmd.PersistentFlags().StringVarP(&attachSpace, "space", "s", "", "Confluence space key for title lookups")
	attachmentsCmd.PersistentFlags().StringVarP(&attachProject, "project", "P", "", "Project name defined in config to infer space")

	attachmentsUploadCmd.Flags().StringArrayVarP(&attachFiles, "file", "f", nil, "File to upload (repeatable)")
	attachmentsDownloadCmd.Flags().StringVar(&attachID, "id", "", "Attachment ID (required)")
	attachmentsDownloadCmd.Flags().StringVarP(&attachOutput, "output", "o", "", "Output file (default stdout)")
}
