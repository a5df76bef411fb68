package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"confql/pkg/confluence"
)

var (
	spacesType  string
	spacesLimit int
	spacesStart int
	spacesKeys  []string
)

var spacesCmd = &cobra.Command{
	Use:   "spaces",
	Short: "List Confluence spaces",
	Example: `  confql spaces
  confql spaces --type global --limit 50
  confql spaces --key DOCS --key OPS`,
	RunE: runSpaces,
}

func runSpaces(cmd *cobra.Command, args []string) error {
	switch spacesType {
	case "", "global", "personal":
	default:
		return fmt.Errorf("unsupported space type: %s", spacesType)
	}

	_, _, client, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	page, err := client.ListSpaces(ctx, confluence.ListSpacesOptions{
		Start: spacesStart,
		Limit: spacesLimit,
		Type:  spacesType,
		Keys:  spacesKeys,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(page.Results) == 0 {
		fmt.Fprintln(out, "No spaces found.")
		return nil
	}
	for _, s := range page.Results {
		fmt.Fprintf(out, "🏢 %-12s %s\n", s.Key, s.Name)
	}
	if page.HasNext() {
		fmt.Fprintf(out, "\nMore spaces available: use --start %d\n", page.Start+len(page.Results))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(spacesCmd)

	spacesCmd.Flags().StringVar(&spacesType, "type", "", "Space type: global|personal")
	spacesCmd.Flags().IntVar(&spacesLimit, "limit", 25, "Maximum number of spaces")
	spacesCmd.Flags().IntVar(&spacesStart, "start", 0, "Index of the first space")
	spacesCmd.Flags().StringSliceVar(&spacesKeys, "key", nil, "Only list these space keys (repeatable)")
}
