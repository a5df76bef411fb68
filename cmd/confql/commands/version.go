package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"confql/pkg/version"
)

var (
	shortVersion bool
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the version of confql along with build information such as Git
commit, build date, Go version and platform. The same details are sent to
Confluence in the User-Agent header.`,
	Example: `  confql version        # Show full version information
  confql version --short # Show only version number`,
	RunE: runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	buildInfo := version.Get()
	out := cmd.OutOrStdout()

	if shortVersion {
		fmt.Fprintln(out, buildInfo.Version)
		return nil
	}
	fmt.Fprintln(out, buildInfo.String())
	fmt.Fprintf(out, "User-Agent: %s\n", buildInfo.UserAgent())
	return nil
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&shortVersion, "short", false, "show only version number")
}
