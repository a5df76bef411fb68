package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"confql/pkg/cql"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the user the configured credentials authenticate as",
	RunE:  runWhoami,
}

func runWhoami(cmd *cobra.Command, args []string) error {
	_, _, client, err := setup()
	if err != nil {
		return err
	}

	ctx, cancel := commandContext(cmd)
	defer cancel()

	user, err := client.GetCurrentUser(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:       %s\n", user.DisplayName)
	if user.Username != "" {
		fmt.Fprintf(out, "Username:   %s\n", user.Username)
	}
	if user.AccountID != "" {
		fmt.Fprintf(out, "Account ID: %s\n", user.AccountID)
	}
	if user.Email != "" {
		fmt.Fprintf(out, "Email:      %s\n", user.Email)
	}
	if clause := cql.Where.Creator().IsUser(user); clause.Err() == nil {
		fmt.Fprintf(out, "CQL:        %s\n", clause)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
