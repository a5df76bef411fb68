package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"confql/internal/config"
	"confql/pkg/confluence"
	"confql/pkg/logger"
)

const testConfigYAML = `confluence:
  base_url: http://example
  username: u
  api_token: t
  space_key: DOCS
search:
  limit: 10
projects:
  - name: ops
    space_key: OPS
`

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(data), 0600); err != nil {
		t.Fatalf("failed writing config: %v", err)
	}
	return p
}

// withMockClient points the command factory at mock for the duration of
// the test.
func withMockClient(t *testing.T, mock *confluence.MockClient) {
	t.Helper()
	orig := newConfluenceClient
	newConfluenceClient = func(*config.Config, *logger.Logger) confluence.API { return mock }
	t.Cleanup(func() { newConfluenceClient = orig })
}

// resetFlags restores every flag of cmd and its children to its default,
// since cobra keeps flag values on the shared command tree between runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// helper run command with args capturing output/error
func runCmdForTest(t *testing.T, args []string) (stdout string, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}
