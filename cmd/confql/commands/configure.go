package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"confql/internal/config"
)

type configureOptions struct {
	sets           []string
	addProjects    []string
	removeProjects []string
	yes            bool
	print          bool
	nonInteractive bool
}

var configureOpts configureOptions

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Write the configuration file, by prompts or by flags",
	Long: `Create or edit the confql configuration file (config.yaml by default).

Without --non-interactive the connection, projects and search defaults are
prompted for, using values from the existing file and from flags as
defaults. Flags are applied in order: --set, then --add-project, then
--remove-project. The result is validated before it is printed (--print)
or saved.

Keys accepted by --set:
  ` + strings.Join(configKeyNames(), ", ") + `

expand.* values are comma separated lists.`,
	Example: `  confql configure
  confql configure --non-interactive --set confluence.base_url=https://acme.atlassian.net/wiki \
    --set confluence.username=me@acme.com --set confluence.api_token=$TOKEN
  confql configure --non-interactive --add-project "name=docs,space_key=DOCS" --print`,
	RunE: runConfigure,
}

// configKeys maps each --set key onto the config field it writes.
var configKeys = map[string]func(cfg *config.Config, value string) error{
	"confluence.base_url":  func(c *config.Config, v string) error { c.Confluence.BaseURL = v; return nil },
	"confluence.username":  func(c *config.Config, v string) error { c.Confluence.Username = v; return nil },
	"confluence.api_token": func(c *config.Config, v string) error { c.Confluence.APIToken = v; return nil },
	"confluence.space_key": func(c *config.Config, v string) error { c.Confluence.SpaceKey = v; return nil },
	"default_project":      func(c *config.Config, v string) error { c.DefaultProject = v; return nil },
	"search.limit": func(c *config.Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("not a number: %q", v)
		}
		c.Search.Limit = n
		return nil
	},
	"expand.content":    func(c *config.Config, v string) error { c.Expand.Content = splitList(v); return nil },
	"expand.space":      func(c *config.Config, v string) error { c.Expand.Space = splitList(v); return nil },
	"expand.user":       func(c *config.Config, v string) error { c.Expand.User = splitList(v); return nil },
	"expand.attachment": func(c *config.Config, v string) error { c.Expand.Attachment = splitList(v); return nil },
}

func configKeyNames() []string {
	names := make([]string, 0, len(configKeys))
	for k := range configKeys {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

func runConfigure(cmd *cobra.Command, args []string) error {
	opts := configureOpts
	out := cmd.OutOrStdout()

	path, err := config.ResolveConfigPath(configFile)
	if err != nil {
		return err
	}
	cfg, existed, err := readDraftConfig(path)
	if err != nil {
		return err
	}

	for _, s := range opts.sets {
		if err := applySet(cfg, s); err != nil {
			return err
		}
	}
	for _, def := range opts.addProjects {
		p, err := parseProjectDefinition(def)
		if err != nil {
			return err
		}
		upsertProject(cfg, p)
	}
	applyRemoveProjects(cfg, opts.removeProjects)

	interactive := !opts.nonInteractive
	if interactive {
		if err := interactiveEdit(out, cfg, existed); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}

	if opts.print {
		_, err := out.Write(data)
		return err
	}

	if interactive && !opts.yes {
		save := false
		if err := survey.AskOne(&survey.Confirm{Message: "Save configuration to " + path + "?", Default: true}, &save); err != nil {
			return err
		}
		if !save {
			fmt.Fprintln(out, "Aborted (no changes saved).")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Fprintf(out, "Configuration saved to %s\n", path)
	return nil
}

// readDraftConfig parses path without validating it, so a half-finished
// file can still be edited. A missing file yields an empty config.
func readDraftConfig(path string) (cfg *config.Config, existed bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &config.Config{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg = &config.Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, true, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, true, nil
}

func applySet(cfg *config.Config, assignment string) error {
	key, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("invalid --set value '%s' (expected key=value)", assignment)
	}
	key = strings.TrimSpace(key)
	set, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unsupported key '%s' (supported: %s)", key, strings.Join(configKeyNames(), ", "))
	}
	if err := set(cfg, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseProjectDefinition reads "name=docs,space_key=DOCS".
func parseProjectDefinition(def string) (config.ProjectConfig, error) {
	var p config.ProjectConfig
	for _, pair := range splitList(def) {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return p, fmt.Errorf("invalid project token '%s' (expected key=value)", pair)
		}
		switch strings.TrimSpace(k) {
		case "name":
			p.Name = strings.TrimSpace(v)
		case "space_key":
			p.SpaceKey = strings.TrimSpace(v)
		default:
			return p, fmt.Errorf("unknown project field '%s'", k)
		}
	}
	if p.Name == "" || p.SpaceKey == "" {
		return p, fmt.Errorf("invalid project '%s': project requires name and space_key", def)
	}
	return p, nil
}

func upsertProject(cfg *config.Config, p config.ProjectConfig) {
	i := slices.IndexFunc(cfg.Projects, func(existing config.ProjectConfig) bool { return existing.Name == p.Name })
	if i >= 0 {
		cfg.Projects[i] = p
		return
	}
	cfg.Projects = append(cfg.Projects, p)
}

func applyRemoveProjects(cfg *config.Config, names []string) {
	if len(names) == 0 {
		return
	}
	cfg.Projects = slices.DeleteFunc(cfg.Projects, func(p config.ProjectConfig) bool {
		return slices.Contains(names, p.Name)
	})
	if slices.Contains(names, cfg.DefaultProject) {
		cfg.DefaultProject = ""
	}
}

func interactiveEdit(out io.Writer, cfg *config.Config, existed bool) error {
	if existed {
		fmt.Fprintln(out, "Editing existing configuration. Press Enter to keep a value.")
	} else {
		fmt.Fprintln(out, "Creating a new configuration. Press Enter to accept defaults.")
	}
	for _, step := range []func(*config.Config) error{promptConnection, promptProjects, promptSearch} {
		if err := step(cfg); err != nil {
			return err
		}
	}
	return nil
}

func promptConnection(cfg *config.Config) error {
	c := &cfg.Confluence
	if err := askString("Confluence base URL", &c.BaseURL, true); err != nil {
		return err
	}
	if err := askString("Username (email on Cloud)", &c.Username, true); err != nil {
		return err
	}

	token := ""
	tokenPrompt := &survey.Password{Message: "API token (blank keeps the current one)"}
	if c.APIToken == "" {
		tokenPrompt.Message = "API token"
	}
	if err := survey.AskOne(tokenPrompt, &token); err != nil {
		return err
	}
	if token != "" {
		c.APIToken = token
	}

	return askString("Space key used when no project is given (optional)", &c.SpaceKey, false)
}

// askString prompts with *value as the default and stores the answer back.
func askString(message string, value *string, required bool) error {
	var opts []survey.AskOpt
	if required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	return survey.AskOne(&survey.Input{Message: message, Default: *value}, value, opts...)
}

func promptProjects(cfg *config.Config) error {
	for {
		more := false
		msg := fmt.Sprintf("Add or replace a project? (%d defined)", len(cfg.Projects))
		if err := survey.AskOne(&survey.Confirm{Message: msg}, &more); err != nil {
			return err
		}
		if !more {
			break
		}

		var p config.ProjectConfig
		if err := askString("Project name", &p.Name, true); err != nil {
			return err
		}
		if err := askString("Space key", &p.SpaceKey, true); err != nil {
			return err
		}
		upsertProject(cfg, p)
	}

	if len(cfg.Projects) < 2 {
		return nil
	}
	names := make([]string, len(cfg.Projects))
	for i, p := range cfg.Projects {
		names[i] = p.Name
	}
	current := cfg.DefaultProject
	if !slices.Contains(names, current) {
		current = names[0]
	}
	return survey.AskOne(&survey.Select{Message: "Default project", Options: names, Default: current}, &cfg.DefaultProject)
}

func promptSearch(cfg *config.Config) error {
	answer := strconv.Itoa(cfg.SearchLimit())
	positive := func(v interface{}) error {
		if n, err := strconv.Atoi(fmt.Sprint(v)); err != nil || n <= 0 {
			return errors.New("enter a positive number")
		}
		return nil
	}
	if err := survey.AskOne(&survey.Input{Message: "Search result limit", Default: answer}, &answer, survey.WithValidator(positive)); err != nil {
		return err
	}
	n, _ := strconv.Atoi(answer)
	if n == config.DefaultSearchLimit {
		n = 0
	}
	cfg.Search.Limit = n
	return nil
}

func init() {
	rootCmd.AddCommand(configureCmd)

	f := configureCmd.Flags()
	f.StringArrayVar(&configureOpts.sets, "set", nil, "Set a key, e.g. confluence.base_url=https://acme.atlassian.net/wiki (repeatable)")
	f.StringArrayVar(&configureOpts.addProjects, "add-project", nil, `Add or replace a project, e.g. "name=docs,space_key=DOCS" (repeatable)`)
	f.StringArrayVar(&configureOpts.removeProjects, "remove-project", nil, "Remove a project by name (repeatable)")
	f.BoolVar(&configureOpts.yes, "yes", false, "Save without asking")
	f.BoolVar(&configureOpts.print, "print", false, "Print the resulting YAML instead of saving it")
	f.BoolVar(&configureOpts.nonInteractive, "non-interactive", false, "Skip prompts and use only flags")
}
