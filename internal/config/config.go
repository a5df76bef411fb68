package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"confql/pkg/confluence"
)

// DefaultSearchLimit is used when search.limit is unset.
const DefaultSearchLimit = 25

type Config struct {
	Confluence     ConfluenceConfig        `yaml:"confluence"`
	Expand         confluence.ExpandConfig `yaml:"expand,omitempty"`
	Search         SearchConfig            `yaml:"search,omitempty"`
	Projects       []ProjectConfig         `yaml:"projects,omitempty"`
	DefaultProject string                  `yaml:"default_project,omitempty"`
}

type ConfluenceConfig struct {
	BaseURL  string `yaml:"base_url"`
	Username string `yaml:"username"`
	APIToken string `yaml:"api_token"`
	SpaceKey string `yaml:"space_key,omitempty"`
}

type SearchConfig struct {
	Limit int `yaml:"limit,omitempty"`
}

// ProjectConfig names a space so commands can refer to it with --project.
type ProjectConfig struct {
	Name     string `yaml:"name"`
	SpaceKey string `yaml:"space_key"`
}

func Load(path string) (*Config, error) {
	resolved, err := ResolveConfigPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate checks the connection settings. The space key is optional here
// because commands can take it from a flag or a project.
func (c *Config) Validate() error {
	if c.Confluence.BaseURL == "" {
		return fmt.Errorf("confluence.base_url is required")
	}
	if !strings.HasPrefix(c.Confluence.BaseURL, "http://") && !strings.HasPrefix(c.Confluence.BaseURL, "https://") {
		return fmt.Errorf("confluence.base_url must start with http:// or https://")
	}
	if c.Confluence.Username == "" {
		return fmt.Errorf("confluence.username is required")
	}
	if c.Confluence.APIToken == "" {
		return fmt.Errorf("confluence.api_token is required")
	}
	if c.Search.Limit < 0 {
		return fmt.Errorf("search.limit must not be negative")
	}

	seen := make(map[string]bool, len(c.Projects))
	for i, p := range c.Projects {
		if p.Name == "" {
			return fmt.Errorf("projects[%d].name is required", i)
		}
		if p.SpaceKey == "" {
			return fmt.Errorf("projects[%d].space_key is required", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate project name '%s'", p.Name)
		}
		seen[p.Name] = true
	}
	if c.DefaultProject != "" && !seen[c.DefaultProject] {
		return fmt.Errorf("default_project '%s' is not defined in projects", c.DefaultProject)
	}
	return nil
}

// ResolveConfigPath expands a leading ~ to the user's home directory.
func ResolveConfigPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// SelectProject makes the named project's space the active space key.
func (c *Config) SelectProject(name string) error {
	for _, p := range c.Projects {
		if p.Name == name {
			c.Confluence.SpaceKey = p.SpaceKey
			return nil
		}
	}
	return fmt.Errorf("project '%s' not found", name)
}

// ApplyDefaultProject selects default_project, or the first project when
// it is unset. It reports whether a project was applied.
func (c *Config) ApplyDefaultProject() bool {
	if len(c.Projects) == 0 {
		return false
	}
	if c.DefaultProject != "" {
		return c.SelectProject(c.DefaultProject) == nil
	}
	c.Confluence.SpaceKey = c.Projects[0].SpaceKey
	return true
}

// ResolveSpace picks the space key for a command: an explicit space wins,
// then the named project, then the configured space key, then the default
// project.
func (c *Config) ResolveSpace(space, project string) (string, error) {
	if space != "" {
		return space, nil
	}
	if project != "" {
		if err := c.SelectProject(project); err != nil {
			return "", fmt.Errorf("failed to select project: %w", err)
		}
		return c.Confluence.SpaceKey, nil
	}
	if c.Confluence.SpaceKey != "" {
		return c.Confluence.SpaceKey, nil
	}
	if c.ApplyDefaultProject() {
		return c.Confluence.SpaceKey, nil
	}
	return "", fmt.Errorf("no space given: use --space, --project or set confluence.space_key")
}

// ExpandConfig merges the configured expansions over the client defaults.
// A group left empty in the file keeps its default.
func (c *Config) ExpandConfig() confluence.ExpandConfig {
	expand := confluence.DefaultExpandConfig()
	if len(c.Expand.Content) > 0 {
		expand.Content = c.Expand.Content
	}
	if len(c.Expand.Space) > 0 {
		expand.Space = c.Expand.Space
	}
	if len(c.Expand.User) > 0 {
		expand.User = c.Expand.User
	}
	if len(c.Expand.Attachment) > 0 {
		expand.Attachment = c.Expand.Attachment
	}
	return expand
}

// SearchLimit returns search.limit or DefaultSearchLimit.
func (c *Config) SearchLimit() int {
	if c.Search.Limit > 0 {
		return c.Search.Limit
	}
	return DefaultSearchLimit
}
