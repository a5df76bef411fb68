package config

import "testing"

func newProjectsConfig() *Config {
	return &Config{
		Confluence: ConfluenceConfig{BaseURL: "https://example", Username: "u", APIToken: "t"},
		Projects: []ProjectConfig{
			{Name: "alpha", SpaceKey: "ALPHA"},
			{Name: "beta", SpaceKey: "BETA"},
		},
	}
}

func TestSelectProject(t *testing.T) {
	cfg := newProjectsConfig()

	if err := cfg.SelectProject("beta"); err != nil {
		t.Fatalf("expected to select beta: %v", err)
	}
	if cfg.Confluence.SpaceKey != "BETA" {
		t.Fatalf("expected space key BETA got %s", cfg.Confluence.SpaceKey)
	}

	if err := cfg.SelectProject("missing"); err == nil {
		t.Fatalf("expected error selecting missing project")
	}
}

func TestApplyDefaultProject(t *testing.T) {
	cfg := newProjectsConfig()
	if !cfg.ApplyDefaultProject() {
		t.Fatalf("expected default project applied")
	}
	if cfg.Confluence.SpaceKey != "ALPHA" {
		t.Fatalf("expected first project applied; got space=%s", cfg.Confluence.SpaceKey)
	}

	named := newProjectsConfig()
	named.DefaultProject = "beta"
	if !named.ApplyDefaultProject() || named.Confluence.SpaceKey != "BETA" {
		t.Fatalf("expected default_project beta applied; got space=%s", named.Confluence.SpaceKey)
	}

	// no projects case
	empty := &Config{Confluence: ConfluenceConfig{BaseURL: "https://e", Username: "u", APIToken: "t"}}
	if empty.ApplyDefaultProject() {
		t.Fatalf("expected false when no projects present")
	}
}

func TestResolveSpace(t *testing.T) {
	tests := []struct {
		name     string
		spaceKey string
		space    string
		project  string
		want     string
		wantErr  bool
	}{
		{name: "flag wins", spaceKey: "CFG", space: "FLAG", project: "beta", want: "FLAG"},
		{name: "project", spaceKey: "CFG", project: "beta", want: "BETA"},
		{name: "configured key", spaceKey: "CFG", want: "CFG"},
		{name: "default project", want: "ALPHA"},
		{name: "unknown project", project: "nope", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newProjectsConfig()
			cfg.Confluence.SpaceKey = tt.spaceKey
			got, err := cfg.ResolveSpace(tt.space, tt.project)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s got %s", tt.want, got)
			}
		})
	}

	bare := &Config{}
	if _, err := bare.ResolveSpace("", ""); err == nil {
		t.Fatalf("expected error without any space source")
	}
}
