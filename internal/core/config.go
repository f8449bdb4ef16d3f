package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when --config is
// not given.
const DefaultConfigFile = "doit.yaml"

// ToolPaths overrides the binaries doit shells out to.
type ToolPaths struct {
	Vagrant      string `yaml:"vagrant,omitempty"`
	AnsibleLint  string `yaml:"ansible_lint,omitempty"`
	AnsibleVault string `yaml:"ansible_vault,omitempty"`
}

// Config is the optional doit.yaml project file. Every field may be empty;
// flags override it and built-in defaults fill whatever remains.
type Config struct {
	VagrantfilePath string    `yaml:"vagrantfile_path,omitempty"`
	PlaybookPath    string    `yaml:"playbook_path,omitempty"`
	Tools           ToolPaths `yaml:"tools,omitempty"`
}

// LoadConfig loads the project config from file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Reading user-provided config file is expected
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// LoadConfigIfPresent loads path when it exists and returns an empty config
// when it does not.
func LoadConfigIfPresent(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return LoadConfig(path)
}

// Save writes the config to file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // Config files use standard permissions
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// InitConfig writes a starter config at path. An existing file is only
// replaced when force is set.
func InitConfig(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	cfg := &Config{
		PlaybookPath: filepath.Join("provisioning", "playbook.yml"),
		Tools: ToolPaths{
			Vagrant:      "vagrant",
			AnsibleLint:  "ansible-lint",
			AnsibleVault: "ansible-vault",
		},
	}

	return cfg.Save(path)
}
