package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FileName is the project-level config file looked up in the project dir.
	FileName = ".aemgen.yaml"
	// EnvPrefix prefixes environment overrides, e.g. AEMGEN_PATHS_STYLES.
	EnvPrefix = "AEMGEN"
)

// Paths mirrors the "paths" block of the project's package.json.
type Paths struct {
	Scripts  string `mapstructure:"scripts" yaml:"scripts,omitempty"`   // must exist at startup
	Styles   string `mapstructure:"styles" yaml:"styles,omitempty"`     // aggregate style file, must exist
	LessPath string `mapstructure:"lessPath" yaml:"lessPath,omitempty"` // style output root
	JSPath   string `mapstructure:"jsPath" yaml:"jsPath,omitempty"`     // script output root
	HTLPath  string `mapstructure:"htlPath" yaml:"htlPath,omitempty"`   // markup output root
}

// Config represents the generator settings for one project.
type Config struct {
	Paths             Paths  `mapstructure:"paths" yaml:"paths"`
	StyleExt          string `mapstructure:"styleExt" yaml:"styleExt"`
	ImportDirective   string `mapstructure:"importDirective" yaml:"importDirective"`
	TemplatesDir      string `mapstructure:"templatesDir" yaml:"templatesDir,omitempty"`
	ScriptFollowsFlag bool   `mapstructure:"scriptFollowsFlag" yaml:"scriptFollowsFlag"`
	MinVersion        string `mapstructure:"minVersion" yaml:"minVersion,omitempty"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-" yaml:"-"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		StyleExt:        "less",
		ImportDirective: "@import",
	}
}

// InvalidError is returned when the config file does not match the schema.
type InvalidError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		if issue.Path != "" {
			msgs = append(msgs, issue.Path+": "+issue.Message)
		} else {
			msgs = append(msgs, issue.Message)
		}
	}
	return fmt.Sprintf("invalid config %s: %s", e.Path, strings.Join(msgs, "; "))
}

// LoadConfig resolves the configuration for projectDir. Later sources win:
// built-in defaults, packagePaths (the package.json "paths" block), the config
// file (explicitFile or <projectDir>/.aemgen.yaml) and AEMGEN_* variables.
// A missing default config file is not an error; a missing explicit one is.
func LoadConfig(projectDir, explicitFile string, packagePaths map[string]string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("styleExt", def.StyleExt)
	v.SetDefault("importDirective", def.ImportDirective)
	v.SetDefault("templatesDir", "")
	v.SetDefault("scriptFollowsFlag", false)
	v.SetDefault("minVersion", "")
	for _, key := range PathKeys {
		v.SetDefault("paths."+key, packagePaths[key])
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath := explicitFile
	if configPath == "" {
		candidate := filepath.Join(projectDir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			configPath = candidate
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("checking config file: %w", err)
		}
	}

	if configPath != "" {
		result, err := ValidateFile(configPath)
		if err != nil {
			return Config{}, err
		}
		if !result.Valid {
			return Config{}, &InvalidError{Path: configPath, Issues: result.Issues}
		}

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Source = configPath
	return cfg, nil
}

// PathKeys lists the keys of the paths block in package.json order.
var PathKeys = []string{"scripts", "styles", "lessPath", "jsPath", "htlPath"}

// Resolve returns a copy of c with every relative path made absolute
// against projectDir.
func (c Config) Resolve(projectDir string) Config {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(projectDir, p)
	}
	c.Paths.Scripts = abs(c.Paths.Scripts)
	c.Paths.Styles = abs(c.Paths.Styles)
	c.Paths.LessPath = abs(c.Paths.LessPath)
	c.Paths.JSPath = abs(c.Paths.JSPath)
	c.Paths.HTLPath = abs(c.Paths.HTLPath)
	c.TemplatesDir = abs(c.TemplatesDir)
	return c
}

// Missing returns the path keys that are still empty.
func (c Config) Missing() []string {
	values := map[string]string{
		"scripts":  c.Paths.Scripts,
		"styles":   c.Paths.Styles,
		"lessPath": c.Paths.LessPath,
		"jsPath":   c.Paths.JSPath,
		"htlPath":  c.Paths.HTLPath,
	}
	var missing []string
	for _, key := range PathKeys {
		if values[key] == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
