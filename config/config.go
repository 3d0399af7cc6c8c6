package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file looked up next to the
// repository when no --config flag is given.
const DefaultConfigFile = "gitmaj.yml"

// Configuration represents the YAML configuration file structure
type Configuration struct {
	Repo        string `yaml:"repo"`
	Remote      string `yaml:"remote"`
	Branch      string `yaml:"branch"`
	Prefix      string `yaml:"prefix"`
	Pause       bool   `yaml:"pause"`
	Journal     bool   `yaml:"journal"`
	JournalPath string `yaml:"journal_path"`
	Debug       bool   `yaml:"debug"`
	LogFile     string `yaml:"log_file"`
}

// New creates a Configuration with default values
func New() *Configuration {
	return &Configuration{
		Remote:  "origin",
		Branch:  "main",
		Prefix:  "MAJ",
		Pause:   true,
		Journal: true,
	}
}

// ReadConfig reads and parses the configuration file. A missing file is not
// an error: the defaults apply and flags or environment variables can still
// override them.
func ReadConfig(configPath string) (*Configuration, error) {
	config := New()

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %v", err)
	}

	// Read the file as plain text first
	data, err := os.ReadFile(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	// Convert content to string
	content := string(data)

	// On Windows, ensure backslashes in paths are properly handled
	// by doubling them in the YAML content before parsing
	if filepath.Separator == '\\' {
		// Use regex to find paths in the format "X:\path\to\something"
		re := regexp.MustCompile(`"([A-Za-z]:(?:\\[^"\\]+)+)"`)
		content = re.ReplaceAllStringFunc(content, func(match string) string {
			// Remove the surrounding quotes
			path := match[1 : len(match)-1]
			// Convert to forward slashes which YAML handles better
			normalizedPath := filepath.ToSlash(path)
			// Return with quotes
			return `"` + normalizedPath + `"`
		})
	}

	// Now parse the modified content as YAML
	if err := yaml.Unmarshal([]byte(content), config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	return config, nil
}

// LoadFromEnvironment overrides configuration values from GITMAJ_* variables
func (c *Configuration) LoadFromEnvironment() {
	c.Repo = getEnvString("GITMAJ_REPO", c.Repo)
	c.Remote = getEnvString("GITMAJ_REMOTE", c.Remote)
	c.Branch = getEnvString("GITMAJ_BRANCH", c.Branch)
	c.Prefix = getEnvString("GITMAJ_PREFIX", c.Prefix)
	c.Pause = getEnvBool("GITMAJ_PAUSE", c.Pause)
	c.Journal = getEnvBool("GITMAJ_JOURNAL", c.Journal)
	c.JournalPath = getEnvString("GITMAJ_JOURNAL_PATH", c.JournalPath)
	c.Debug = getEnvBool("GITMAJ_DEBUG", c.Debug)
	c.LogFile = getEnvString("GITMAJ_LOG_FILE", c.LogFile)
}

// Finalize resolves the repository path and fills in derived defaults.
// It must be called after all other configuration sources are applied.
func (c *Configuration) Finalize() error {
	if c.Repo == "" {
		workingDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %v", err)
		}
		c.Repo = workingDir
	}

	absRepo, err := filepath.Abs(c.Repo)
	if err != nil {
		return fmt.Errorf("failed to resolve repository path: %v", err)
	}
	c.Repo = absRepo

	dataDir, err := dataDirectory()
	if err != nil {
		return err
	}
	if c.JournalPath == "" {
		c.JournalPath = filepath.Join(dataDir, "journal.db")
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(dataDir, "debug.log")
	}

	return nil
}

// dataDirectory returns the directory holding the journal and debug log,
// honoring XDG_DATA_HOME when set
func dataDirectory() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %v", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	return filepath.Join(dataHome, "gitmaj"), nil
}

// getEnvString returns the environment variable value or the fallback when unset
func getEnvString(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool returns the environment variable parsed as a bool or the fallback
// when unset or invalid
func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
