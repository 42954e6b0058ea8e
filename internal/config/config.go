// ABOUTME: Editor settings loaded from YAML with global + project merge and defaults
// ABOUTME: Validate resolves the quit chord and rejects out-of-range values with suggestions

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui/fuzzy"
	"github.com/mauromedda/kilo-go/pkg/tui/key"
)

// Defaults.
const (
	DefaultQuitKey     = "ctrl+q"
	DefaultReadTimeout = 1
	DefaultPlaceholder = "~"
	DefaultLogLevel    = "info"
)

// Settings holds the merged configuration.
type Settings struct {
	// QuitKey is the control chord that ends the session, e.g. "ctrl+q".
	QuitKey string `yaml:"quit_key,omitempty"`
	// ReadTimeout is the raw-mode read timeout in tenths of a second.
	ReadTimeout *int `yaml:"read_timeout,omitempty"`
	// Placeholder is drawn at the start of every row past the document.
	Placeholder string `yaml:"placeholder,omitempty"`
	Welcome     *bool  `yaml:"welcome,omitempty"`
	SyncOutput  *bool  `yaml:"sync_output,omitempty"`
	LogFile     string `yaml:"log_file,omitempty"`
	LogLevel    string `yaml:"log_level,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() *Settings {
	return &Settings{
		QuitKey:     DefaultQuitKey,
		ReadTimeout: intPtr(DefaultReadTimeout),
		Placeholder: DefaultPlaceholder,
		Welcome:     boolPtr(true),
		SyncOutput:  boolPtr(false),
		LogLevel:    DefaultLogLevel,
	}
}

// Load merges defaults, the global file, and the project file under
// projectRoot, in that order. Missing files are skipped.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	s := merge(merge(Defaults(), global), project)
	ResolveEnvVars(s)
	return s, nil
}

// LoadFile merges defaults with the single file at path. Unlike Load, a
// missing file is an error.
func LoadFile(path string) (*Settings, error) {
	f, err := loadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	s := merge(Defaults(), f)
	ResolveEnvVars(s)
	return s, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays the non-zero fields of over onto base.
func merge(base, over *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if over == nil {
		return base
	}

	result := *base
	if over.QuitKey != "" {
		result.QuitKey = over.QuitKey
	}
	if over.ReadTimeout != nil {
		result.ReadTimeout = intPtr(*over.ReadTimeout)
	}
	if over.Placeholder != "" {
		result.Placeholder = over.Placeholder
	}
	if over.Welcome != nil {
		result.Welcome = boolPtr(*over.Welcome)
	}
	if over.SyncOutput != nil {
		result.SyncOutput = boolPtr(*over.SyncOutput)
	}
	if over.LogFile != "" {
		result.LogFile = over.LogFile
	}
	if over.LogLevel != "" {
		result.LogLevel = over.LogLevel
	}
	return &result
}

// Validate checks every field and returns all problems joined.
func (s *Settings) Validate() error {
	var errs []error
	if _, err := s.QuitChord(); err != nil {
		errs = append(errs, err)
	}
	if t := s.ReadTimeoutTenths(); t < 1 || t > 255 {
		errs = append(errs, fmt.Errorf("read_timeout: %d out of range 1..255", t))
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	return errors.Join(errs...)
}

// QuitChord parses QuitKey.
func (s *Settings) QuitChord() (key.Chord, error) {
	c, err := key.ParseChord(s.QuitKey)
	if err == nil {
		return c, nil
	}
	if hint := suggestChord(s.QuitKey); hint != "" {
		return 0, fmt.Errorf("quit_key: %w (did you mean %s?)", err, hint)
	}
	return 0, fmt.Errorf("quit_key: %w", err)
}

// ReadTimeoutTenths returns the read timeout, or the default when unset.
func (s *Settings) ReadTimeoutTenths() int {
	if s.ReadTimeout == nil {
		return DefaultReadTimeout
	}
	return *s.ReadTimeout
}

// WelcomeEnabled reports whether the welcome banner is shown.
func (s *Settings) WelcomeEnabled() bool {
	return s.Welcome == nil || *s.Welcome
}

// SyncOutputEnabled reports whether synchronized output is on.
func (s *Settings) SyncOutputEnabled() bool {
	return s.SyncOutput != nil && *s.SyncOutput
}

// suggestChord returns up to three chord names close to name.
func suggestChord(name string) string {
	matches := fuzzy.Suggest(strings.ToLower(strings.TrimSpace(name)), key.ChordNames(), 3)
	return strings.Join(matches, ", ")
}

func boolPtr(b bool) *bool { return &b }

func intPtr(n int) *int { return &n }
