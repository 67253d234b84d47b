package delimited

import (
	"fmt"
	"os"

	"github.com/viant/tagly/format/text"
	ftime "github.com/viant/tagly/format/time"
	"gopkg.in/yaml.v3"
)

// Config represents file based decoder configuration
type Config struct {
	Delimiter        string `yaml:"delimiter,omitempty"`
	SkipRows         int    `yaml:"skipRows,omitempty"`
	TagName          string `yaml:"tagName,omitempty"`
	CaseFormat       string `yaml:"caseFormat,omitempty"`
	TimeLayout       string `yaml:"timeLayout,omitempty"`
	DateFormat       string `yaml:"dateFormat,omitempty"`
	StopOnZeroRecord bool   `yaml:"stopOnZeroRecord,omitempty"`
}

// LoadConfig loads YAML config from supplied path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML config
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks config values
func (c *Config) Validate() error {
	if c.SkipRows < 0 {
		return fmt.Errorf("invalid skipRows: %d", c.SkipRows)
	}
	if c.CaseFormat != "" && !text.CaseFormat(c.CaseFormat).IsDefined() {
		return fmt.Errorf("invalid caseFormat: %q", c.CaseFormat)
	}
	return nil
}

// Options returns decoder options
func (c *Config) Options() []Option {
	var result []Option
	if c.Delimiter != "" {
		result = append(result, WithDelimiter(c.Delimiter))
	}
	if c.SkipRows > 0 {
		result = append(result, WithSkipRows(c.SkipRows))
	}
	if c.TagName != "" {
		result = append(result, WithTagName(c.TagName))
	}
	if c.CaseFormat != "" {
		result = append(result, WithCaseFormat(text.CaseFormat(c.CaseFormat)))
	}
	if layout := c.timeLayout(); layout != "" {
		result = append(result, WithTimeLayout(layout))
	}
	if c.StopOnZeroRecord {
		result = append(result, WithStopOnZeroRecord(true))
	}
	return result
}

func (c *Config) timeLayout() string {
	if c.TimeLayout != "" {
		return c.TimeLayout
	}
	if c.DateFormat != "" {
		return ftime.DateFormatToTimeLayout(c.DateFormat)
	}
	return ""
}
