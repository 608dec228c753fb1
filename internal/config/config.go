// Package config reads and writes the YAML profile that describes how the
// progresser command draws its bar.
package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/ApexioDaCoder/progresser/bar"
	"github.com/ApexioDaCoder/progresser/spinner"
)

const DefaultFormat = "{spinner} {bar} {current}/{size} {percent}%"

type Config struct {
	Format    string `yaml:"format,omitempty" mapstructure:"format"`
	Size      int    `yaml:"size,omitempty" mapstructure:"size"`
	Style     string `yaml:"style,omitempty" mapstructure:"style"`
	NoSpinner bool   `yaml:"no-spinner,omitempty" mapstructure:"no-spinner"`
	NoColor   bool   `yaml:"no-color,omitempty" mapstructure:"no-color"`
	Clear     bool   `yaml:"clear,omitempty" mapstructure:"clear"`

	Chars struct {
		Complete   *string `yaml:"complete,omitempty" mapstructure:"complete"`
		Incomplete *string `yaml:"incomplete,omitempty" mapstructure:"incomplete"`
		Prefix     *string `yaml:"prefix,omitempty" mapstructure:"prefix"`
		Suffix     *string `yaml:"suffix,omitempty" mapstructure:"suffix"`
	} `yaml:"chars,omitempty" mapstructure:"chars"`
}

// Default returns the profile written by "progresser config init".
func Default() *Config {
	c := Config{
		Format: DefaultFormat,
		Size:   20,
		Style:  spinner.DefaultStyle,
	}
	c.Chars.Complete = bar.String("#")
	c.Chars.Incomplete = bar.String("-")
	c.Chars.Prefix = bar.String("[")
	c.Chars.Suffix = bar.String("]")
	return &c
}

// Options converts the profile into bar options drawing to out.
func (c *Config) Options(out io.Writer) bar.Options {
	var size *int
	if c.Size != 0 {
		size = bar.Int(c.Size)
	}
	return bar.Options{
		Size:         size,
		Spinner:      bar.Bool(!c.NoSpinner),
		SpinnerStyle: c.Style,
		Colored:      bar.Bool(!c.NoColor),
		Clear:        c.Clear,
		Stream:       out,
		Chars: bar.Chars{
			Complete:   c.Chars.Complete,
			Incomplete: c.Chars.Incomplete,
			Prefix:     c.Chars.Prefix,
			Suffix:     c.Chars.Suffix,
		},
	}
}

// Save the config data to file.
func (c *Config) Save(f string) error {
	logrus.Debugf("Saving config file %s", f)

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "unable to encode config")
	}
	if err := os.WriteFile(f, data, 0644); err != nil {
		return errors.Wrapf(err, "unable to write %s", f)
	}
	return nil
}

// Load the provided YAML config file. A missing file yields an empty
// profile.
func Load(f string) (*Config, error) {
	logrus.Debugf("Loading yaml config file %s", f)
	var c Config

	source, err := os.ReadFile(f)
	if os.IsNotExist(err) {
		return &c, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", f)
	}

	if err := yaml.Unmarshal(source, &c); err != nil {
		return nil, errors.Wrapf(err, "unable to parse %s", f)
	}
	return &c, nil
}
