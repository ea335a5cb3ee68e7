// Package config загружает настройки проверки из YAML-файла и применяет значения по умолчанию.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	DefaultWorkers = 4
)

// Config содержит параметры запуска. Значения из флагов CLI перекрывают файл.
type Config struct {
	Roots   []string `yaml:"roots"`
	Base    string   `yaml:"base"`
	Format  string   `yaml:"format"`
	Workers int      `yaml:"workers"`
}

// Load читает конфигурацию из YAML-файла
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Defaults заполняет пустые поля: корень и база — текущий каталог
func (c *Config) Defaults() error {
	if len(c.Roots) == 0 || c.Base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		if len(c.Roots) == 0 {
			c.Roots = []string{cwd}
		}
		if c.Base == "" {
			c.Base = cwd
		}
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	return nil
}

// Validate проверяет, что корни и база — существующие каталоги, а формат известен
func (c *Config) Validate() error {
	var errs []error

	for _, root := range c.Roots {
		if err := requireDir(root); err != nil {
			errs = append(errs, fmt.Errorf("root %w", err))
		}
	}
	if err := requireDir(c.Base); err != nil {
		errs = append(errs, fmt.Errorf("base %w", err))
	}

	switch c.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("unknown format %q (want %s or %s)", c.Format, FormatText, FormatJSON))
	}

	return errors.Join(errs...)
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: not a directory", path)
	}
	return nil
}
