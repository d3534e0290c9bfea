package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuracion del predictor.
type Config struct {
	OutputFormat string  `env:"MBTI_OUTPUT_FORMAT" envDefault:"json"`
	LogLevel     string  `env:"MBTI_LOG_LEVEL" envDefault:"warn"`
	ThresholdEI  float64 `env:"MBTI_THRESHOLD_EI" envDefault:"50"`
	ThresholdSN  float64 `env:"MBTI_THRESHOLD_SN" envDefault:"50"`
	ThresholdTF  float64 `env:"MBTI_THRESHOLD_TF" envDefault:"50"`
	ThresholdJP  float64 `env:"MBTI_THRESHOLD_JP" envDefault:"50"`
}

var outputFormats = []string{"json", "yaml", "text"}

// LoadConfig carga la configuracion desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(cfg.OutputFormat))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate revisa el formato de salida y que los cortes esten en [0,100].
func (c *Config) Validate() error {
	if !isOutputFormat(c.OutputFormat) {
		return fmt.Errorf("MBTI_OUTPUT_FORMAT must be one of %s, got %q", strings.Join(outputFormats, "|"), c.OutputFormat)
	}
	names := [4]string{"MBTI_THRESHOLD_EI", "MBTI_THRESHOLD_SN", "MBTI_THRESHOLD_TF", "MBTI_THRESHOLD_JP"}
	for i, v := range c.Thresholds() {
		if math.IsNaN(v) || v < 0 || v > 100 {
			return fmt.Errorf("%s must be within [0,100], got %v", names[i], v)
		}
	}
	return nil
}

// Thresholds devuelve los cortes en orden de dimension (E/I, S/N, T/F, J/P).
func (c *Config) Thresholds() [4]float64 {
	return [4]float64{c.ThresholdEI, c.ThresholdSN, c.ThresholdTF, c.ThresholdJP}
}

func isOutputFormat(format string) bool {
	for _, f := range outputFormats {
		if f == format {
			return true
		}
	}
	return false
}
