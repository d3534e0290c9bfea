package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mbti-predictor/internal/config"
	"mbti-predictor/internal/service"
)

// version is set at build time via -ldflags.
var version = "dev"

// app guarda las dependencias que arma PersistentPreRunE para los subcomandos.
type app struct {
	format    string
	cfg       *config.Config
	logger    *zap.Logger
	predictor *service.PredictorService
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "mbti",
		Short:         "Classify questionnaire answers into one of 16 personality types",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "Output format: json, yaml or text (default from MBTI_OUTPUT_FORMAT)")

	root.AddCommand(newPredictCmd(a))
	root.AddCommand(newScoresCmd(a))
	root.AddCommand(newCompareCmd(a))
	root.AddCommand(newQuestionsCmd(a))
	root.AddCommand(newAnswerCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.format = strings.TrimSpace(a.format)
	if cmd.Flags().Changed("format") {
		if err := a.overrideFormat(a.format); err != nil {
			return err
		}
	} else {
		a.format = cfg.OutputFormat
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.logger = logger
	logEnvLoad(logger, envErr)

	predictor, err := service.NewPredictorService(service.Thresholds(cfg.Thresholds()), logger)
	if err != nil {
		return err
	}
	a.predictor = predictor
	return nil
}

// overrideFormat aplica un --format explicito sobre la configuracion cargada.
func (a *app) overrideFormat(format string) error {
	cfg := *a.cfg
	cfg.OutputFormat = strings.ToLower(strings.TrimSpace(format))
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = &cfg
	a.format = cfg.OutputFormat
	return nil
}

// logEnvLoad reporta fallas al leer .env; que el archivo no exista es lo normal.
func logEnvLoad(logger *zap.Logger, err error) {
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return
	}
	logger.Debug("loading .env failed", zap.Error(err))
}

// newLogger escribe en stderr para que stdout lleve solo el resultado.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// parseNumbers convierte hasta limit argumentos; el resto se ignora.
func parseNumbers(args []string, limit int) ([]float64, error) {
	if len(args) > limit {
		args = args[:limit]
	}
	out := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", service.ErrInvalidInput, arg)
		}
		out = append(out, v)
	}
	return out, nil
}

// numericFlags son los flags que reconocen los comandos con flag parsing desactivado.
type numericFlags struct {
	format string
	scores bool
	help   bool
}

// splitNumericArgs separa valores y flags a mano para que "-10" se lea como numero
// y no como el shorthand "-1". --scores solo se acepta si allowScores.
func splitNumericArgs(args []string, allowScores bool) ([]string, numericFlags, error) {
	var (
		values []string
		flags  numericFlags
	)
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if _, err := strconv.ParseFloat(arg, 64); err == nil {
			values = append(values, arg)
			continue
		}
		switch {
		case arg == "--":
			values = append(values, args[i+1:]...)
			return values, flags, nil
		case arg == "-h" || arg == "--help":
			flags.help = true
		case arg == "--scores" && allowScores:
			flags.scores = true
		case arg == "-f" || arg == "--format":
			if i+1 >= len(args) {
				return nil, flags, fmt.Errorf("%w: flag %s needs a value", service.ErrInvalidInput, arg)
			}
			i++
			flags.format = args[i]
		case strings.HasPrefix(arg, "--format="):
			flags.format = strings.TrimPrefix(arg, "--format=")
		case strings.HasPrefix(arg, "-"):
			return nil, flags, fmt.Errorf("%w: unknown flag %s", service.ErrInvalidInput, arg)
		default:
			values = append(values, arg)
		}
	}
	return values, flags, nil
}

// applyNumericFlags atiende --help y --format de un comando con flag parsing desactivado.
// Devuelve true si ya se mostro la ayuda.
func (a *app) applyNumericFlags(cmd *cobra.Command, flags numericFlags) (bool, error) {
	if flags.help {
		return true, cmd.Help()
	}
	if flags.format != "" {
		if err := a.overrideFormat(flags.format); err != nil {
			return false, err
		}
	}
	return false, nil
}
