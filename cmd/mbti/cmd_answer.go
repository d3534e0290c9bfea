package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mbti-predictor/internal/render"
	"mbti-predictor/internal/service"
)

func newAnswerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "answer",
		Short: "Score an answer sheet read from stdin (YAML or JSON, prompt: value)",
		Long: "Read a mapping of question prompt to response (1-7) from stdin and score it.\n" +
			"Every prompt listed by 'mbti questions' must be answered exactly once.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var sheet map[string]float64
			if err := yaml.NewDecoder(cmd.InOrStdin()).Decode(&sheet); err != nil {
				return fmt.Errorf("%w: decode answer sheet: %v", service.ErrInvalidInput, err)
			}
			result, err := service.NewQuestionnaireService(a.predictor, a.logger).ScoreAnswers(sheet)
			if err != nil {
				return err
			}
			return render.Result(cmd.OutOrStdout(), a.format, result)
		},
	}
}
