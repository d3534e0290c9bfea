package main

import (
	"github.com/spf13/cobra"

	"mbti-predictor/internal/render"
)

const (
	questionnaireLength = 20
	dimensionScoreCount = 4
)

func newPredictCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "predict <r1> ... <r20>",
		Short: "Score 20 questionnaire responses (1-7 each)",
		Long: "Score 20 Likert responses (1 = strongly disagree, 7 = strongly agree) given in\n" +
			"question order. Run 'mbti questions' to see which prompt each position answers.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			responses, err := parseNumbers(args, questionnaireLength)
			if err != nil {
				return err
			}
			result, err := a.predictor.PredictFromQuestionnaire(responses)
			if err != nil {
				return err
			}
			return render.Result(cmd.OutOrStdout(), a.format, result)
		},
	}
}
