package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mbti-predictor/internal/domain"
	"mbti-predictor/internal/render"
	"mbti-predictor/internal/service"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a1..a20> <b1..b20> | compare --scores <a1..a4> <b1..b4>",
		Short: "Score how similar two people are (0-100)",
		Long: "Compare two questionnaires (40 responses: the first person's 20, then the second's)\n" +
			"or, with --scores, two sets of 4 dimension scores. Similarity adds 30 for the same\n" +
			"type, up to 20 for close overall scores, up to 7.5 per dimension with the same\n" +
			"preferred pole and about 2.86 per shared trait.",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, flags, err := splitNumericArgs(args, true)
			if err != nil {
				return err
			}
			if done, err := a.applyNumericFlags(cmd, flags); done || err != nil {
				return err
			}

			per, predict := questionnaireLength, a.predictor.PredictFromQuestionnaire
			if flags.scores {
				per, predict = dimensionScoreCount, a.predictor.PredictFromScores
			}
			if len(values) != 2*per {
				return fmt.Errorf("%w: expected %d values (2 x %d), got %d", service.ErrInvalidInput, 2*per, per, len(values))
			}
			numbers, err := parseNumbers(values, len(values))
			if err != nil {
				return err
			}

			var results [2]domain.PersonalityResult
			for i := range results {
				results[i], err = predict(numbers[i*per : (i+1)*per])
				if err != nil {
					return fmt.Errorf("person %d: %w", i+1, err)
				}
			}
			return render.Comparison(cmd.OutOrStdout(), a.format, service.Compare(results[0], results[1]))
		},
	}
}
