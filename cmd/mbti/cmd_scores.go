package main

import (
	"github.com/spf13/cobra"

	"mbti-predictor/internal/render"
)

func newScoresCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scores <ei> <sn> <tf> <jp> [--format=json|yaml|text]",
		Short: "Classify four precomputed dimension scores (0-100, clamped)",
		Long: "Classify four dimension scores given in E/I, S/N, T/F, J/P order. Values outside\n" +
			"0-100, negative ones included, are clamped: mbti scores -10 60 40 50",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, flags, err := splitNumericArgs(args, false)
			if err != nil {
				return err
			}
			if done, err := a.applyNumericFlags(cmd, flags); done || err != nil {
				return err
			}
			// Se parsean todos para que un conteo distinto de 4 llegue como entrada invalida.
			scores, err := parseNumbers(values, len(values))
			if err != nil {
				return err
			}
			result, err := a.predictor.PredictFromScores(scores)
			if err != nil {
				return err
			}
			return render.Result(cmd.OutOrStdout(), a.format, result)
		},
	}
}
