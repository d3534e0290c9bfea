package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mbti-predictor/internal/render"
	"mbti-predictor/internal/service"
)

func newQuestionsCmd(a *app) *cobra.Command {
	var dimension string
	cmd := &cobra.Command{
		Use:   "questions [--dimension E/I]",
		Short: "List the 20 questionnaire prompts in response order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			questions := service.Questions()
			if dimension != "" {
				questions = service.QuestionsFor(strings.ToUpper(strings.TrimSpace(dimension)))
				if questions == nil {
					return fmt.Errorf("%w: unknown dimension %q (want one of %s)", service.ErrInvalidInput, dimension, dimensionCodes())
				}
			}
			return render.Questions(cmd.OutOrStdout(), a.format, questions)
		},
	}
	cmd.Flags().StringVarP(&dimension, "dimension", "d", "", "Only list the prompts of one dimension (E/I, S/N, T/F or J/P)")
	return cmd
}

func dimensionCodes() string {
	dims := service.Dimensions()
	codes := make([]string, len(dims))
	for i, d := range dims {
		codes[i] = d.Code
	}
	return strings.Join(codes, ", ")
}
