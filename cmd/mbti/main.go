// mbti classifies a 20-item Likert questionnaire into one of 16 personality types.
//
// Usage:
//
//	mbti predict <r1> ... <r20> [--format=json|yaml|text]
//	mbti scores <ei> <sn> <tf> <jp>
//	mbti questions
//	mbti answer < sheet.yaml
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"mbti-predictor/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	if errors.Is(err, service.ErrInvalidInput) {
		fmt.Fprintln(w, err)
		return
	}
	fmt.Fprintf(w, "unexpected error: %v\n", err)
}
