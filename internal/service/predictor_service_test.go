package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"mbti-predictor/internal/domain"
)

func newTestPredictor(t *testing.T) *PredictorService {
	t.Helper()
	svc, err := NewPredictorService(DefaultThresholds(), zap.NewNop())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return svc
}

func TestPredictFromQuestionnaire_Extremes(t *testing.T) {
	svc := newTestPredictor(t)
	tests := []struct {
		name     string
		response float64
		score    float64
		label    string
		pole     func(domain.Dimension) string
	}{
		{name: "all ones", response: 1, score: 0, label: "ISTJ", pole: func(d domain.Dimension) string { return d.FirstPole }},
		{name: "all fours", response: 4, score: 50, label: "ISTJ", pole: func(d domain.Dimension) string { return d.FirstPole }},
		{name: "all sevens", response: 7, score: 100, label: "ENFP", pole: func(d domain.Dimension) string { return d.SecondPole }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.PredictFromQuestionnaire(uniform(tt.response, responseCount))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.Type != tt.label {
				t.Fatalf("expected %s, got %s", tt.label, result.Type)
			}
			for _, dim := range dimensions {
				score, ok := result.Scores.Get(dim.Code)
				if !ok || score != tt.score {
					t.Fatalf("%s: expected score %v, got %v (present=%t)", dim.Code, tt.score, score, ok)
				}
				pref, ok := result.Preferences.Get(dim.Code)
				if !ok || pref.Preferred != tt.pole(dim) {
					t.Fatalf("%s: expected pole %s, got %+v", dim.Code, tt.pole(dim), pref)
				}
			}
		})
	}
}

func TestPredictFromQuestionnaire_MixedResponses(t *testing.T) {
	svc := newTestPredictor(t)
	responses := []float64{1, 2, 3, 4, 5, 7, 7, 6, 6, 5, 2, 2, 1, 1, 3, 4, 5, 6, 7, 7}
	result, err := svc.PredictFromQuestionnaire(responses)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Type != "INTP" {
		t.Fatalf("expected INTP, got %s", result.Type)
	}
	ps := result.PersonalityScores
	if ps.OverallScore != 71.2 || ps.PreferenceAlignment != 80.0 {
		t.Fatalf("expected overall 71.2 alignment 80, got %v %v", ps.OverallScore, ps.PreferenceAlignment)
	}
	wantDev := domain.TraitDevelopment{
		{Trait: "Analysis", Value: 72},
		{Trait: "Innovation", Value: 64},
		{Trait: "Logic", Value: 72},
		{Trait: "Adaptability", Value: 48},
	}
	if diff := cmp.Diff(wantDev, ps.TraitDevelopment); diff != "" {
		t.Fatalf("unexpected development (-want +got):\n%s", diff)
	}
	pref, _ := result.Preferences.Get("E/I")
	if pref.Preferred != "Extraversion" || pref.Category != domain.StrengthSlight {
		t.Fatalf("unexpected E/I preference %+v", pref)
	}
}

func TestPredictFromQuestionnaire_InvalidInputNoPartialResult(t *testing.T) {
	svc := newTestPredictor(t)
	bad := [][]float64{
		uniform(4, 19),
		uniform(4, 21),
		append(uniform(4, 19), 0),
		append(uniform(4, 19), 8),
	}
	for _, responses := range bad {
		result, err := svc.PredictFromQuestionnaire(responses)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %v, got %v", responses, err)
		}
		if diff := cmp.Diff(domain.PersonalityResult{}, result); diff != "" {
			t.Fatalf("expected zero result on error, got:\n%s", diff)
		}
	}
}

func TestPredictFromQuestionnaire_AlwaysCanonicalType(t *testing.T) {
	svc := newTestPredictor(t)
	canonical := make(map[string]bool, len(typeLabels))
	for _, label := range typeLabels {
		canonical[label] = true
	}
	// Recorre bloques con distintos niveles por dimension.
	levels := []float64{1, 3.5, 4, 4.2, 7}
	for _, a := range levels {
		for _, b := range levels {
			for _, c := range levels {
				for _, d := range levels {
					responses := make([]float64, 0, responseCount)
					for _, v := range []float64{a, b, c, d} {
						responses = append(responses, uniform(v, questionsPerDimension)...)
					}
					result, err := svc.PredictFromQuestionnaire(responses)
					if err != nil {
						t.Fatalf("expected no error for %v, got %v", responses, err)
					}
					if !canonical[result.Type] {
						t.Fatalf("unexpected type %q", result.Type)
					}
					for _, p := range result.Preferences {
						if p.Strength < 50 || p.Strength > 100 {
							t.Fatalf("strength %v out of [50,100]", p.Strength)
						}
					}
				}
			}
		}
	}
}

func TestPredictFromScores(t *testing.T) {
	svc := newTestPredictor(t)
	result, err := svc.PredictFromScores([]float64{-10, 150, 55.5, 50})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Type != "INFJ" {
		t.Fatalf("expected INFJ, got %s", result.Type)
	}
	wantScores := domain.DimensionScores{
		{Dimension: "E/I", Score: 0},
		{Dimension: "S/N", Score: 100},
		{Dimension: "T/F", Score: 55.5},
		{Dimension: "J/P", Score: 50},
	}
	if diff := cmp.Diff(wantScores, result.Scores); diff != "" {
		t.Fatalf("unexpected scores (-want +got):\n%s", diff)
	}
	if result.PersonalityScores.OverallScore != 69.8 || result.PersonalityScores.PreferenceAlignment != 76.4 {
		t.Fatalf("unexpected personality scores %+v", result.PersonalityScores)
	}
}

func TestPredictFromScores_InvalidInput(t *testing.T) {
	svc := newTestPredictor(t)
	for _, scores := range [][]float64{nil, {50, 50, 50}, {50, 50, 50, 50, 50}} {
		if _, err := svc.PredictFromScores(scores); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %v, got %v", scores, err)
		}
	}
}

func TestPredict_CustomThresholds(t *testing.T) {
	svc, err := NewPredictorService(Thresholds{80, 50, 50, 50}, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	result, err := svc.PredictFromScores([]float64{75, 75, 75, 75})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Type != "INFP" {
		t.Fatalf("expected INFP with raised E/I threshold, got %s", result.Type)
	}
	// La eleccion de polo no depende del corte configurado.
	if pref, _ := result.Preferences.Get("E/I"); pref.Preferred != "Introversion" {
		t.Fatalf("expected Introversion preference, got %+v", pref)
	}
}

func TestNewPredictorService_RejectsBadThresholds(t *testing.T) {
	if _, err := NewPredictorService(Thresholds{50, 50, 50, 120}, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPredict_Idempotent(t *testing.T) {
	svc := newTestPredictor(t)
	responses := []float64{2, 6, 3, 5, 4, 1, 7, 2, 6, 3, 5, 5, 5, 4, 4, 3, 2, 6, 6, 1}
	first, err := svc.PredictFromQuestionnaire(responses)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := svc.PredictFromQuestionnaire(responses)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatalf("expected identical output, got\n%s\n%s", a, b)
	}
}
