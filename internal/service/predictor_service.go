package service

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"mbti-predictor/internal/domain"
)

// PredictorService runs the questionnaire scoring pipeline. It holds no mutable
// state after construction, so one instance can serve concurrent callers.
type PredictorService struct {
	thresholds Thresholds
	logger     *zap.Logger
}

func NewPredictorService(thresholds Thresholds, logger *zap.Logger) (*PredictorService, error) {
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return &PredictorService{
		thresholds: thresholds,
		logger:     logger,
	}, nil
}

// PredictFromQuestionnaire valida las 20 respuestas y las lleva a un resultado completo.
func (s *PredictorService) PredictFromQuestionnaire(responses []float64) (domain.PersonalityResult, error) {
	if err := ValidateResponses(responses); err != nil {
		s.warn("rejected questionnaire responses", err)
		return domain.PersonalityResult{}, err
	}
	return s.predict(AggregateDimensions(responses))
}

// PredictFromScores parte de 4 puntajes ya calculados; los valores fuera de rango se recortan.
func (s *PredictorService) PredictFromScores(scores []float64) (domain.PersonalityResult, error) {
	if len(scores) != dimensionCount {
		err := fmt.Errorf("%w: expected %d dimension scores, got %d", ErrInvalidInput, dimensionCount, len(scores))
		s.warn("rejected dimension scores", err)
		return domain.PersonalityResult{}, err
	}
	var raw [dimensionCount]float64
	for i, v := range scores {
		if math.IsNaN(v) {
			err := fmt.Errorf("%w: score for %s is not a number", ErrInvalidInput, dimensions[i].Code)
			s.warn("rejected dimension scores", err)
			return domain.PersonalityResult{}, err
		}
		raw[i] = v
	}
	return s.predict(raw)
}

func (s *PredictorService) predict(raw [dimensionCount]float64) (domain.PersonalityResult, error) {
	var normalized [dimensionCount]float64
	for i, v := range raw {
		normalized[i] = NormalizeScore(v)
	}

	code, label, err := Classify(normalized, s.thresholds)
	if err != nil {
		return domain.PersonalityResult{}, err
	}

	prefs := buildPreferences(normalized)
	personality, err := ScoreTraits(label, prefs)
	if err != nil {
		return domain.PersonalityResult{}, err
	}

	scores := make(domain.DimensionScores, 0, dimensionCount)
	for i, dim := range dimensions {
		scores = append(scores, domain.DimensionScore{Dimension: dim.Code, Score: normalized[i]})
	}

	if s.logger != nil {
		s.logger.Debug("personality classified",
			zap.String("type", label),
			zap.Stringer("code", code),
			zap.Float64s("scores", normalized[:]),
			zap.Float64("overall_score", personality.OverallScore),
		)
	}

	return domain.PersonalityResult{
		Type:              label,
		Scores:            scores,
		Preferences:       prefs,
		PersonalityScores: personality,
	}, nil
}

func (s *PredictorService) warn(msg string, err error) {
	if s == nil || s.logger == nil || !errors.Is(err, ErrInvalidInput) {
		return
	}
	s.logger.Warn(msg, zap.Error(err))
}
