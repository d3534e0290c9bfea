package service

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mbti-predictor/internal/domain"
)

// QuestionnaireService scores answer sheets keyed by prompt text instead of by position.
type QuestionnaireService struct {
	logger    *zap.Logger
	predictFn func(responses []float64) (domain.PersonalityResult, error)
}

var ErrQuestionnaireNotConfigured = errors.New("questionnaire service not configured")

func NewQuestionnaireService(predictor *PredictorService, logger *zap.Logger) *QuestionnaireService {
	svc := &QuestionnaireService{logger: logger}
	if predictor != nil {
		svc.predictFn = predictor.PredictFromQuestionnaire
	}
	return svc
}

// ScoreAnswers ordena las respuestas segun el cuestionario y delega la prediccion.
// Cada prompt debe aparecer exactamente una vez; las claves se comparan sin espacios extremos.
func (s *QuestionnaireService) ScoreAnswers(answers map[string]float64) (domain.PersonalityResult, error) {
	if s == nil || s.predictFn == nil {
		return domain.PersonalityResult{}, ErrQuestionnaireNotConfigured
	}

	responses, err := s.buildResponses(answers)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("rejected answer sheet", zap.Error(err), zap.Int("answers", len(answers)))
		}
		return domain.PersonalityResult{}, err
	}

	result, err := s.predictFn(responses)
	if err != nil {
		return domain.PersonalityResult{}, fmt.Errorf("score answer sheet: %w", err)
	}
	return result, nil
}

func (s *QuestionnaireService) buildResponses(answers map[string]float64) ([]float64, error) {
	byPrompt := make(map[string]float64, len(answers))
	for prompt, value := range answers {
		key := strings.TrimSpace(prompt)
		if _, dup := byPrompt[key]; dup {
			return nil, fmt.Errorf("%w: duplicate answer for %q", ErrInvalidInput, key)
		}
		byPrompt[key] = value
	}

	questions := Questions()
	responses := make([]float64, 0, len(questions))
	for _, q := range questions {
		value, ok := byPrompt[q.Prompt]
		if !ok {
			return nil, fmt.Errorf("%w: missing answer for question %d (%s)", ErrInvalidInput, q.Index+1, q.Dimension)
		}
		responses = append(responses, value)
		delete(byPrompt, q.Prompt)
	}
	if len(byPrompt) > 0 {
		return nil, fmt.Errorf("%w: %d answers do not match any question", ErrInvalidInput, len(byPrompt))
	}
	return responses, nil
}
