package service

import (
	"fmt"
	"math"

	"mbti-predictor/internal/domain"
)

const (
	dimensionCount        = 4
	questionsPerDimension = 5
	responseCount         = dimensionCount * questionsPerDimension

	minResponse = 1.0
	maxResponse = 7.0

	minScore = 0.0
	maxScore = 100.0

	// DefaultThreshold es el corte de clasificacion de cada dimension.
	DefaultThreshold = 50.0
	// preferenceMidpoint separa el primer polo del segundo al elegir preferencia.
	preferenceMidpoint = 50.0
)

var dimensions = [dimensionCount]domain.Dimension{
	{Code: "E/I", FirstPole: "Extraversion", SecondPole: "Introversion"},
	{Code: "S/N", FirstPole: "Sensing", SecondPole: "Intuition"},
	{Code: "T/F", FirstPole: "Thinking", SecondPole: "Feeling"},
	{Code: "J/P", FirstPole: "Judging", SecondPole: "Perceiving"},
}

// Dimensions devuelve las cuatro dimensiones en orden de bit.
func Dimensions() []domain.Dimension {
	out := make([]domain.Dimension, len(dimensions))
	copy(out, dimensions[:])
	return out
}

// BinaryCode es el vector de 4 bits, uno por dimension.
type BinaryCode [dimensionCount]uint8

func (c BinaryCode) String() string {
	return fmt.Sprintf("%d%d%d%d", c[0], c[1], c[2], c[3])
}

var typeLabels = map[BinaryCode]string{
	{0, 0, 0, 0}: "ISTJ", {0, 0, 0, 1}: "ISTP",
	{0, 0, 1, 0}: "ISFJ", {0, 0, 1, 1}: "ISFP",
	{0, 1, 0, 0}: "INTJ", {0, 1, 0, 1}: "INTP",
	{0, 1, 1, 0}: "INFJ", {0, 1, 1, 1}: "INFP",
	{1, 0, 0, 0}: "ESTJ", {1, 0, 0, 1}: "ESTP",
	{1, 0, 1, 0}: "ESFJ", {1, 0, 1, 1}: "ESFP",
	{1, 1, 0, 0}: "ENTJ", {1, 1, 0, 1}: "ENTP",
	{1, 1, 1, 0}: "ENFJ", {1, 1, 1, 1}: "ENFP",
}

// TypeLabel resuelve el codigo binario a una de las 16 etiquetas.
func TypeLabel(code BinaryCode) (string, error) {
	label, ok := typeLabels[code]
	if !ok {
		return "", fmt.Errorf("%w: no label for code %s", ErrUnknownType, code)
	}
	return label, nil
}

// Thresholds contiene el corte de cada dimension, en orden de dimension.
type Thresholds [dimensionCount]float64

// DefaultThresholds usa 50 en las cuatro dimensiones.
func DefaultThresholds() Thresholds {
	return Thresholds{DefaultThreshold, DefaultThreshold, DefaultThreshold, DefaultThreshold}
}

// Validate exige que cada corte este dentro de la escala 0-100.
func (t Thresholds) Validate() error {
	for i, v := range t {
		if math.IsNaN(v) || v < minScore || v > maxScore {
			return fmt.Errorf("%w: threshold for %s must be within [0,100], got %v", ErrInvalidInput, dimensions[i].Code, v)
		}
	}
	return nil
}

// AggregateDimensions reduce 20 respuestas ya validadas a 4 puntajes 0-100.
// Cada dimension toma su tramo contiguo de 5 respuestas.
func AggregateDimensions(responses []float64) [dimensionCount]float64 {
	var scores [dimensionCount]float64
	for d := 0; d < dimensionCount; d++ {
		start := d * questionsPerDimension
		var total float64
		for _, r := range responses[start : start+questionsPerDimension] {
			total += r
		}
		scores[d] = ((total / questionsPerDimension) - 1) * (100.0 / 6.0)
	}
	return scores
}

// NormalizeScore recorta el puntaje a [0,100].
func NormalizeScore(score float64) float64 {
	return math.Min(math.Max(score, minScore), maxScore)
}

// Classify compara cada puntaje contra su corte. Un puntaje igual al corte da bit 0.
func Classify(scores [dimensionCount]float64, thresholds Thresholds) (BinaryCode, string, error) {
	var code BinaryCode
	for i, score := range scores {
		if score > thresholds[i] {
			code[i] = 1
		}
	}
	label, err := TypeLabel(code)
	if err != nil {
		return BinaryCode{}, "", err
	}
	return code, label, nil
}
