package service

import (
	"math"

	"mbti-predictor/internal/domain"
)

const (
	sameTypeBonus       = 30.0
	overallWeight       = 0.2
	preferenceMatchRate = 0.075
	traitMatchRate      = 0.02857
)

// Similarity puntua que tan parecidos son dos resumenes:
//   - 30 puntos si el tipo coincide
//   - (100 - |dif. overall|) * 0.2
//   - (100 - |dif. porcentaje|) * 0.075 por cada dimension con el mismo polo preferido
//   - (100 - |dif. desarrollo|) * 0.02857 por cada rasgo presente en ambos resumenes
//
// El resultado se redondea a 2 decimales con empate hacia arriba.
func Similarity(a, b domain.AnalysisSummary) float64 {
	var score float64
	if a.Type == b.Type {
		score += sameTypeBonus
	}
	score += (100 - math.Abs(a.OverallScore-b.OverallScore)) * overallWeight

	for _, pa := range a.Breakdown {
		for _, pb := range b.Breakdown {
			if pa.Dimension != pb.Dimension || pa.Preference != pb.Preference {
				continue
			}
			score += (100 - math.Abs(pa.Percentage-pb.Percentage)) * preferenceMatchRate
		}
	}

	for _, ta := range a.TraitDevelopment {
		if vb, ok := b.TraitDevelopment.Get(ta.Trait); ok {
			score += (100 - math.Abs(ta.Value-vb)) * traitMatchRate
		}
	}

	return math.Floor(score*100+0.5) / 100
}

// Compare resume ambos resultados y calcula su similitud.
func Compare(first, second domain.PersonalityResult) domain.Comparison {
	a, b := Summarize(first), Summarize(second)
	return domain.Comparison{First: a, Second: b, Similarity: Similarity(a, b)}
}
