package service

import (
	"math"

	"mbti-predictor/internal/domain"
)

// Summarize condensa un resultado: tipo, puntajes, dominantes y la claridad de
// cada preferencia como porcentaje, |score-50|*2 (sin redondear).
func Summarize(result domain.PersonalityResult) domain.AnalysisSummary {
	summary := domain.AnalysisSummary{
		Type:                result.Type,
		OverallScore:        result.PersonalityScores.OverallScore,
		PreferenceAlignment: result.PersonalityScores.PreferenceAlignment,
		DominantTraits:      result.PersonalityScores.DominantTraits,
		TraitDevelopment:    result.PersonalityScores.TraitDevelopment,
		Breakdown:           make([]domain.PreferenceBreakdown, 0, len(result.Scores)),
	}
	for _, ds := range result.Scores {
		entry := domain.PreferenceBreakdown{
			Dimension:  ds.Dimension,
			Percentage: math.Abs(ds.Score-preferenceMidpoint) * 2,
		}
		if pref, ok := result.Preferences.Get(ds.Dimension); ok {
			entry.Preference = pref.Preferred
		}
		summary.Breakdown = append(summary.Breakdown, entry)
	}
	return summary
}
