package service

import "mbti-predictor/internal/domain"

// PreferenceFor elige el polo de la dimension segun su puntaje normalizado.
// Por encima de 50 gana el segundo polo; si no, el primero. La fuerza mide la
// distancia hacia el polo elegido, asi que queda siempre en [50,100].
func PreferenceFor(dim domain.Dimension, score float64) domain.Preference {
	pref := domain.Preference{Preferred: dim.FirstPole, Strength: maxScore - score}
	if score > preferenceMidpoint {
		pref = domain.Preference{Preferred: dim.SecondPole, Strength: score}
	}
	pref.Category = StrengthCategory(pref.Strength)
	return pref
}

// StrengthCategory clasifica la fuerza en una de las 5 bandas.
func StrengthCategory(strength float64) domain.PreferenceStrength {
	switch {
	case strength < 20:
		return domain.StrengthVeryClear
	case strength < 40:
		return domain.StrengthClear
	case strength < 60:
		return domain.StrengthModerate
	case strength < 80:
		return domain.StrengthSlight
	default:
		return domain.StrengthVerySlight
	}
}

func buildPreferences(scores [dimensionCount]float64) domain.Preferences {
	out := make(domain.Preferences, 0, dimensionCount)
	for i, dim := range dimensions {
		out = append(out, domain.DimensionPreference{
			Dimension:  dim.Code,
			Preference: PreferenceFor(dim, scores[i]),
		})
	}
	return out
}
