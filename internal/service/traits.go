package service

import (
	"fmt"
	"sort"
	"strconv"

	"mbti-predictor/internal/domain"
)

const (
	baseScore        = 70.0
	baseWeight       = 0.4
	preferenceWeight = 0.3
	traitWeight      = 0.3
	dominantCount    = 2
)

type weightedTrait struct {
	name   string
	weight float64
}

// traitWeights: 4 rasgos por tipo, el orden de cada lista desempata los dominantes.
var traitWeights = map[string][]weightedTrait{
	"ISTJ": {{"Organization", 0.9}, {"Detail", 0.8}, {"Logic", 0.7}, {"Reliability", 0.9}},
	"ISFJ": {{"Dedication", 0.9}, {"Support", 0.8}, {"Organization", 0.7}, {"Tradition", 0.8}},
	"INFJ": {{"Insight", 0.9}, {"Empathy", 0.9}, {"Planning", 0.7}, {"Creativity", 0.8}},
	"INTJ": {{"Strategy", 0.9}, {"Logic", 0.8}, {"Innovation", 0.8}, {"Independence", 0.7}},
	"ISTP": {{"Analysis", 0.8}, {"Practicality", 0.9}, {"Adaptability", 0.8}, {"Problem-solving", 0.7}},
	"ISFP": {{"Creativity", 0.8}, {"Sensitivity", 0.9}, {"Adaptability", 0.7}, {"Harmony", 0.8}},
	"INFP": {{"Idealism", 0.9}, {"Creativity", 0.8}, {"Empathy", 0.8}, {"Authenticity", 0.7}},
	"INTP": {{"Analysis", 0.9}, {"Innovation", 0.8}, {"Logic", 0.9}, {"Adaptability", 0.6}},
	"ESTP": {{"Action", 0.9}, {"Adaptability", 0.8}, {"Problem-solving", 0.7}, {"Energy", 0.8}},
	"ESFP": {{"Enthusiasm", 0.9}, {"Adaptability", 0.8}, {"People-oriented", 0.8}, {"Energy", 0.7}},
	"ENFP": {{"Enthusiasm", 0.8}, {"Creativity", 0.9}, {"Innovation", 0.8}, {"People-oriented", 0.7}},
	"ENTP": {{"Innovation", 0.9}, {"Analysis", 0.8}, {"Adaptability", 0.8}, {"Strategy", 0.7}},
	"ESTJ": {{"Organization", 0.9}, {"Leadership", 0.8}, {"Logic", 0.8}, {"Efficiency", 0.7}},
	"ESFJ": {{"Harmony", 0.9}, {"Support", 0.8}, {"Organization", 0.8}, {"Tradition", 0.7}},
	"ENFJ": {{"Leadership", 0.9}, {"Empathy", 0.9}, {"Support", 0.8}, {"Vision", 0.7}},
	"ENTJ": {{"Leadership", 0.9}, {"Strategy", 0.9}, {"Logic", 0.8}, {"Efficiency", 0.7}},
}

// traitWeightsFor devuelve una copia de los pesos del tipo, en orden de tabla.
func traitWeightsFor(typeLabel string) (domain.TraitDevelopment, error) {
	traits, ok := traitWeights[typeLabel]
	if !ok {
		return nil, fmt.Errorf("%w: no trait weights for %q", ErrUnknownType, typeLabel)
	}
	out := make(domain.TraitDevelopment, 0, len(traits))
	for _, t := range traits {
		out = append(out, domain.TraitScore{Trait: t.name, Value: t.weight})
	}
	return out, nil
}

// ScoreTraits combina la fuerza media de las preferencias con los pesos del tipo.
func ScoreTraits(typeLabel string, prefs domain.Preferences) (domain.PersonalityScores, error) {
	weights, err := traitWeightsFor(typeLabel)
	if err != nil {
		return domain.PersonalityScores{}, err
	}
	if len(prefs) == 0 {
		return domain.PersonalityScores{}, fmt.Errorf("%w: no preferences to score", ErrInvalidInput)
	}

	var strengthTotal float64
	for _, p := range prefs {
		strengthTotal += p.Strength
	}
	prefScore := strengthTotal / float64(len(prefs))
	alignment := prefScore / 100

	var traitTotal float64
	development := make(domain.TraitDevelopment, 0, len(weights))
	for _, w := range weights {
		traitTotal += w.Value * alignment
		development = append(development, domain.TraitScore{
			Trait: w.Trait,
			Value: round1(w.Value * alignment * 100),
		})
	}
	traitScore := traitTotal / float64(len(weights))
	overall := baseScore*baseWeight + prefScore*preferenceWeight + traitScore*100*traitWeight

	return domain.PersonalityScores{
		OverallScore:        round1(overall),
		PreferenceAlignment: round1(prefScore),
		TraitDevelopment:    development,
		DominantTraits:      dominantTraits(development),
	}, nil
}

// dominantTraits ordena de forma estable por valor descendente y toma los dos primeros.
func dominantTraits(development domain.TraitDevelopment) []domain.TraitScore {
	ranked := make([]domain.TraitScore, len(development))
	copy(ranked, development)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})
	if len(ranked) > dominantCount {
		ranked = ranked[:dominantCount]
	}
	return ranked
}

// round1 redondea a un decimal sobre el valor binario exacto, con empate al par.
func round1(x float64) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	if err != nil {
		return x
	}
	return v
}
