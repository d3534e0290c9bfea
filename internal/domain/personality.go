package domain

// Dimension es uno de los cuatro ejes del modelo. El orden de declaracion
// define la posicion del bit en el codigo binario.
type Dimension struct {
	Code       string `json:"code" yaml:"code"`
	FirstPole  string `json:"first_pole" yaml:"first_pole"`
	SecondPole string `json:"second_pole" yaml:"second_pole"`
}

// PreferenceStrength es la banda cualitativa de la fuerza de una preferencia.
type PreferenceStrength string

const (
	StrengthVeryClear  PreferenceStrength = "Very Clear"
	StrengthClear      PreferenceStrength = "Clear"
	StrengthModerate   PreferenceStrength = "Moderate"
	StrengthSlight     PreferenceStrength = "Slight"
	StrengthVerySlight PreferenceStrength = "Very Slight"
)

// Preference describe el polo elegido de una dimension.
type Preference struct {
	Preferred string             `json:"preferred" yaml:"preferred"`
	Strength  float64            `json:"strength" yaml:"strength"`
	Category  PreferenceStrength `json:"category" yaml:"category"`
}

// Question es un item del cuestionario con su posicion en el vector de respuestas.
type Question struct {
	Index     int    `json:"index" yaml:"index"`
	Dimension string `json:"dimension" yaml:"dimension"`
	Prompt    string `json:"prompt" yaml:"prompt"`
}

// PersonalityResult es el registro completo que produce una prediccion.
type PersonalityResult struct {
	Type              string            `json:"type" yaml:"type"`
	Scores            DimensionScores   `json:"scores" yaml:"scores"`
	Preferences       Preferences       `json:"preferences" yaml:"preferences"`
	PersonalityScores PersonalityScores `json:"personality_scores" yaml:"personality_scores"`
}

// PersonalityScores agrupa el puntaje global y el desarrollo por rasgo.
type PersonalityScores struct {
	OverallScore        float64          `json:"overall_score" yaml:"overall_score"`
	PreferenceAlignment float64          `json:"preference_alignment" yaml:"preference_alignment"`
	TraitDevelopment    TraitDevelopment `json:"trait_development" yaml:"trait_development"`
	DominantTraits      []TraitScore     `json:"dominant_traits" yaml:"dominant_traits"`
}

// AnalysisSummary es la vista condensada de un resultado (tipo, puntajes y desglose).
type AnalysisSummary struct {
	Type                string                `json:"type" yaml:"type"`
	OverallScore        float64               `json:"overall_score" yaml:"overall_score"`
	PreferenceAlignment float64               `json:"preference_alignment" yaml:"preference_alignment"`
	DominantTraits      []TraitScore          `json:"dominant_traits" yaml:"dominant_traits"`
	TraitDevelopment    TraitDevelopment      `json:"trait_development" yaml:"trait_development"`
	Breakdown           []PreferenceBreakdown `json:"breakdown" yaml:"breakdown"`
}

// PreferenceBreakdown expresa la claridad de una preferencia como porcentaje (0-100).
type PreferenceBreakdown struct {
	Dimension  string  `json:"dimension" yaml:"dimension"`
	Preference string  `json:"preference" yaml:"preference"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// Comparison es la similitud (0-100) entre dos resultados resumidos.
type Comparison struct {
	First      AnalysisSummary `json:"first" yaml:"first"`
	Second     AnalysisSummary `json:"second" yaml:"second"`
	Similarity float64         `json:"similarity" yaml:"similarity"`
}
