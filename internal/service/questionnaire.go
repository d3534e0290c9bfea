package service

import "mbti-predictor/internal/domain"

// questionSet sigue el orden de dimensions; concatenado define el layout del vector de respuestas.
var questionSet = [dimensionCount][questionsPerDimension]string{
	{
		"I prefer group activities over solo activities",
		"I feel energized after social interactions",
		"I tend to think out loud rather than think silently",
		"I am usually the one to start conversations",
		"I enjoy being the center of attention",
	},
	{
		"I focus more on details than the big picture",
		"I trust experience more than theoretical possibilities",
		"I prefer practical solutions over creative ones",
		"I like working with concrete facts rather than abstract concepts",
		"I value tradition and proven methods",
	},
	{
		"I make decisions based on logic rather than feelings",
		"I value objective truth over personal feelings",
		"I prefer honest feedback over tactful communication",
		"I solve problems by analyzing facts rather than considering feelings",
		"I tend to be more critical than sympathetic",
	},
	{
		"I prefer having a structured schedule",
		"I like to plan ahead rather than be spontaneous",
		"I prefer having things settled and decided",
		"I feel stressed when things are disorganized",
		"I like to have clear rules and guidelines",
	},
}

// Questions returns the 20 prompts in response-vector order.
func Questions() []domain.Question {
	out := make([]domain.Question, 0, responseCount)
	for d, prompts := range questionSet {
		for q, prompt := range prompts {
			out = append(out, domain.Question{
				Index:     d*questionsPerDimension + q,
				Dimension: dimensions[d].Code,
				Prompt:    prompt,
			})
		}
	}
	return out
}

// QuestionsFor returns the prompts of one dimension with their response positions,
// or nil if the code is unknown.
func QuestionsFor(code string) []domain.Question {
	var out []domain.Question
	for _, q := range Questions() {
		if q.Dimension == code {
			out = append(out, q)
		}
	}
	return out
}
