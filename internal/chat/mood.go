package chat

import "strings"

type moodPattern struct {
	indicators []string
	response   string
}

// moodPatterns is scanned in order; the first indicator hit anywhere in the
// text decides the mood, regardless of how many other indicators also match.
var moodPatterns = []moodPattern{
	{
		indicators: []string{"anxious", "worried", "nervous", "anxiety", "panic", "stress", "stressed"},
		response:   "I notice you might be feeling anxious. Anxiety can affect your physical health too. Consider speaking with a mental health professional along with addressing your physical symptoms.",
	},
	{
		indicators: []string{"sad", "unhappy", "depressed", "depression", "down", "blue", "upset", "grief"},
		response:   "I sense you might be feeling down. Your emotional wellbeing is just as important as your physical health. I'd recommend considering both as you seek medical care.",
	},
	{
		indicators: []string{"angry", "frustrated", "annoyed", "mad", "irritated", "furious"},
		response:   "I understand you might be frustrated. It's important to address both your physical symptoms and any stress you're experiencing.",
	},
	{
		indicators: []string{"happy", "good", "great", "excellent", "wonderful", "fantastic"},
		response:   "I'm glad to hear you're in good spirits despite not feeling well physically. A positive outlook can help with recovery!",
	},
	{
		indicators: []string{"afraid", "scared", "frightened", "terrified", "fear"},
		response:   "It seems you might be concerned or scared about your symptoms. This is completely natural, but remember that getting proper medical advice is the best way to address health concerns.",
	},
	{
		indicators: []string{"tired", "exhausted", "fatigue", "sleepy", "drowsy", "lethargic"},
		response:   "You seem to be experiencing fatigue. Rest is important, but persistent tiredness can also be a symptom that should be evaluated by a healthcare professional.",
	},
}

// AnalyzeMood returns an empathetic sentence for the first mood indicator
// found in text, or "" when no indicator matches.
func AnalyzeMood(text string) string {
	lower := strings.ToLower(text)
	for _, pattern := range moodPatterns {
		for _, indicator := range pattern.indicators {
			if strings.Contains(lower, indicator) {
				return pattern.response
			}
		}
	}
	return ""
}
