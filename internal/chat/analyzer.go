package chat

import (
	"fmt"
	"strings"

	"github.com/mediguide/backend/internal/domain/entities"
)

const noSymptomsMessage = "I couldn't identify specific symptoms from your description. Please describe your symptoms more clearly, such as 'headache', 'stomach pain', or 'fever'."

const disclaimer = "Please note: This is not a substitute for professional medical advice. If you're experiencing severe symptoms, please seek immediate medical attention."

// AnalyzeSymptoms scans text for known symptom phrases and composes a
// specialist recommendation. The second return reports whether any symptom
// was detected; when it is false the message is a clarifying question.
func AnalyzeSymptoms(text string, hospital *entities.Hospital) (string, bool) {
	lower := strings.ToLower(text)

	var detected []string
	var recommended []string
	seen := make(map[string]bool)
	firstAid := ""

	for _, entry := range symptomSpecialties {
		if !strings.Contains(lower, entry.symptom) {
			continue
		}
		detected = append(detected, entry.symptom)
		for _, specialty := range entry.specialties {
			if !seen[specialty] {
				seen[specialty] = true
				recommended = append(recommended, specialty)
			}
		}
		// Later symptoms overwrite earlier first-aid picks; only one
		// aid block is ever emitted.
		for _, aid := range firstAidAdvice {
			if strings.Contains(entry.symptom, aid.condition) || strings.Contains(aid.condition, entry.symptom) {
				firstAid = aid.advice
				break
			}
		}
	}

	if len(detected) == 0 {
		return noSymptomsMessage, false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your described symptoms (%s), I would recommend consulting with the following specialists:\n\n", strings.Join(detected, ", "))
	for i, specialty := range recommended {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("- " + specialty)
	}
	if firstAid != "" {
		b.WriteString("\n\n**First Aid/Precautions:**\n" + firstAid)
	}
	b.WriteString("\n\n" + disclaimer)

	var matching []string
	for _, s := range hospital.Specialties {
		for _, r := range recommended {
			if strings.Contains(strings.ToLower(s), strings.ToLower(r)) {
				matching = append(matching, s)
				break
			}
		}
	}
	if len(matching) > 0 {
		fmt.Fprintf(&b, "\n\nGood news! %s offers services in %s. Would you like to schedule an appointment?", hospital.Name, strings.Join(matching, ", "))
	}

	return b.String(), true
}
