package chat

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/mediguide/backend/internal/domain/entities"
)

const fallbackResponse = "I'm not sure about that. Can you ask something else about the hospital or booking appointments?"

const thanksResponse = "You're welcome! Is there anything else you'd like to know about the hospital or your healthcare needs?"

var (
	greetingRe = regexp.MustCompile(`(?i)^(hi|hello|hey|greetings)`)
	thanksRe   = regexp.MustCompile(`(?i)thank you|thanks|thx`)
)

var symptomTriggers = []string{"analyze", "symptom", "feel", "experiencing", "suffering", "pain", "ache"}

var tierCityKeywords = []string{"noida", "gorakhpur", "tier 2", "tier 3", "small city", "non-metro", "non metro"}

// Responder generates assistant replies for a hospital conversation. The
// random source is injectable so tests can pin which canned variant a topic
// yields.
type Responder struct {
	intn func(n int) int
}

func NewResponder() *Responder {
	return &Responder{intn: rand.Intn}
}

// NewResponderWithRand builds a Responder with a caller-supplied variant
// picker.
func NewResponderWithRand(intn func(n int) int) *Responder {
	return &Responder{intn: intn}
}

func (r *Responder) randomTopicResponse(topic string) string {
	for _, entry := range topicResponses {
		if entry.topic == topic {
			return entry.responses[r.intn(len(entry.responses))]
		}
	}
	return ""
}

// Generate walks the reply rule cascade for a single incoming message.
// The first five rules terminate immediately on match; the topic and legacy
// table scans only set a preliminary answer, which the appointment, location
// and emergency rules may then override, latest override winning.
func (r *Responder) Generate(message string, hospital *entities.Hospital) string {
	response := fallbackResponse
	lower := strings.ToLower(message)

	if containsAny(lower, symptomTriggers) {
		mood := AnalyzeMood(message)
		symptoms, found := AnalyzeSymptoms(message, hospital)
		switch {
		case mood != "" && found:
			return mood + "\n\n" + symptoms
		case found:
			return symptoms
		case mood != "":
			return mood + "\n\nCould you please describe any physical symptoms you're experiencing so I can provide better guidance?"
		}
		// Neither mood nor symptoms matched; keep walking the cascade.
	}

	if containsAny(lower, tierCityKeywords) {
		switch {
		case strings.Contains(lower, "tier 3") || strings.Contains(lower, "small"):
			return FormatResponse(r.randomTopicResponse("tier3cities"), hospital)
		case strings.Contains(lower, "tier 2"):
			return FormatResponse(r.randomTopicResponse("tier2cities"), hospital)
		default:
			return FormatResponse(r.randomTopicResponse("locations"), hospital)
		}
	}

	if strings.Contains(lower, "suggest") || strings.Contains(lower, "recommend") {
		return fmt.Sprintf("Based on your medical needs, I can suggest these hospitals:\n\n1. %s - Specializing in %s\n\n2. AIIMS (All India Institute of Medical Sciences) - Government hospital with comprehensive care\n\n3. Safdarjung Hospital - Another excellent government option\n\n4. Ram Manohar Lohia Hospital - Known for affordable quality care\n\nWould you like more specific information about any of these hospitals?",
			hospital.Name, strings.Join(hospital.Specialties, ", "))
	}

	if greetingRe.MatchString(strings.TrimSpace(lower)) {
		return fmt.Sprintf("Hello there! 👋 Welcome to %s's AI assistant. How may I help you today? You can ask about our services, doctors, booking appointments, facilities, or describe your symptoms for specialist recommendations.", hospital.Name)
	}

	if thanksRe.MatchString(lower) {
		return thanksResponse
	}

	for _, entry := range topicResponses {
		if strings.Contains(lower, entry.topic) {
			response = FormatResponse(entry.responses[r.intn(len(entry.responses))], hospital)
			break
		}
	}

	if response == fallbackResponse {
		for _, entry := range legacyResponses {
			if strings.Contains(lower, strings.ToLower(entry.question)) {
				response = FormatResponse(entry.answer, hospital)
				break
			}
		}
	}

	if strings.Contains(lower, "appointment") || strings.Contains(lower, "book") || strings.Contains(lower, "schedule") {
		contact := hospital.Contact
		if contact == "" {
			contact = "our main contact number"
		}
		response = fmt.Sprintf("To book an appointment at %s, you can:\n    \n1. Call our appointment desk at %s\n2. Visit our website and use the online booking form\n3. Use the \"Book Appointment\" tab on this page to see available slots\n4. Walk in to our reception desk between 9am and 5pm\n\nWould you like me to guide you through the online booking process?",
			hospital.Name, contact)
	}

	if strings.Contains(lower, "where") || strings.Contains(lower, "location") || strings.Contains(lower, "direction") || strings.Contains(lower, "address") {
		address := hospital.Address
		if address == "" {
			address = "our registered address"
		}
		response = fmt.Sprintf("%s is located at %s. \n\nYou can view our exact location on the interactive map in the \"Map\" tab. The map shows nearby landmarks, parking facilities, and public transport options.\n\nWould you like directions from a specific location?",
			hospital.Name, address)
	}

	if strings.Contains(lower, "emergency") || strings.Contains(lower, "urgent") || strings.Contains(lower, "critical") {
		contact := hospital.Contact
		if contact == "" {
			contact = "our emergency number"
		}
		response = fmt.Sprintf("For medical emergencies, please call %s immediately or visit our 24/7 emergency department located at the east entrance of %s.\n\nOur emergency team is equipped to handle all types of medical emergencies with minimal waiting time. If you're experiencing severe symptoms like chest pain, difficulty breathing, or severe bleeding, please seek immediate medical attention.",
			contact, hospital.Name)
	}

	return response
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
