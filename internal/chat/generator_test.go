package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedResponder always picks the first canned variant for a topic.
func fixedResponder() *Responder {
	return NewResponderWithRand(func(int) int { return 0 })
}

func TestGenerate_Greeting(t *testing.T) {
	r := fixedResponder()
	got := r.Generate("Hello, what can you do?", testHospital())
	assert.Contains(t, got, "Welcome to Apollo Hospitals's AI assistant")
}

func TestGenerate_GreetingMustBePrefix(t *testing.T) {
	r := fixedResponder()
	got := r.Generate("I wanted to say hello", testHospital())
	assert.NotContains(t, got, "Welcome to")
}

func TestGenerate_Thanks(t *testing.T) {
	r := fixedResponder()
	got := r.Generate("ok thanks!", testHospital())
	assert.Equal(t, thanksResponse, got)
}

func TestGenerate_SymptomWithMood(t *testing.T) {
	r := fixedResponder()
	got := r.Generate("I'm worried, experiencing chest pain", testHospital())
	parts := strings.SplitN(got, "\n\n", 2)
	require.Len(t, parts, 2)
	assert.Contains(t, parts[0], "feeling anxious")
	assert.Contains(t, parts[1], "Based on your described symptoms (chest pain)")
}

func TestGenerate_SymptomOnly(t *testing.T) {
	r := fixedResponder()
	got := r.Generate("experiencing chest pain", testHospital())
	assert.True(t, strings.HasPrefix(got, "Based on your described symptoms"))
}

func TestGenerate_MoodOnlyAsksForSymptoms(t *testing.T) {
	r := fixedResponder()
	got := r.Generate("I feel very worried", testHospital())
	assert.Contains(t, got, "feeling anxious")
	assert.Contains(t, got, "describe any physical symptoms")
}

func TestGenerate_TriggerWithoutMatchFallsThrough(t *testing.T) {
	// "feel" fires symptom analysis, but nothing matches a mood or symptom
	// table entry, so later rules still run and "parking" lands in the topic
	// scan.
	r := fixedResponder()
	got := r.Generate("I feel the parking situation is unclear", testHospital())
	assert.Contains(t, got, "parking options")
}

func TestGenerate_TierCities(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"tier3", "any hospitals in tier 3 towns?", "tier-3 cities across India"},
		{"small city", "I live in a small city", "tier-3 cities across India"},
		{"tier2", "hospitals in tier 2?", "tier-2 cities like Bhopal"},
		{"generic non-metro", "anything in Noida?", "non-metro cities like Noida"},
	}
	r := fixedResponder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Generate(tt.message, testHospital())
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestGenerate_Suggest(t *testing.T) {
	r := fixedResponder()
	got := r.Generate("can you suggest a few hospitals", testHospital())
	assert.Contains(t, got, "1. Apollo Hospitals - Specializing in Cardiology, Neurology, Orthopedics, Oncology")
	assert.Contains(t, got, "AIIMS (All India Institute of Medical Sciences)")
	assert.Contains(t, got, "Safdarjung Hospital")
	assert.Contains(t, got, "Ram Manohar Lohia Hospital")
}

func TestGenerate_TopicScan(t *testing.T) {
	r := fixedResponder()
	got := r.Generate("what treatments do you offer", testHospital())
	assert.Equal(t, "At Apollo Hospitals, we offer a range of treatments including specialized surgical procedures, non-invasive therapies, and preventative care programs tailored to each patient's needs.", got)
}

func TestGenerate_TopicVariantsAreKnownSet(t *testing.T) {
	h := testHospital()
	wants := make([]string, 0, 3)
	for _, entry := range topicResponses {
		if entry.topic == "facilities" {
			for _, resp := range entry.responses {
				wants = append(wants, FormatResponse(resp, h))
			}
		}
	}
	require.Len(t, wants, 3)

	r := NewResponder()
	for i := 0; i < 20; i++ {
		got := r.Generate("tell me about your facilities", h)
		assert.Contains(t, wants, got)
	}
}

func TestGenerate_LegacyTable(t *testing.T) {
	r := fixedResponder()
	got := r.Generate("what documents are required?", testHospital())
	assert.Contains(t, got, "A valid government ID")
}

func TestGenerate_AppointmentOverride(t *testing.T) {
	r := fixedResponder()
	got := r.Generate("I want to book a visit", testHospital())
	assert.Contains(t, got, "To book an appointment at Apollo Hospitals")
	assert.Contains(t, got, "+91-11-2692-5858")
}

func TestGenerate_LocationOverridesAppointment(t *testing.T) {
	r := fixedResponder()
	got := r.Generate("where do I book?", testHospital())
	assert.Contains(t, got, "Apollo Hospitals is located at")
}

func TestGenerate_EmergencyOverridesEverything(t *testing.T) {
	r := fixedResponder()
	got := r.Generate("where do I book an urgent visit?", testHospital())
	assert.Contains(t, got, "For medical emergencies, please call +91-11-2692-5858")
}

func TestGenerate_Fallback(t *testing.T) {
	r := fixedResponder()
	got := r.Generate("what is the meaning of life", testHospital())
	assert.Equal(t, fallbackResponse, got)
}
