package chat

import (
	"strconv"
	"strings"

	"github.com/mediguide/backend/internal/domain/entities"
)

// topicResponse pairs a topic keyword with its canned response variants.
// Table order matters: the first topic whose keyword appears in the message
// wins the scan.
type topicResponse struct {
	topic     string
	responses []string
}

var topicResponses = []topicResponse{
	{"treatments", []string{
		"At {hospital}, we offer a range of treatments including specialized surgical procedures, non-invasive therapies, and preventative care programs tailored to each patient's needs.",
		"The medical team at {hospital} is trained in the latest treatment protocols and uses state-of-the-art equipment for optimal patient outcomes.",
		"{hospital} specializes in treatments for {specialties}, with dedicated specialists available for consultations.",
	}},
	{"doctors", []string{
		"{hospital} is proud to host over {doctorCount} experienced medical professionals across various specialties.",
		"Our doctors at {hospital} include specialists in {specialties}, all committed to providing compassionate care.",
		"The medical team at {hospital} is led by renowned physicians who are pioneers in their respective fields.",
	}},
	{"facilities", []string{
		"{hospital} features modern facilities including advanced operating theaters, diagnostic imaging centers, and comfortable patient rooms.",
		"Our facilities at {hospital} are designed with patient comfort in mind, with private rooms, family waiting areas, and accessible amenities.",
		"The state-of-the-art infrastructure at {hospital} includes the latest medical technologies and equipment for accurate diagnosis and effective treatment.",
	}},
	{"emergency", []string{
		"The emergency department at {hospital} is open 24/7 and equipped to handle all types of medical emergencies.",
		"For emergencies, please come directly to {hospital}'s emergency entrance or call our emergency hotline at {contact}.",
		"{hospital} has a dedicated trauma team ready to respond to critical emergencies with rapid assessment and intervention.",
	}},
	{"insurance", []string{
		"{hospital} accepts most major insurance plans and our staff can assist with verifying your coverage before treatment.",
		"We work with various insurance providers to ensure our patients at {hospital} receive the maximum benefits available.",
		"For questions about insurance coverage at {hospital}, please contact our billing department or bring your insurance information during your visit.",
	}},
	{"covid", []string{
		"{hospital} follows strict COVID-19 protocols including screening, sanitization, and separate treatment areas for COVID patients.",
		"We have implemented comprehensive safety measures at {hospital} to protect patients and staff during the pandemic.",
		"For COVID-19 testing and treatment options at {hospital}, please call our dedicated COVID helpline before visiting.",
	}},
	{"pharmacy", []string{
		"{hospital} has an in-house pharmacy that stocks a wide range of medications and medical supplies.",
		"Our pharmacy at {hospital} is open from 8 AM to 8 PM daily, with extended hours for emergencies.",
		"Patients at {hospital} can have their prescriptions filled at our pharmacy or delivered to their rooms during their stay.",
	}},
	{"parking", []string{
		"{hospital} provides both free and paid parking options for patients and visitors.",
		"Valet parking is available at the main entrance of {hospital} for a nominal fee.",
		"There are designated parking spaces near all entrances of {hospital} for patients with disabilities.",
	}},
	{"visiting", []string{
		"Visiting hours at {hospital} are from 10 AM to 8 PM daily, with restrictions in intensive care units.",
		"We encourage family support at {hospital}, with comfortable waiting areas and accommodations for overnight stays when necessary.",
		"To ensure patient rest and recovery, {hospital} limits visitors to two per patient at any given time.",
	}},
	{"nutrition", []string{
		"{hospital} provides personalized dietary services to meet specific nutritional needs and preferences.",
		"Our nutrition team at {hospital} works closely with doctors to create meal plans that support patient recovery.",
		"Special dietary requirements, including religious and cultural preferences, are accommodated at {hospital}.",
	}},
	{"rehabilitation", []string{
		"{hospital} offers comprehensive rehabilitation services including physical therapy, occupational therapy, and speech therapy.",
		"Our rehabilitation center at {hospital} features specialized equipment and trained therapists for optimal recovery.",
		"Patients at {hospital} receive individualized rehabilitation plans designed to restore function and improve quality of life.",
	}},
	{"telemedicine", []string{
		"{hospital} provides telemedicine services for follow-up consultations and non-emergency medical advice.",
		"Virtual appointments at {hospital} can be scheduled through our website or by calling our appointment line.",
		"Telemedicine at {hospital} ensures continued care for patients who cannot visit in person, with secure and private video consultations.",
	}},
	{"languages", []string{
		"{hospital} offers interpretation services for patients who speak languages other than English.",
		"Our staff at {hospital} includes professionals fluent in multiple languages to assist diverse patient populations.",
		"For language assistance at {hospital}, please inform the reception desk when scheduling your appointment.",
	}},
	{"locations", []string{
		"We have partner hospitals across India including in non-metro cities like Noida, Gorakhpur, Patna, Lucknow, Jaipur, and many more.",
		"Our healthcare network extends to over 100 cities across India, including tier-2 and tier-3 cities.",
		"You can find quality healthcare in your city through our network of affiliated hospitals and clinics throughout India.",
	}},
	{"tier2cities", []string{
		"We provide comprehensive healthcare services in tier-2 cities like Bhopal, Indore, Kanpur, Lucknow, Nagpur, Vadodara, and many others.",
		"Our hospital network includes facilities in growing cities like Varanasi, Patna, Ranchi, Raipur, and Visakhapatnam.",
		"Quality healthcare is available through our partner hospitals in cities like Allahabad, Jalandhar, Ludhiana, and Chandigarh.",
	}},
	{"tier3cities", []string{
		"We ensure healthcare access in smaller cities like Gorakhpur, Siliguri, Jammu, Jodhpur, and similar tier-3 cities across India.",
		"Our affiliated medical facilities serve patients in places like Aligarh, Moradabad, Saharanpur, and other developing urban areas.",
		"Through our network, patients can access specialized care in cities like Bareilly, Tirupati, Ajmer, and similar locations.",
	}},
}

// legacyResponse is the older single-answer question table, consulted only
// when no topic keyword matched. Matching is substring containment of the
// lower-cased question text.
type legacyResponse struct {
	question string
	answer   string
}

var legacyResponses = []legacyResponse{
	{"How do I book an appointment?", "You can book an appointment by following these steps:\n1. Call our helpline at {contact}\n2. Use our online booking system on our website\n3. Visit the hospital reception in person\n4. Use the appointment tab on this page"},
	{"What are the visiting hours?", "Our visiting hours are from 10:00 AM to 8:00 PM every day. For ICU patients, there are special visiting hours from 11:00 AM to 12:00 PM and 5:00 PM to 6:00 PM."},
	{"Do you accept insurance?", "Yes, we accept most major insurance providers. Please bring your insurance card and ID when you visit. You can call our billing department at {contact} to confirm if your specific insurance plan is accepted."},
	{"How to reach this hospital?", "You can find our exact location on the map tab. We're located at {address}. Public transport options include buses and metro. Parking is available for private vehicles."},
	{"What documents are required?", "For your first visit, please bring:\n• A valid government ID\n• Your insurance card (if applicable)\n• Previous medical records and test reports\n• Any referral letters from your primary doctor"},
	{"What's the emergency contact number?", "Our emergency helpline is available 24/7 at {contact}. For medical emergencies, please dial this number immediately for guidance and assistance."},
	{"suggest government hospitals", "Here are some recommended government hospitals across India:\n1. AIIMS - Known for comprehensive care (Delhi, Bhopal, Jodhpur, Patna, etc.)\n2. Safdarjung Hospital - Excellent emergency services\n3. Ram Manohar Lohia Hospital - Affordable quality care\n4. JIPMER Puducherry - Advanced medical education and care\n5. PGI Chandigarh - Leading research and treatment center\n6. King George's Medical University, Lucknow - Comprehensive care in UP\n7. Medical College Kolkata - Historic institution with extensive services\nWould you like specific details about any of these?"},
	{"free health camps", "Government hospitals regularly organize free health camps across India, including tier-2 and tier-3 cities. The upcoming camps include:\n1. General Health Checkup Camp\n2. Eye Checkup Camp\n3. Dental Camp\n4. Women's Health Camp\nContact the hospital's public relations office for exact dates and registration."},
	{"average waiting times", "Waiting times vary by department and location. Generally:\n- Morning OPD: 1-2 hours\n- Emergency: Immediate attention for critical cases\n- Specialty consultations: 30-90 minutes\n- Diagnostic tests: 1-3 hours\nTip: Coming early morning usually means shorter waiting times."},
	{"hospitals in tier 2 cities", "India has excellent healthcare facilities in tier-2 cities, including:\n1. Apollo Hospitals in Bhubaneswar, Madurai, Vizag\n2. Fortis Hospitals in Mohali, Amritsar, Jaipur\n3. Medanta in Indore, Lucknow\n4. Max Healthcare in Dehradun, Bathinda\n5. Government Medical Colleges in most state capitals\nMany of these offer specialized care comparable to metro hospitals."},
	{"hospitals in tier 3 cities", "Healthcare is improving in smaller cities with facilities like:\n1. District Hospitals in every district headquarters\n2. Medical Colleges in places like Gorakhpur, Rewa, Shimoga, Raichur\n3. Private multi-specialty hospitals opening branches\n4. Ayushman empaneled hospitals for affordable care\nMany patients can now get quality treatment without traveling to metros."}}

// PredefinedQuestions are suggestion chips shown alongside the assistant.
var PredefinedQuestions = []string{
	"How do I book an appointment?",
	"What are the visiting hours?",
	"Do you accept insurance?",
	"How to reach this hospital?",
	"I have severe headache and fever",
	"Analyze my symptoms: coughing and chest pain",
	"Hospitals in Gorakhpur?",
	"I'm feeling anxious with stomach pain",
	"First aid for burns?",
	"What specialist should I see for joint pain?",
}

// FormatResponse substitutes hospital placeholders into a canned response.
// Missing hospital fields get generic fallbacks so templates never render
// with holes.
func FormatResponse(response string, hospital *entities.Hospital) string {
	contact := hospital.Contact
	if contact == "" {
		contact = "our contact number"
	}
	address := hospital.Address
	if address == "" {
		address = "our address"
	}
	specialties := strings.Join(hospital.Specialties, ", ")
	if specialties == "" {
		specialties = "various medical fields"
	}

	r := strings.NewReplacer(
		"{hospital}", hospital.Name,
		"{contact}", contact,
		"{address}", address,
		"{specialties}", specialties,
		"{doctorCount}", strconv.Itoa(hospital.ID*10+5),
	)
	return r.Replace(response)
}
