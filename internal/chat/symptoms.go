package chat

// symptomSpecialty pairs a symptom phrase with the specialties a patient
// should consult for it. Kept as a slice because scan order is part of the
// behavior: specialties accumulate in the order symptoms are discovered.
type symptomSpecialty struct {
	symptom     string
	specialties []string
}

var symptomSpecialties = []symptomSpecialty{
	// Heart related
	{"chest pain", []string{"Cardiology", "Emergency Medicine"}},
	{"heart palpitations", []string{"Cardiology"}},
	{"shortness of breath", []string{"Cardiology", "Pulmonology"}},
	{"high blood pressure", []string{"Cardiology", "Internal Medicine"}},

	// Digestive system
	{"stomach pain", []string{"Gastroenterology"}},
	{"indigestion", []string{"Gastroenterology"}},
	{"nausea", []string{"Gastroenterology", "General Medicine"}},
	{"vomiting", []string{"Gastroenterology", "Emergency Medicine"}},
	{"diarrhea", []string{"Gastroenterology"}},
	{"constipation", []string{"Gastroenterology"}},

	// Respiratory
	{"cough", []string{"Pulmonology", "ENT"}},
	{"sore throat", []string{"ENT", "General Medicine"}},
	{"runny nose", []string{"ENT", "Allergy and Immunology"}},
	{"difficulty breathing", []string{"Pulmonology", "Emergency Medicine"}},

	// Musculoskeletal
	{"joint pain", []string{"Orthopedics", "Rheumatology"}},
	{"back pain", []string{"Orthopedics", "Neurology"}},
	{"muscle pain", []string{"Orthopedics", "Physical Therapy"}},

	// Neurological
	{"headache", []string{"Neurology"}},
	{"migraine", []string{"Neurology"}},
	{"dizziness", []string{"Neurology", "ENT"}},
	{"memory problems", []string{"Neurology", "Psychiatry"}},

	// Mental health
	{"depression", []string{"Psychiatry", "Psychology"}},
	{"anxiety", []string{"Psychiatry", "Psychology"}},
	{"stress", []string{"Psychiatry", "Psychology"}},
	{"mood swings", []string{"Psychiatry"}},
	{"insomnia", []string{"Psychiatry", "Sleep Medicine"}},

	// Skin
	{"rash", []string{"Dermatology", "Allergy and Immunology"}},
	{"skin infection", []string{"Dermatology"}},
	{"acne", []string{"Dermatology"}},

	// Eye
	{"blurry vision", []string{"Ophthalmology"}},
	{"eye pain", []string{"Ophthalmology"}},
	{"red eye", []string{"Ophthalmology"}},

	// General
	{"fever", []string{"General Medicine", "Infectious Disease"}},
	{"fatigue", []string{"General Medicine", "Endocrinology"}},
	{"weight loss", []string{"Endocrinology", "Gastroenterology"}},
	{"weight gain", []string{"Endocrinology", "Nutrition"}},

	// Women's health
	{"menstrual pain", []string{"Gynecology"}},
	{"pregnancy", []string{"Obstetrics and Gynecology"}},
	{"breast pain", []string{"Gynecology", "Oncology"}},

	// Urinary
	{"urinary problems", []string{"Urology", "Nephrology"}},
	{"kidney pain", []string{"Nephrology", "Urology"}},

	// Children
	{"childhood illness", []string{"Pediatrics"}},

	// Ear, nose, and throat
	{"ear pain", []string{"ENT"}},
	{"hearing loss", []string{"ENT", "Audiology"}},

	// Other
	{"diabetes", []string{"Endocrinology"}},
	{"allergy", []string{"Allergy and Immunology"}},
	{"vaccination", []string{"Preventive Medicine"}},
}

type firstAidEntry struct {
	condition string
	advice    string
}

var firstAidAdvice = []firstAidEntry{
	{"fever", "Take rest, stay hydrated, and use a cold compress if temperature is high. Take paracetamol if needed after consulting with a healthcare provider."},
	{"headache", "Rest in a quiet, dark room. Apply a cold or warm compress to your forehead or neck. Stay hydrated and avoid triggers like loud sounds and bright lights."},
	{"cuts", "Clean the wound with soap and water, apply pressure to stop bleeding, apply an antiseptic, and cover with a sterile bandage."},
	{"burns", "Run cool (not cold) water over the burn for 10-15 minutes. Do not apply ice directly. Cover with a clean, dry cloth."},
	{"sprains", "Remember RICE: Rest, Ice, Compression, and Elevation. Avoid putting weight on the injured area."},
	{"fractures", "Immobilize the area, apply ice to reduce swelling, and seek immediate medical attention."},
	{"choking", "Perform the Heimlich maneuver if someone is choking and unable to speak."},
	{"heart attack", "Call emergency services immediately. Have the person sit down and rest while waiting for help."},
	{"stroke", "Remember FAST: Face drooping, Arm weakness, Speech difficulty, Time to call emergency services."},
	{"poisoning", "Call poison control immediately. Do not induce vomiting unless instructed by medical professionals."},
	{"dehydration", "Drink small amounts of water frequently. For severe dehydration, oral rehydration solutions are recommended."},
	{"heat exhaustion", "Move to a cooler place, drink water, and apply cool compresses."},
	{"allergic reaction", "Remove the allergen if possible. For severe reactions with difficulty breathing, seek emergency help immediately."},
	{"insect bites", "Clean the area, apply a cold compress to reduce swelling, and use anti-itch cream if needed."},
}
