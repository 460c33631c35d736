package memory

import "github.com/mediguide/backend/internal/domain/entities"

// cityCoordinates resolves a hospital's city to coordinates. Hospitals in
// cities missing from this table keep a nil Coordinates field and are
// excluded from distance filtering and sorting.
var cityCoordinates = map[string]entities.Location{
	"Delhi":     {Latitude: 28.6139, Longitude: 77.2090},
	"Mumbai":    {Latitude: 19.0760, Longitude: 72.8777},
	"Bangalore": {Latitude: 12.9716, Longitude: 77.5946},
	"Gurugram":  {Latitude: 28.4595, Longitude: 77.0266},
	"Pune":      {Latitude: 18.5204, Longitude: 73.8567},
	"Vellore":   {Latitude: 12.9165, Longitude: 79.1325},
}

func coords(city string) *entities.Location {
	if loc, ok := cityCoordinates[city]; ok {
		l := loc
		return &l
	}
	return nil
}

func cost(min, max float64) *entities.CostRange {
	return &entities.CostRange{Min: min, Max: max}
}

var onlineBookingSteps = []string{
	"Visit the hospital website or call the helpline",
	"Register with your personal and contact details",
	"Select specialty and preferred doctor",
	"Choose available date and time slot",
	"Pay consultation fee online or at hospital",
	"Receive appointment confirmation via SMS/email",
}

var privateInsurance = []string{"Star Health", "HDFC ERGO", "ICICI Lombard", "Mediclaim", "Cashless"}

var governmentInsurance = []string{"CGHS", "ECHS", "ESI", "Government Schemes"}

func seedHospitals() []entities.Hospital {
	return []entities.Hospital{
		{
			ID:                 1,
			Name:               "Apollo Hospitals",
			Location:           "Delhi",
			Address:            "Sarita Vihar, Delhi-Mathura Road, New Delhi, Delhi 110076",
			Specialties:        []string{"Cardiology", "Neurology", "Orthopedics", "Oncology"},
			Facilities:         []string{"Emergency Care", "ICU", "Pharmacy", "Laboratory", "Radiology"},
			WaitingTimeMinutes: 45,
			Fees:               1500,
			Rating:             4.7,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-11-2692-5858",
			Email:              "info@apollohospitals.com",
			Website:            "www.apollohospitals.com",
			EmergencyAvailable: true,
			AcceptedInsurance:  privateInsurance,
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(1500, 25000),
			Coordinates:        coords("Delhi"),
		},
		{
			ID:                 2,
			Name:               "Fortis Healthcare",
			Location:           "Mumbai",
			Address:            "Mulund Goregaon Link Road, Mumbai, Maharashtra 400078",
			Specialties:        []string{"Gastroenterology", "Dermatology", "Pulmonology", "ENT"},
			Facilities:         []string{"Cath Lab", "Emergency Care", "Blood Bank", "Pharmacy"},
			WaitingTimeMinutes: 30,
			Fees:               1800,
			Rating:             4.5,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-22-4925-4925",
			Email:              "enquiries@fortishealthcare.com",
			Website:            "www.fortishealthcare.com",
			EmergencyAvailable: true,
			AcceptedInsurance:  []string{"Star Health", "HDFC ERGO", "ICICI Lombard", "Cashless"},
			AppointmentSteps: []string{
				"Call the hospital appointment helpline",
				"Provide your personal details and medical concern",
				"Select your preferred doctor or let them assign one",
				"Choose from available appointment slots",
				"Confirm your appointment",
				"Arrive 30 minutes before your scheduled time",
			},
			EstimatedCost: cost(1800, 30000),
			Coordinates:   coords("Mumbai"),
		},
		{
			ID:                 3,
			Name:               "Max Super Speciality Hospital",
			Location:           "Delhi",
			Address:            "Press Enclave Road, Saket, Delhi, 110017",
			Specialties:        []string{"Cardiology", "Nephrology", "Neurology", "Gastroenterology"},
			Facilities:         []string{"Emergency Care", "ICU", "Dialysis Unit", "Pharmacy"},
			WaitingTimeMinutes: 60,
			Fees:               1200,
			Rating:             4.6,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-11-2651-5050",
			Email:              "info@maxhospitals.com",
			Website:            "www.maxhospitals.com",
			EmergencyAvailable: true,
			AcceptedInsurance:  privateInsurance,
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(1200, 25000),
			Coordinates:        coords("Delhi"),
		},
		{
			ID:                 4,
			Name:               "Medanta - The Medicity",
			Location:           "Gurugram",
			Address:            "CH Baktawar Singh Road, Sector 38, Gurugram, 122001",
			Specialties:        []string{"Liver", "Cardiology", "Neurosurgery", "Oncology"},
			Facilities:         []string{"Transplant Unit", "Emergency Care", "ICU", "Pharmacy"},
			WaitingTimeMinutes: 40,
			Fees:               2000,
			Rating:             4.8,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-124-4141-414",
			Email:              "info@medanta.com",
			Website:            "www.medanta.com",
			EmergencyAvailable: true,
			AcceptedInsurance:  []string{"Star Health", "Bajaj Allianz", "ICICI Lombard", "Cashless"},
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(2000, 25000),
			Coordinates:        coords("Gurugram"),
		},
		{
			ID:                 5,
			Name:               "AIIMS",
			Location:           "Delhi",
			Address:            "Ansari Nagar East, New Delhi, Delhi 110029",
			Specialties:        []string{"General Medicine", "Cardiology", "Neurology", "Oncology"},
			Facilities:         []string{"Trauma Center", "Research Labs", "Medical College", "Super Specialty"},
			WaitingTimeMinutes: 90,
			Fees:               200,
			Rating:             4.4,
			Category:           entities.CategoryGovernment,
			Contact:            "+91-11-2658-8500",
			Email:              "info@aiims.edu",
			Website:            "www.aiims.edu",
			EmergencyAvailable: true,
			AcceptedInsurance:  governmentInsurance,
			AppointmentSteps: []string{
				"Register on AIIMS online portal or in person",
				"Obtain a UHID (Unique Hospital ID) number",
				"Book an appointment through the online system",
				"Pay the registration fee (Rs 10 for general category)",
				"Receive appointment slip with date and time",
				"Bring all medical records and government ID on appointment day",
			},
			EstimatedCost: cost(10, 5000),
			Coordinates:   coords("Delhi"),
		},
		{
			ID:                 6,
			Name:               "Lilavati Hospital",
			Location:           "Mumbai",
			Address:            "A-791, Bandra Reclamation, Bandra West, Mumbai, 400050",
			Specialties:        []string{"Orthopedics", "Gastroenterology", "Urology", "Cardiology"},
			Facilities:         []string{"Emergency Care", "ICU", "Pharmacy", "Blood Bank"},
			WaitingTimeMinutes: 35,
			Fees:               1700,
			Rating:             4.6,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-22-2675-1000",
			Email:              "info@lilavatihospital.com",
			Website:            "www.lilavatihospital.com",
			EmergencyAvailable: true,
			AcceptedInsurance:  privateInsurance,
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(1700, 25000),
			Coordinates:        coords("Mumbai"),
		},
		{
			ID:                 7,
			Name:               "Kokilaben Dhirubhai Ambani Hospital",
			Location:           "Mumbai",
			Address:            "Rao Saheb Achutrao Patwardhan Marg, Four Bungalows, Mumbai, 400053",
			Specialties:        []string{"Neurology", "Oncology", "Cardiac Sciences", "Liver"},
			Facilities:         []string{"Robotic Surgery", "Emergency Care", "ICU", "Pharmacy"},
			WaitingTimeMinutes: 50,
			Fees:               2200,
			Rating:             4.7,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-22-4269-6969",
			Email:              "info@kokilabenhospital.com",
			Website:            "www.kokilabenhospital.com",
			EmergencyAvailable: true,
			AcceptedInsurance:  []string{"HDFC ERGO", "ICICI Lombard", "Bajaj Allianz", "Cashless"},
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(2200, 25000),
			Coordinates:        coords("Mumbai"),
		},
		{
			ID:                 8,
			Name:               "Manipal Hospitals",
			Location:           "Bangalore",
			Address:            "98, HAL Old Airport Road, Bangalore, 560017",
			Specialties:        []string{"Cardiology", "Orthopedics", "Nephrology", "Neurology"},
			Facilities:         []string{"Emergency Care", "ICU", "Dialysis Unit", "Pharmacy"},
			WaitingTimeMinutes: 40,
			Fees:               1300,
			Rating:             4.5,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-80-2502-4444",
			Email:              "info@manipalhospitals.com",
			Website:            "www.manipalhospitals.com",
			EmergencyAvailable: true,
			AcceptedInsurance:  privateInsurance,
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(1300, 25000),
			Coordinates:        coords("Bangalore"),
		},
		{
			ID:                 9,
			Name:               "Narayana Health",
			Location:           "Bangalore",
			Address:            "258/A, Bommasandra Industrial Area, Bangalore, 560099",
			Specialties:        []string{"Cardiac Sciences", "Oncology", "Orthopedics", "Neurology"},
			Facilities:         []string{"Heart Institute", "Emergency Care", "ICU", "Pharmacy"},
			WaitingTimeMinutes: 55,
			Fees:               1000,
			Rating:             4.4,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-80-7122-2222",
			Email:              "info@narayanahealth.org",
			Website:            "www.narayanahealth.org",
			EmergencyAvailable: true,
			AcceptedInsurance:  []string{"Star Health", "Mediclaim", "Cashless"},
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(1000, 25000),
			Coordinates:        coords("Bangalore"),
		},
		{
			ID:                 10,
			Name:               "Tata Memorial Hospital",
			Location:           "Mumbai",
			Address:            "Dr Ernest Borges Road, Parel, Mumbai, 400012",
			Specialties:        []string{"Oncology", "Radiation Therapy", "Surgical Oncology"},
			Facilities:         []string{"Cancer Center", "Radiation Unit", "Research Labs", "Pharmacy"},
			WaitingTimeMinutes: 75,
			Fees:               800,
			Rating:             4.7,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-22-2417-7000",
			Email:              "info@tmc.gov.in",
			Website:            "www.tmc.gov.in",
			EmergencyAvailable: false,
			AcceptedInsurance:  []string{"CGHS", "Mediclaim", "Cashless"},
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(800, 25000),
			Coordinates:        coords("Mumbai"),
		},
		{
			ID:                 11,
			Name:               "Christian Medical College",
			Location:           "Vellore",
			Address:            "Ida Scudder Road, Vellore, 632004",
			Specialties:        []string{"General Medicine", "Cardiology", "Neurology", "Gastroenterology"},
			Facilities:         []string{"Medical College", "Emergency Care", "ICU", "Pharmacy"},
			WaitingTimeMinutes: 65,
			Fees:               900,
			Rating:             4.6,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-416-228-1000",
			Email:              "info@cmcvellore.ac.in",
			Website:            "www.cmcvellore.ac.in",
			EmergencyAvailable: true,
			AcceptedInsurance:  []string{"Star Health", "Mediclaim", "ECHS"},
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(900, 25000),
			Coordinates:        coords("Vellore"),
		},
		{
			ID:                 12,
			Name:               "Artemis Hospital",
			Location:           "Gurugram",
			Address:            "Sector 51, Gurugram, 122001",
			Specialties:        []string{"Orthopedics", "Cardiology", "Neurosciences", "Liver"},
			Facilities:         []string{"Emergency Care", "ICU", "Pharmacy", "Radiology"},
			WaitingTimeMinutes: 30,
			Fees:               1700,
			Rating:             4.5,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-124-4511-111",
			Email:              "info@artemishospitals.com",
			Website:            "www.artemishospitals.com",
			EmergencyAvailable: true,
			AcceptedInsurance:  privateInsurance,
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(1700, 25000),
			Coordinates:        coords("Gurugram"),
		},
		{
			ID:                 13,
			Name:               "Sir Ganga Ram Hospital",
			Location:           "Delhi",
			Address:            "Rajinder Nagar, New Delhi, 110060",
			Specialties:        []string{"Gastroenterology", "Nephrology", "Neurology", "Cardiology"},
			Facilities:         []string{"Emergency Care", "ICU", "Dialysis Unit", "Blood Bank"},
			WaitingTimeMinutes: 60,
			Fees:               1400,
			Rating:             4.6,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-11-2575-0000",
			Email:              "info@sgrh.com",
			Website:            "www.sgrh.com",
			EmergencyAvailable: true,
			AcceptedInsurance:  privateInsurance,
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(1400, 25000),
			Coordinates:        coords("Delhi"),
		},
		{
			ID:                 14,
			Name:               "Jaslok Hospital",
			Location:           "Mumbai",
			Address:            "15, Dr Deshmukh Marg, Pedder Road, Mumbai, 400026",
			Specialties:        []string{"Neurology", "Cardiology", "Gastroenterology", "Oncology"},
			Facilities:         []string{"Emergency Care", "ICU", "Pharmacy", "Radiology"},
			WaitingTimeMinutes: 45,
			Fees:               1600,
			Rating:             4.5,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-22-6657-3333",
			Email:              "info@jaslokhospital.net",
			Website:            "www.jaslokhospital.net",
			EmergencyAvailable: true,
			AcceptedInsurance:  []string{"HDFC ERGO", "ICICI Lombard", "Cashless"},
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(1600, 25000),
			Coordinates:        coords("Mumbai"),
		},
		{
			ID:                 15,
			Name:               "Indraprastha Apollo Hospitals",
			Location:           "Delhi",
			Address:            "Mathura Road, Sarita Vihar, New Delhi, 110076",
			Specialties:        []string{"Liver", "Cardiology", "Neurosurgery", "Orthopedics"},
			Facilities:         []string{"Transplant Unit", "Emergency Care", "ICU", "Pharmacy"},
			WaitingTimeMinutes: 55,
			Fees:               1900,
			Rating:             4.7,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-11-7179-1090",
			Email:              "info@apollodelhi.com",
			Website:            "delhi.apollohospitals.com",
			EmergencyAvailable: true,
			AcceptedInsurance:  privateInsurance,
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(1900, 25000),
			Coordinates:        coords("Delhi"),
		},
		{
			ID:                 16,
			Name:               "Hinduja Hospital",
			Location:           "Mumbai",
			Address:            "Veer Savarkar Marg, Mahim West, Mumbai, 400016",
			Specialties:        []string{"Nephrology", "Urology", "Cardiology", "Neurology"},
			Facilities:         []string{"Dialysis Unit", "Emergency Care", "ICU", "Pharmacy"},
			WaitingTimeMinutes: 40,
			Fees:               1800,
			Rating:             4.6,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-22-2445-2222",
			Email:              "info@hindujahospital.com",
			Website:            "www.hindujahospital.com",
			EmergencyAvailable: true,
			AcceptedInsurance:  privateInsurance,
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(1800, 25000),
			Coordinates:        coords("Mumbai"),
		},
		{
			ID:                 17,
			Name:               "Columbia Asia Hospital",
			Location:           "Bangalore",
			Address:            "Kirloskar Business Park, Hebbal, Bangalore, 560024",
			Specialties:        []string{"Orthopedics", "Gastroenterology", "Pulmonology", "ENT"},
			Facilities:         []string{"Pharmacy", "Laboratory", "Radiology"},
			WaitingTimeMinutes: 30,
			Fees:               1200,
			Rating:             4.4,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-80-6165-6666",
			Email:              "info@columbiaasia.com",
			Website:            "www.columbiaasia.com",
			EmergencyAvailable: false,
			AcceptedInsurance:  []string{"Star Health", "Bajaj Allianz", "Cashless"},
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(1200, 25000),
			Coordinates:        coords("Bangalore"),
		},
		{
			ID:                 18,
			Name:               "Ruby Hall Clinic",
			Location:           "Pune",
			Address:            "40, Sassoon Road, Pune, 411001",
			Specialties:        []string{"Cardiology", "Neurology", "Orthopedics", "Oncology"},
			Facilities:         []string{"Emergency Care", "ICU", "Blood Bank", "Pharmacy"},
			WaitingTimeMinutes: 50,
			Fees:               1300,
			Rating:             4.5,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-20-2616-3391",
			Email:              "info@rubyhall.com",
			Website:            "www.rubyhall.com",
			EmergencyAvailable: true,
			AcceptedInsurance:  []string{"Star Health", "Mediclaim", "Cashless"},
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(1300, 25000),
			Coordinates:        coords("Pune"),
		},
		{
			ID:                 19,
			Name:               "Wockhardt Hospitals",
			Location:           "Mumbai",
			Address:            "1877, Dr Anand Rao Nair Road, Mumbai Central, 400011",
			Specialties:        []string{"Cardiology", "Orthopedics", "Neurology", "Gastroenterology"},
			Facilities:         []string{"Emergency Care", "ICU", "Pharmacy", "Radiology"},
			WaitingTimeMinutes: 35,
			Fees:               1700,
			Rating:             4.5,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-22-6178-4444",
			Email:              "info@wockhardthospitals.com",
			Website:            "www.wockhardthospitals.com",
			EmergencyAvailable: true,
			AcceptedInsurance:  privateInsurance,
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(1700, 25000),
			Coordinates:        coords("Mumbai"),
		},
		{
			ID:                 20,
			Name:               "BLK Super Speciality Hospital",
			Location:           "Delhi",
			Address:            "Pusa Road, Rajendra Place, New Delhi, 110005",
			Specialties:        []string{"Cardiology", "Neurology", "Orthopedics", "Liver"},
			Facilities:         []string{"Emergency Care", "ICU", "Transplant Unit", "Pharmacy"},
			WaitingTimeMinutes: 45,
			Fees:               1600,
			Rating:             4.6,
			Category:           entities.CategoryPrivate,
			Contact:            "+91-11-3040-3040",
			Email:              "info@blkhospital.com",
			Website:            "www.blkhospital.com",
			EmergencyAvailable: true,
			AcceptedInsurance:  privateInsurance,
			AppointmentSteps:   onlineBookingSteps,
			EstimatedCost:      cost(1600, 25000),
			Coordinates:        coords("Delhi"),
		},
		{
			ID:                 21,
			Name:               "Safdarjung Hospital",
			Location:           "Delhi",
			Address:            "Ansari Nagar West, New Delhi, Delhi 110029",
			Specialties:        []string{"General Medicine", "Emergency Care", "Orthopedics", "Gynecology"},
			Facilities:         []string{"Trauma Center", "Emergency Care", "Blood Bank", "Pharmacy"},
			WaitingTimeMinutes: 60,
			Fees:               100,
			Rating:             4.3,
			Category:           entities.CategoryGovernment,
			Contact:            "+91-11-2673-0000",
			Email:              "info@safdarjunghospital.gov.in",
			Website:            "www.safdarjunghospital.gov.in",
			EmergencyAvailable: true,
			AcceptedInsurance:  governmentInsurance,
			AppointmentSteps: []string{
				"Visit the hospital's registration counter",
				"Get an OPD card made",
				"Choose department based on medical need",
				"Get appointment slip with doctor details",
				"Pay nominal registration fee",
				"Wait for your turn to see the doctor",
			},
			EstimatedCost: cost(10, 2000),
			Coordinates:   coords("Delhi"),
		},
		{
			ID:                 22,
			Name:               "Ram Manohar Lohia Hospital",
			Location:           "Delhi",
			Address:            "Baba Kharak Singh Marg, New Delhi, Delhi 110001",
			Specialties:        []string{"General Surgery", "Internal Medicine", "Pediatrics", "Psychiatry"},
			Facilities:         []string{"Emergency Care", "ICU", "Pharmacy", "Blood Bank"},
			WaitingTimeMinutes: 75,
			Fees:               100,
			Rating:             4.2,
			Category:           entities.CategoryGovernment,
			Contact:            "+91-11-2336-5525",
			Email:              "info@rmlh.gov.in",
			Website:            "www.rmlh.gov.in",
			EmergencyAvailable: true,
			AcceptedInsurance:  governmentInsurance,
			AppointmentSteps: []string{
				"Arrive early morning for registration",
				"Obtain OPD card from registration counter",
				"Select relevant department",
				"Pay registration fees",
				"Get doctor appointment",
				"Follow up as advised",
			},
			EstimatedCost: cost(10, 2500),
			Coordinates:   coords("Delhi"),
		},
		{
			ID:                 23,
			Name:               "Lady Hardinge Medical College",
			Location:           "Delhi",
			Address:            "Shaheed Bhagat Singh Marg, New Delhi, Delhi 110001",
			Specialties:        []string{"Obstetrics", "Gynecology", "Pediatrics", "General Medicine"},
			Facilities:         []string{"Maternity Ward", "Medical College", "Pharmacy"},
			WaitingTimeMinutes: 65,
			Fees:               50,
			Rating:             4.1,
			Category:           entities.CategoryGovernment,
			Contact:            "+91-11-2336-3724",
			Email:              "info@lhmc.gov.in",
			Website:            "www.lhmc.gov.in",
			EmergencyAvailable: true,
			AcceptedInsurance:  governmentInsurance,
			AppointmentSteps: []string{
				"Register at OPD counter",
				"Get patient ID card",
				"Choose speciality department",
				"Pay nominal fee",
				"Receive appointment slot",
				"Visit assigned doctor",
			},
			EstimatedCost: cost(10, 1500),
			Coordinates:   coords("Delhi"),
		},
		{
			ID:                 24,
			Name:               "GB Pant Hospital",
			Location:           "Delhi",
			Address:            "1, Jawaharlal Nehru Marg, Delhi 110002",
			Specialties:        []string{"Cardiology", "Neurology", "Gastroenterology", "Nephrology"},
			Facilities:         []string{"Super Specialty", "Emergency Care", "ICU", "Pharmacy"},
			WaitingTimeMinutes: 70,
			Fees:               100,
			Rating:             4.3,
			Category:           entities.CategoryGovernment,
			Contact:            "+91-11-2323-2400",
			Email:              "info@gbpant.gov.in",
			Website:            "www.gbpant.gov.in",
			EmergencyAvailable: true,
			AcceptedInsurance:  governmentInsurance,
			AppointmentSteps: []string{
				"Get registration done at OPD",
				"Choose specialty department",
				"Pay registration fee",
				"Get appointment slip",
				"Consult with doctor",
				"Collect prescribed medicines",
			},
			EstimatedCost: cost(10, 2000),
			Coordinates:   coords("Delhi"),
		},
	}
}

func seedDoctors() []entities.Doctor {
	return []entities.Doctor{
		{
			ID:              1,
			Name:            "Dr. Rajesh Kumar",
			Specialty:       "Cardiology",
			ExperienceYears: 15,
			Qualification:   "MD, DM Cardiology",
			Availability:    []string{"Monday", "Wednesday", "Friday"},
			Timings:         "10:00 AM - 2:00 PM",
			ConsultationFee: 800,
			Rating:          4.7,
		},
		{
			ID:              2,
			Name:            "Dr. Priya Sharma",
			Specialty:       "Neurology",
			ExperienceYears: 12,
			Qualification:   "MD, DM Neurology",
			Availability:    []string{"Tuesday", "Thursday", "Saturday"},
			Timings:         "9:00 AM - 1:00 PM",
			ConsultationFee: 900,
			Rating:          4.5,
		},
		{
			ID:              3,
			Name:            "Dr. Amit Patel",
			Specialty:       "Orthopedics",
			ExperienceYears: 18,
			Qualification:   "MS Orthopedics",
			Availability:    []string{"Monday", "Tuesday", "Thursday"},
			Timings:         "11:00 AM - 3:00 PM",
			ConsultationFee: 700,
			Rating:          4.6,
		},
	}
}

func seedProcedures() []entities.Procedure {
	return []entities.Procedure{
		{
			ID:          1,
			Name:        "Liver Function Test",
			Description: "A series of blood tests that provide information about the state of your liver.",
			Steps: []string{
				"Register at the hospital reception",
				"Submit doctor's prescription",
				"Make payment at the billing counter",
				"Go to blood collection center with receipt",
				"Fast for 8-12 hours before the test (water is allowed)",
				"Blood sample will be collected",
				"Results typically available within 24 hours",
			},
			RequiredDocuments: []string{"Doctor's prescription", "ID proof", "Previous test reports (if any)"},
			EstimatedTime:     "1-2 hours",
			Specialty:         "Liver",
		},
		{
			ID:          2,
			Name:        "ECG (Electrocardiogram)",
			Description: "A test that records the electrical signals in your heart.",
			Steps: []string{
				"Register at the hospital reception",
				"Submit doctor's prescription",
				"Make payment at the billing counter",
				"Go to cardiology department with receipt",
				"Remove upper body clothing and wear hospital gown",
				"Electrodes will be attached to chest, arms, and legs",
				"Lie still during the test (2-3 minutes)",
				"Results typically available immediately",
			},
			RequiredDocuments: []string{"Doctor's prescription", "ID proof", "Previous ECG reports (if any)"},
			EstimatedTime:     "15-30 minutes",
			Specialty:         "Cardiology",
		},
		{
			ID:          3,
			Name:        "MRI Scan",
			Description: "A non-invasive imaging test that uses magnets and radio waves to create detailed images of organs and tissues.",
			Steps: []string{
				"Register at the hospital reception",
				"Submit doctor's prescription",
				"Make payment at the billing counter",
				"Go to radiology department with receipt",
				"Remove all metal objects (jewelry, watches, etc.)",
				"Change into hospital gown",
				"Lie still on the MRI table during the scan (30-90 minutes)",
				"Results typically available within 24-48 hours",
			},
			RequiredDocuments: []string{"Doctor's prescription", "ID proof", "Previous scan reports (if any)", "Medical history form"},
			EstimatedTime:     "1-2 hours",
			Specialty:         "Neurology",
		},
		{
			ID:          4,
			Name:        "Endoscopy",
			Description: "A procedure to examine the inside of your body using an instrument called an endoscope.",
			Steps: []string{
				"Register at the hospital reception",
				"Submit doctor's prescription",
				"Complete pre-procedure assessment",
				"Fast for 8-12 hours before the procedure",
				"Change into hospital gown",
				"Local anesthetic will be sprayed in your throat",
				"Endoscope will be inserted through mouth or nose",
				"Results may be available immediately or within a few days",
			},
			RequiredDocuments: []string{"Doctor's prescription", "ID proof", "Previous medical reports", "List of current medications", "Informed consent form"},
			EstimatedTime:     "30-60 minutes",
			Specialty:         "Gastroenterology",
		},
		{
			ID:          5,
			Name:        "X-Ray",
			Description: "A quick, painless test that produces images of structures inside your body.",
			Steps: []string{
				"Register at the hospital reception",
				"Submit doctor's prescription",
				"Make payment at the billing counter",
				"Go to radiology department with receipt",
				"Remove jewelry or metal objects from the area being examined",
				"May need to change into hospital gown",
				"Position body as directed by technician",
				"Results typically available within 24 hours",
			},
			RequiredDocuments: []string{"Doctor's prescription", "ID proof"},
			EstimatedTime:     "15-30 minutes",
			Specialty:         "Orthopedics",
		},
		{
			ID:          6,
			Name:        "Blood Pressure Check",
			Description: "A simple test that measures the pressure in your arteries as your heart pumps.",
			Steps: []string{
				"Visit the outpatient department",
				"Sit calmly for 5 minutes before the reading",
				"Cuff will be placed on your upper arm",
				"Reading is taken in under a minute",
				"Repeat reading may be taken for confirmation",
			},
			RequiredDocuments: []string{"ID proof"},
			EstimatedTime:     "5-10 minutes",
			Specialty:         "General Medicine",
		},
		{
			ID:          7,
			Name:        "Complete Blood Count",
			Description: "A blood test used to evaluate your overall health and detect a wide range of disorders.",
			Steps: []string{
				"Register at the hospital reception",
				"Submit doctor's prescription",
				"Make payment at the billing counter",
				"Blood sample will be collected from your arm",
				"Results typically available within 24 hours",
			},
			RequiredDocuments: []string{"Doctor's prescription", "ID proof"},
			EstimatedTime:     "30 minutes",
			Specialty:         "General Medicine",
		},
		{
			ID:          8,
			Name:        "Ultrasound",
			Description: "An imaging method that uses sound waves to produce images of structures within your body.",
			Steps: []string{
				"Register at the hospital reception",
				"Submit doctor's prescription",
				"Make payment at the billing counter",
				"Go to radiology department with receipt",
				"Gel will be applied to the area being examined",
				"Transducer is moved over the skin to capture images",
				"Results typically available the same day",
			},
			RequiredDocuments: []string{"Doctor's prescription", "ID proof", "Previous scan reports (if any)"},
			EstimatedTime:     "30-45 minutes",
			Specialty:         "Radiology",
		},
	}
}

func seedNearbyPlaces() map[int][]entities.NearbyPlace {
	return map[int][]entities.NearbyPlace{
		1: {
			{ID: 101, Name: "Apollo Pharmacy", Type: entities.NearbyPharmacy, Rating: 4.6, DistanceKm: 0.1, Address: "Inside Apollo Hospital, Delhi"},
			{ID: 102, Name: "MedPlus Pharmacy", Type: entities.NearbyPharmacy, Rating: 4.3, DistanceKm: 0.5, Address: "Sarita Vihar, Delhi"},
			{ID: 201, Name: "Hotel Formule1 Delhi", Type: entities.NearbyHotel, Rating: 4.1, DistanceKm: 1.2, Address: "Mathura Road, Delhi"},
			{ID: 202, Name: "Crowne Plaza", Type: entities.NearbyHotel, Rating: 4.7, DistanceKm: 2.5, Address: "Okhla, Delhi"},
			{ID: 301, Name: "Hospital Cafeteria", Type: entities.NearbyFood, Rating: 3.9, DistanceKm: 0, Address: "Inside Apollo Hospital, Delhi"},
			{ID: 302, Name: "Subway", Type: entities.NearbyFood, Rating: 4.2, DistanceKm: 0.8, Address: "Sarita Vihar Market, Delhi"},
		},
		5: {
			{ID: 103, Name: "AIIMS Pharmacy", Type: entities.NearbyPharmacy, Rating: 4.4, DistanceKm: 0, Address: "Inside AIIMS, Delhi"},
			{ID: 104, Name: "Jan Aushadhi Kendra", Type: entities.NearbyPharmacy, Rating: 4.5, DistanceKm: 0.3, Address: "Near AIIMS Gate 1, Delhi"},
			{ID: 203, Name: "Hotel Taj Palace", Type: entities.NearbyHotel, Rating: 4.8, DistanceKm: 3.5, Address: "Diplomatic Enclave, Delhi"},
			{ID: 204, Name: "Yatri Niwas", Type: entities.NearbyHotel, Rating: 3.9, DistanceKm: 1.0, Address: "AIIMS Road, Delhi"},
			{ID: 303, Name: "AIIMS Cafeteria", Type: entities.NearbyFood, Rating: 3.7, DistanceKm: 0, Address: "Inside AIIMS, Delhi"},
			{ID: 304, Name: "Sagar Ratna", Type: entities.NearbyFood, Rating: 4.3, DistanceKm: 0.6, Address: "Green Park, Delhi"},
		},
	}
}
