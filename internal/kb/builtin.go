package kb

import "github.com/rcliao/healthpredict/internal/model"

// Default returns the built-in catalog.
func Default() *KnowledgeBase {
	kb, err := New(builtinRules(), builtinSpecialists())
	if err != nil {
		panic("kb: built-in catalog is invalid: " + err.Error())
	}
	return kb
}

func builtinRules() []model.ConditionRule {
	return []model.ConditionRule{
		{
			Name:            "Common Cold",
			Symptoms:        []string{"Cough", "Sneezing", "Runny nose", "Sore throat", "Nazal congestion"},
			BaseWeight:      0.8,
			Urgency:         model.UrgencyLow,
			Explanation:     "The common cold is a viral infection of your nose and throat. It's usually harmless, though it might not feel that way.",
			Recommendations: []string{"Rest and stay hydrated", "Use over-the-counter saline nasal drops", "Gargle with salt water for sore throat"},
		},
		{
			Name:            "Influenza",
			Symptoms:        []string{"Fever", "Fatigue", "Muscle aches", "Cough", "Chills", "Headache"},
			BaseWeight:      0.9,
			Urgency:         model.UrgencyModerate,
			Explanation:     "Influenza (flu) is a viral infection that attacks your respiratory system. While it can resolve on its own, complications can be serious.",
			Recommendations: []string{"Stay home and rest", "Monitor temperature regularly", "Consult a doctor if symptoms worsen rapidly"},
		},
		{
			Name:            "COVID-19",
			Symptoms:        []string{"Fever", "Cough", "Fatigue", "Shortness of breath", "Headache", "Loss of appetite"},
			BaseWeight:      1.0,
			Urgency:         model.UrgencyModerate,
			Explanation:     "COVID-19 is a respiratory illness caused by a coronavirus. Symptoms can range from mild to severe respiratory distress.",
			Recommendations: []string{"Self-isolate immediately", "Perform a rapid antigen or PCR test", "Monitor oxygen levels if possible"},
		},
		{
			Name:            "Diabetes",
			Symptoms:        []string{"Fatigue", "Weight loss", "Blurred vision", "Slow wound healing", "Tingling"},
			BaseWeight:      0.7,
			Urgency:         model.UrgencyModerate,
			Explanation:     "Diabetes relates to how your body uses blood sugar. Chronic high sugar levels can damage various organs over time.",
			Recommendations: []string{"Schedule a fasting blood sugar test", "Monitor carbohydrate intake", "Check for any slow-healing wounds daily"},
		},
		{
			Name:            "Hypertension",
			Symptoms:        []string{"High blood pressure", "Headache", "Dizziness", "Palpitations"},
			BaseWeight:      0.7,
			Urgency:         model.UrgencyModerate,
			Explanation:     "Hypertension (high blood pressure) often has no symptoms but can lead to serious health problems like heart attack or stroke.",
			Recommendations: []string{"Reduce salt intake", "Monitor blood pressure daily", "Engage in moderate physical activity"},
		},
		{
			Name:            "Anemia",
			Symptoms:        []string{"Weakness", "Fatigue", "Dizziness", "Shortness of breath"},
			BaseWeight:      0.6,
			Urgency:         model.UrgencyLow,
			Explanation:     "Anemia occurs when your blood lacks enough healthy red blood cells or hemoglobin, leading to reduced oxygen flow.",
			Recommendations: []string{"Increase iron-rich foods (spinach, beans)", "Consult for a Complete Blood Count (CBC) test", "Ensure adequate Vitamin C intake to help iron absorption"},
		},
		{
			Name:            "Gastroenteritis",
			Symptoms:        []string{"Nausea", "Vomiting", "Diarrhea", "Abdominal pain", "Loss of appetite"},
			BaseWeight:      0.9,
			Urgency:         model.UrgencyModerate,
			Explanation:     "Commonly known as stomach flu, it's an inflammation of the lining of the intestines caused by a virus, bacteria, or parasites.",
			Recommendations: []string{"Sip small amounts of clear liquids to stay hydrated", "Follow the BRAT diet (Bananas, Rice, Applesauce, Toast)", "Avoid dairy and fatty foods until recovered"},
		},
		{
			Name:            "Asthma",
			Symptoms:        []string{"Wheezing", "Shortness of breath", "Chest tightness", "Cough"},
			BaseWeight:      0.8,
			Urgency:         model.UrgencyModerate,
			Explanation:     "Asthma is a condition in which your airways narrow and swell and may produce extra mucus, making breathing difficult.",
			Recommendations: []string{"Keep a rescue inhaler nearby", "Identify and avoid triggers (dust, pollen)", "Consult an allergist or pulmonologist"},
		},
		{
			Name:            "Arthritis",
			Symptoms:        []string{"Joint pain", "Stiffness", "Swelling in joints", "Limited mobility"},
			BaseWeight:      0.8,
			Urgency:         model.UrgencyLow,
			Explanation:     "Arthritis is the swelling and tenderness of one or more joints. The main symptoms are joint pain and stiffness.",
			Recommendations: []string{"Apply warm or cold compresses to joints", "Engage in low-impact exercises (swimming)", "Consult a rheumatologist for definitive diagnosis"},
		},
		{
			Name:            "Depression",
			Symptoms:        []string{"Depression", "Fatigue", "Insomnia", "Loss of appetite", "Mood swings"},
			BaseWeight:      0.7,
			Urgency:         model.UrgencyModerate,
			Explanation:     "Depression is a mood disorder that causes a persistent feeling of sadness and loss of interest, affecting how you feel and think.",
			Recommendations: []string{"Reach out to a trusted friend or family member", "Avoid alcohol and recreational drugs", "Consult a mental health professional"},
		},
		{
			Name:            "Anxiety Disorder",
			Symptoms:        []string{"Anxiety", "Palpitations", "Rapid heartbeat", "Difficulty in concentrating", "Irritability", "Insomnia"},
			BaseWeight:      0.7,
			Urgency:         model.UrgencyLow,
			Explanation:     "Anxiety disorders involve intense, excessive, and persistent worry and fear about everyday situations.",
			Recommendations: []string{"Practice deep breathing or meditation", "Limit caffeine intake", "Establish a consistent sleep routine"},
		},
		{
			Name:            "Migraine",
			Symptoms:        []string{"Headache", "Nausea", "Blurred vision", "Dizziness", "Irritability"},
			BaseWeight:      0.85,
			Urgency:         model.UrgencyModerate,
			Explanation:     "A migraine is a headache that can cause severe throbbing pain or a pulsing sensation, usually on one side of the head.",
			Recommendations: []string{"Rest in a dark, quiet room", "Identify dietary or environmental triggers", "Consult a neurologist for preventive options"},
		},
		{
			Name:            "Pneumonia",
			Symptoms:        []string{"Fever", "Cough", "Shortness of breath", "Chest pain", "Fatigue", "Chills"},
			BaseWeight:      0.95,
			Urgency:         model.UrgencyHigh,
			Explanation:     "Pneumonia is an infection that inflames the air sacs in one or both lungs. The air sacs may fill with fluid or pus.",
			Recommendations: []string{"Seek medical attention immediately", "Chest X-ray may be required", "Complete the full course of prescribed antibiotics"},
		},
		{
			Name:            "Urinary Tract Infection",
			Symptoms:        []string{"Abdominal pain", "Fever", "Weakness", "Nausea"},
			BaseWeight:      0.75,
			Urgency:         model.UrgencyModerate,
			Explanation:     "A UTI is an infection in any part of your urinary system. Most infections involve the lower urinary tract.",
			Recommendations: []string{"Drink plenty of water", "Consult for a urinalysis test", "Avoid irritating beverages like coffee or alcohol"},
		},
		{
			Name:            "Hyperthyroidism",
			Symptoms:        []string{"Weight loss", "Rapid heartbeat", "Anxiety", "Irritability", "Insomnia", "Muscle aches"},
			BaseWeight:      0.8,
			Urgency:         model.UrgencyModerate,
			Explanation:     "Hyperthyroidism occurs when your thyroid gland produces too much of the hormone thyroxine, accelerating your metabolism.",
			Recommendations: []string{"Consult an endocrinologist", "Thyroid function blood tests (TSH, T4) are needed", "Monitor heart rate and weight regularly"},
		},
		{
			Name:            "Vitamin D Deficiency",
			Symptoms:        []string{"Fatigue", "Weakness", "Muscle aches", "Joint pain", "Depression", "Irritability"},
			BaseWeight:      0.85,
			Urgency:         model.UrgencyLow,
			Explanation:     "Low levels of Vitamin D are frequently associated with both musculoskeletal pain (joint pain) and mood disturbances, including irritability.",
			Recommendations: []string{"Request a 25-hydroxy vitamin D blood test", "Increase safe sun exposure", "Incorporate Vitamin D-rich foods like fatty fish and fortified dairy"},
		},
		{
			Name:            "Lyme Disease",
			Symptoms:        []string{"Fever", "Fatigue", "Joint pain", "Headache", "Muscle aches", "Chills", "Confusion"},
			BaseWeight:      0.9,
			Urgency:         model.UrgencyModerate,
			Explanation:     "Early or late-stage Lyme disease can present with migratory joint pain and neurological symptoms such as irritability or 'brain fog'.",
			Recommendations: []string{"Check for history of tick bites or rashes", "Discuss ELISA or Western Blot testing with a doctor", "Monitor for fever or fatigue"},
		},
	}
}

func builtinSpecialists() []SpecialistEntry {
	return []SpecialistEntry{
		{
			Specialist: model.Specialist{Name: "Dr. Sarah Johnson", Specialty: "General Physician", Location: "Central Care Hospital", Contact: "+1-555-0101", Rating: 4.8},
			Conditions: []string{"Common Cold", "Influenza", "Pneumonia"},
		},
		{
			Specialist: model.Specialist{Name: "Dr. Michael Chen", Specialty: "Endocrinologist", Location: "Wellness Endocrine Center", Contact: "+1-555-0102", Rating: 4.9},
			Conditions: []string{"Diabetes", "Hyperthyroidism"},
		},
		{
			Specialist: model.Specialist{Name: "Dr. Emily Rodriguez", Specialty: "Cardiologist", Location: "Heart & Vascular Institute", Contact: "+1-555-0103", Rating: 4.7},
			Conditions: []string{"Hypertension"},
		},
		{
			Specialist: model.Specialist{Name: "Dr. James Wilson", Specialty: "Pulmonologist", Location: "Lungs & Breath Center", Contact: "+1-555-0104", Rating: 4.6},
			Conditions: []string{"COVID-19", "Asthma", "Pneumonia"},
		},
		{
			Specialist: model.Specialist{Name: "Dr. Lisa Wang", Specialty: "Rheumatologist", Location: "Joint Health Clinic", Contact: "+1-555-0105", Rating: 4.8},
			Conditions: []string{"Arthritis"},
		},
		{
			Specialist: model.Specialist{Name: "Dr. Robert Taylor", Specialty: "Psychiatrist", Location: "Mind Matters Institute", Contact: "+1-555-0106", Rating: 4.9},
			Conditions: []string{"Depression", "Anxiety Disorder"},
		},
		{
			Specialist: model.Specialist{Name: "Dr. Anita Desai", Specialty: "Neurologist", Location: "NeuroScience Hub", Contact: "+1-555-0107", Rating: 4.7},
			Conditions: []string{"Migraine"},
		},
		{
			Specialist: model.Specialist{Name: "Dr. Kevin Miller", Specialty: "Urologist", Location: "Urology Specialists", Contact: "+1-555-0108", Rating: 4.5},
			Conditions: []string{"Urinary Tract Infection"},
		},
	}
}
