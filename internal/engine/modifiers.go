package engine

import "github.com/rcliao/healthpredict/internal/model"

const (
	feverThreshold     = 38
	systolicThreshold  = 140
	diastolicThreshold = 90
	heartRateThreshold = 100
)

// modifier multiplies the score of its target conditions when its
// predicate holds for the inputs.
type modifier struct {
	name    string
	factor  float64
	targets []string
	applies func(Inputs) bool
}

// modifiers run in this order against the running score.
var modifiers = []modifier{
	{
		name:    "fever",
		factor:  1.5,
		targets: []string{"COVID-19", "Influenza", "Pneumonia"},
		applies: func(in Inputs) bool { return above(in.Vitals.Temperature, feverThreshold) },
	},
	{
		name:    "blood pressure",
		factor:  2.0,
		targets: []string{"Hypertension"},
		applies: func(in Inputs) bool {
			return above(in.Vitals.Systolic, systolicThreshold) || above(in.Vitals.Diastolic, diastolicThreshold)
		},
	},
	{
		name:    "heart rate",
		factor:  1.3,
		targets: []string{"Hyperthyroidism", "Influenza", "Anemia", "Anxiety Disorder"},
		applies: func(in Inputs) bool { return above(in.Vitals.HeartRate, heartRateThreshold) },
	},
	{
		name:    "obesity",
		factor:  1.4,
		targets: []string{"Diabetes", "Hypertension"},
		applies: func(in Inputs) bool { return model.Contains(in.History, "Obesity") },
	},
	{
		name:    "smoker",
		factor:  1.3,
		targets: []string{"Asthma", "Pneumonia", "Hypertension"},
		applies: func(in Inputs) bool { return model.Contains(in.History, "Current smoker") },
	},
	{
		name:    "age over 45",
		factor:  1.2,
		targets: []string{"Diabetes"},
		applies: func(in Inputs) bool { return in.Profile.ScoringAge() > 45 },
	},
	{
		name:    "age over 50",
		factor:  1.25,
		targets: []string{"Hypertension"},
		applies: func(in Inputs) bool { return in.Profile.ScoringAge() > 50 },
	},
	{
		name:    "female",
		factor:  1.3,
		targets: []string{"Urinary Tract Infection"},
		applies: func(in Inputs) bool { return in.Profile.ScoringGender() == "female" },
	},
}

func applyModifiers(condition string, score float64, in Inputs) float64 {
	for _, m := range modifiers {
		if model.Contains(m.targets, condition) && m.applies(in) {
			score *= m.factor
		}
	}
	return score
}

func above(v *float64, threshold float64) bool {
	return v != nil && *v > threshold
}
