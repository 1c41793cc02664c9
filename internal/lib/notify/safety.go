package notify

import "github.com/dpup/wildwatch/server/internal/lib/risk"

var safetyMessages = map[risk.Species]string{
	risk.Elephant: "Stay indoors and keep a safe distance. Elephants can be unpredictable. Do not approach or provoke.",
	risk.Lion:     "DANGER: Remain indoors immediately. Lions are predators. Keep children and pets inside. Do not go outside until rangers arrive.",
	risk.Rhino:    "Keep away from the area. Rhinos have poor eyesight but will charge if threatened. Stay in secure buildings.",
	risk.Buffalo:  "Buffalo can be aggressive. Stay indoors and avoid the area. Do not attempt to scare them away.",
}

const defaultSafetyMessage = "Wildlife detected nearby. Please stay alert and follow ranger instructions."

// SafetyMessage returns community guidance for a species
func SafetyMessage(species risk.Species) string {
	if msg, ok := safetyMessages[species]; ok {
		return msg
	}
	return defaultSafetyMessage
}
