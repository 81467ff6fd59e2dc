package bot

// Type identifies one configured wellness bot.
type Type string

const (
	TripleM             Type = "triple_m"
	MicroTherapy        Type = "micro_therapy"
	VentingShredder     Type = "venting_shredder"
	CognitiveDistortion Type = "cognitive_distortion"
	SleepGuardian       Type = "sleep_guardian"
	Gratitude           Type = "gratitude"
	FaceDetection       Type = "face_detection"
)

// Profile carries the user-facing metadata of one bot.
type Profile struct {
	Type    Type   `json:"type"`
	Name    string `json:"name"`
	Tagline string `json:"tagline"`
}

// Known reports whether t names a configured bot.
func Known(t Type) bool {
	_, ok := profiles[t]
	return ok
}

// ReusesConversation reports whether the bot keeps a single long-lived
// conversation per user instead of opening a new one every session.
func ReusesConversation(t Type) bool {
	return t == SleepGuardian
}

var profiles = map[Type]Profile{
	TripleM:             {Type: TripleM, Name: "Triple-M Bot", Tagline: "Mood → Music → Mindfulness"},
	MicroTherapy:        {Type: MicroTherapy, Name: "Micro-Therapy", Tagline: "Quick support in 60 seconds"},
	VentingShredder:     {Type: VentingShredder, Name: "Venting Shredder", Tagline: "Write it out, let it go"},
	CognitiveDistortion: {Type: CognitiveDistortion, Name: "Cognitive Distortion Spotter", Tagline: "Identify and reframe thinking patterns"},
	SleepGuardian:       {Type: SleepGuardian, Name: "Sleep Guardian", Tagline: "Company through the night"},
	Gratitude:           {Type: Gratitude, Name: "Gratitude Tracker", Tagline: "Daily gratitude & challenges"},
	FaceDetection:       {Type: FaceDetection, Name: "Face Detection Bot", Tagline: "Smart emotion-aware chatbot"},
}

var order = []Type{
	TripleM,
	MicroTherapy,
	VentingShredder,
	CognitiveDistortion,
	SleepGuardian,
	Gratitude,
	FaceDetection,
}

// All returns the bot profiles in dashboard order.
func All() []Profile {
	out := make([]Profile, 0, len(order))
	for _, t := range order {
		out = append(out, profiles[t])
	}
	return out
}
