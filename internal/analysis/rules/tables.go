package rules

// Distortion categories. The table order below is the declared priority:
// when several distortions fire at once, downstream reframing uses the
// first one in this order.
const (
	AllOrNothing          Category = "all_or_nothing"
	Overgeneralization    Category = "overgeneralization"
	MentalFilter          Category = "mental_filter"
	JumpingToConclusions  Category = "jumping_to_conclusions"
	Catastrophizing       Category = "catastrophizing"
	EmotionalReasoning    Category = "emotional_reasoning"
	ShouldStatements      Category = "should_statements"
)

// DistortionTable detects cognitive distortions. Multi-match: every rule
// that fires is reported. Mental filter has no keyword rule of its own;
// it is the default when nothing else matches.
var DistortionTable = Table{
	Mode:    MultiMatch,
	Default: MentalFilter,
	Rules: []Rule{
		{
			Category: AllOrNothing,
			Patterns: []Pattern{
				Substring("always"),
				Substring("never"),
				Substring("everything"),
				Substring("nothing"),
				Regex(`\b(perfect|total|complete)\s+(failure|disaster)\b`),
			},
		},
		{
			Category: Overgeneralization,
			Patterns: []Pattern{
				Substring("nothing ever"),
				Substring("always happens"),
				Substring("everyone"),
				Substring("no one"),
			},
		},
		{
			Category: JumpingToConclusions,
			Patterns: []Pattern{
				Substring("must hate"),
				Substring("probably thinks"),
				Substring("doesn't like"),
				Substring("will fail"),
			},
		},
		{
			Category: Catastrophizing,
			Patterns: []Pattern{
				Substring("worst"),
				Substring("terrible"),
				Substring("disaster"),
				Substring("ruined"),
				Substring("catastrophe"),
			},
		},
		{
			Category: EmotionalReasoning,
			Patterns: []Pattern{
				// "i feel" plus a conclusion marker, in either order.
				Regex(`(?s)(i feel.*(so i|must be))|((so i|must be).*i feel)`),
			},
		},
		{
			Category: ShouldStatements,
			Patterns: []Pattern{
				Substring("should"),
				Substring("must"),
				Substring("ought to"),
			},
		},
	},
}

// Micro-therapy categories mirror the feeling words they match on.
const (
	Anxious        Category = "anxious"
	Stressed       Category = "stressed"
	Sad            Category = "sad"
	Overwhelmed    Category = "overwhelmed"
	Lonely         Category = "lonely"
	GeneralSupport Category = "general_support"
)

// MicroTherapyTable picks the single strongest-priority feeling mentioned
// in a concern.
var MicroTherapyTable = Table{
	Mode:    FirstMatch,
	Default: GeneralSupport,
	Rules: []Rule{
		{Category: Anxious, Patterns: []Pattern{Substring("anxious")}},
		{Category: Stressed, Patterns: []Pattern{Substring("stressed")}},
		{Category: Sad, Patterns: []Pattern{Substring("sad")}},
		{Category: Overwhelmed, Patterns: []Pattern{Substring("overwhelmed")}},
		{Category: Lonely, Patterns: []Pattern{Substring("lonely")}},
	},
}

// Sleep guardian categories.
const (
	CantSleep    Category = "cant_sleep"
	NightWorries Category = "night_worries"
	Nightmares   Category = "nightmares"
	NightLonely  Category = "night_lonely"
	Relaxation   Category = "relaxation"
	NightDefault Category = "night_default"
)

var SleepTable = Table{
	Mode:    FirstMatch,
	Default: NightDefault,
	Rules: []Rule{
		{
			Category: CantSleep,
			Patterns: []Pattern{
				Substring("sleep"),
				Substring("can't sleep"),
				Substring("insomnia"),
				Substring("awake"),
			},
		},
		{
			Category: NightWorries,
			Patterns: []Pattern{
				Substring("worried"),
				Substring("anxious"),
				Substring("stress"),
				Substring("thinking"),
			},
		},
		{
			Category: Nightmares,
			Patterns: []Pattern{
				Substring("nightmare"),
				Substring("bad dream"),
				Substring("scared"),
			},
		},
		{
			Category: NightLonely,
			Patterns: []Pattern{
				Substring("alone"),
				Substring("lonely"),
			},
		},
		{
			Category: Relaxation,
			Patterns: []Pattern{
				Substring("relax"),
				Substring("calm"),
				Substring("peaceful"),
			},
		},
	},
}
