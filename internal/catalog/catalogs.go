package catalog

import "github.com/mindhavenapp/mindhaven/backend/internal/analysis/rules"

// DistortionInfo describes one distortion for the result view.
type DistortionInfo struct {
	Type        rules.Category `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Example     string         `json:"example"`
}

// Distortions is the closed taxonomy of the distortion spotter.
var Distortions = map[rules.Category]DistortionInfo{
	rules.AllOrNothing: {
		Type:        rules.AllOrNothing,
		Name:        "All-or-Nothing Thinking",
		Description: "Seeing things in black and white categories",
		Example:     `"If I'm not perfect, I'm a total failure"`,
	},
	rules.Overgeneralization: {
		Type:        rules.Overgeneralization,
		Name:        "Overgeneralization",
		Description: "Seeing a single negative event as a never-ending pattern",
		Example:     `"Nothing ever works out for me"`,
	},
	rules.MentalFilter: {
		Type:        rules.MentalFilter,
		Name:        "Mental Filter",
		Description: "Focusing only on negatives while ignoring positives",
		Example:     "Dwelling on one criticism despite multiple compliments",
	},
	rules.JumpingToConclusions: {
		Type:        rules.JumpingToConclusions,
		Name:        "Jumping to Conclusions",
		Description: "Making negative interpretations without evidence",
		Example:     `"They didn't reply, they must hate me"`,
	},
	rules.Catastrophizing: {
		Type:        rules.Catastrophizing,
		Name:        "Catastrophizing",
		Description: "Expecting the worst possible outcome",
		Example:     `"If I fail this test, my life is ruined"`,
	},
	rules.EmotionalReasoning: {
		Type:        rules.EmotionalReasoning,
		Name:        "Emotional Reasoning",
		Description: "Believing feelings reflect reality",
		Example:     `"I feel like a failure, so I must be one"`,
	},
	rules.ShouldStatements: {
		Type:        rules.ShouldStatements,
		Name:        "Should Statements",
		Description: "Rigid rules about how you or others should behave",
		Example:     `"I should be able to handle this perfectly"`,
	},
}

// Reframes maps each distortion to its reframe prompt. Multi-match
// classifications reframe against the first detected distortion only.
var Reframes = New(DeterministicFirst,
	"Try looking at this situation from a friend's perspective. What would you tell someone you care about if they had this thought?",
	map[rules.Category][]string{
		rules.AllOrNothing:         {"Let's find the middle ground. Instead of 'perfect or failure', what would 'good enough' look like? Progress isn't all-or-nothing."},
		rules.Overgeneralization:   {"This is one situation, not a permanent pattern. What are some times when things did work out for you?"},
		rules.MentalFilter:         {"What else happened today? Let's balance this by acknowledging both the negative and positive aspects."},
		rules.JumpingToConclusions: {"What evidence do you have for this conclusion? What are other possible explanations that might be equally or more likely?"},
		rules.Catastrophizing:      {"What's the most likely outcome, realistically? Even if something bad happens, how might you cope with it?"},
		rules.EmotionalReasoning:   {"Feelings are real, but they aren't always facts. What would you tell a friend feeling this way? What's the objective evidence?"},
		rules.ShouldStatements:     {"Replace 'should' with 'prefer' or 'would like to'. This removes harsh judgment and creates space for self-compassion."},
	})

// MicroTherapy holds the fixed quick-support responses.
var MicroTherapy = New(DeterministicFirst,
	"Thank you for sharing. Remember: You're doing better than you think. Every challenge you face is shaping you into someone stronger. What's one small act of self-care you can do in the next hour?",
	map[rules.Category][]string{
		rules.Anxious:        {"I hear that you're feeling anxious. Remember: anxiety often makes things seem bigger than they are. Try this: Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, and 1 you can taste. This grounds you in the present moment."},
		rules.Stressed:       {"Stress is your body's way of saying it needs support. Take a deep breath. Ask yourself: What's ONE thing I can do right now? Start there. You don't need to solve everything at once."},
		rules.Sad:            {"It's okay to feel sad. These emotions are valid and temporary. Be gentle with yourself today. Do something small that brings you comfort - a warm drink, a favorite song, or reaching out to someone you trust."},
		rules.Overwhelmed:    {"When everything feels like too much, pause. Write down what's overwhelming you. Then circle just ONE thing you can address today. Progress, not perfection."},
		rules.Lonely:         {"Loneliness can feel heavy. Remember that reaching out is a sign of strength. Consider: Who could you text right now? What activity could connect you with others? You deserve connection."},
		rules.GeneralSupport: {"Thank you for sharing. Remember: You're doing better than you think. Every challenge you face is shaping you into someone stronger. What's one small act of self-care you can do in the next hour?"},
	})

// SleepGuardian holds the night-chat responses.
var SleepGuardian = New(DeterministicFirst,
	"I hear you. Sometimes it helps just to express what we're feeling. Take a slow, deep breath with me. In... and out. How are you feeling right now?",
	map[rules.Category][]string{
		rules.CantSleep:    {"I understand it's hard when sleep won't come. Let's try the 4-7-8 breathing technique: Breathe in quietly through your nose for 4 counts, hold for 7, then exhale completely through your mouth for 8. Repeat 3-4 times. Would you like to try this together?"},
		rules.NightWorries: {"Night worries can feel overwhelming. Remember: 3 AM thoughts are not facts. Try this - imagine placing each worry in a bubble and watching it float away. What's one thing you can do about this tomorrow? For now, you need rest."},
		rules.Nightmares:   {"Dreams can be unsettling, but you're safe now. Try this grounding technique: Name 5 things you can see in your room, 4 things you can touch, 3 things you can hear, 2 things you can smell, and 1 thing you can taste. You're here, you're safe."},
		rules.NightLonely:  {"You're not alone, even in the quiet of night. Many people are awake right now, feeling similar things. I'm here with you. Would you like to talk about what's making you feel lonely, or would you prefer a calming story?"},
		rules.Relaxation:   {"Let's create calm together. Close your eyes and imagine a peaceful place - maybe a quiet beach, a forest, or a cozy room. Notice the details: what do you see, hear, feel? Let yourself sink deeper into this peaceful space."},
		rules.NightDefault: {"I hear you. Sometimes it helps just to express what we're feeling. Take a slow, deep breath with me. In... and out. How are you feeling right now?"},
	})

// SleepGreeting opens every sleep guardian conversation.
const SleepGreeting = "Good evening. I'm here to keep you company through the night. Whether you're having trouble sleeping, feeling anxious, or just need someone to talk to - I'm here. What's on your mind?"

// FaceGreeting opens every face detection conversation.
const FaceGreeting = "Hello! I can see your face and detect your emotions. This helps me respond to you more compassionately. Please allow camera access to get started."

// FaceResponses keys response-variant pools by the sampled expression
// label. UniformRandom: each turn picks one of the pool's variants. The
// neutral pool doubles as the fallback before any label is available.
var FaceResponses = New(UniformRandom,
	"You seem calm and composed. That's a good place to be. How are you feeling today?",
	map[rules.Category][]string{
		"sad": {
			"I can see you might be feeling down right now. That's okay - difficult emotions are part of being human. Would you like to talk about what's bothering you?",
			"It's clear something heavy is on your mind. Remember, you don't have to carry this alone. I'm here to listen.",
			"I notice you seem sad. Sometimes just expressing what we feel can help lighten the load. What's going on?",
		},
		"happy": {
			"I can see you're smiling! That's wonderful. What's brought this joy into your day? I'd love to hear about it.",
			"Your positivity is beautiful! What are you grateful for right now?",
			"You seem to be in a great mood! This is a perfect time to reflect on what makes you happy.",
		},
		"angry": {
			"I sense some intensity in your expression. It's natural to feel angry sometimes. Let's talk about what's frustrating you.",
			"Anger is valid emotion. Take a deep breath with me. What's happened that's upset you?",
			"I can tell something has angered you. Let's work through this together.",
		},
		"fearful": {
			"You seem anxious or worried. That's understandable - we all have fears. What's making you feel unsafe right now?",
			"I can sense some fear or worry. Remember, you're safe here. What are you concerned about?",
			"It looks like something is worrying you. Let's talk about what's causing this anxiety.",
		},
		"neutral": {
			"You seem calm and composed. That's a good place to be. How are you feeling today?",
			"You have a peaceful expression. Is there anything on your mind you'd like to share?",
			"You seem thoughtful. What would you like to talk about?",
		},
		"surprised": {
			"Something seems to have caught your attention! What's surprised you?",
			"You look intrigued! Share what's caught your interest.",
			"I can see something has sparked your curiosity. Tell me more!",
		},
	})

// MusicPlaylists recommends playlists per mood for the Triple-M flow.
var MusicPlaylists = map[string][]string{
	"happy":     {"Upbeat Pop Playlist", "Feel Good Indie", "Energetic Dance"},
	"sad":       {"Emotional Ballads", "Soothing Piano", "Healing Melodies"},
	"anxious":   {"Calming Nature Sounds", "Ambient Relaxation", "Peaceful Instrumental"},
	"stressed":  {"Stress Relief Meditation", "Gentle Classical", "Ocean Waves"},
	"calm":      {"Mindful Meditation", "Soft Jazz", "Peaceful Guitar"},
	"energetic": {"Workout Beats", "Motivational Mix", "High Energy Playlist"},
}

// MindfulnessExercises pairs each mood with one exercise.
var MindfulnessExercises = map[string]string{
	"happy":     "Gratitude Meditation: Take 5 minutes to reflect on three things that make you happy right now.",
	"sad":       "Self-Compassion Exercise: Place your hand on your heart and speak kindly to yourself, acknowledging your feelings.",
	"anxious":   "4-7-8 Breathing: Breathe in for 4 counts, hold for 7, exhale for 8. Repeat 4 times.",
	"stressed":  "Body Scan: Close your eyes and mentally scan from head to toe, releasing tension in each area.",
	"calm":      "Mindful Walking: Take a slow 10-minute walk, focusing on each step and your surroundings.",
	"energetic": "Movement Meditation: Dance freely for 5 minutes, expressing your energy through movement.",
}

// DailyChallenges is the gratitude tracker's challenge pool.
var DailyChallenges = []string{
	"Compliment someone genuinely today",
	"Help someone without being asked",
	"Try something new that scares you a little",
	"Spend 10 minutes in nature",
	"Write a thank you note to someone",
	"Practice saying no to something that drains you",
	"Share your knowledge with someone",
	"Do something creative for 15 minutes",
	"Have a meaningful conversation",
	"Practice forgiveness toward yourself or others",
}
