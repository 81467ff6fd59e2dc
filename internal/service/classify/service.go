// Package classify implements the stateless classification facade: one
// quick rule table and catalog per bot, evaluated per request with no
// session state.
package classify

import (
	"github.com/mindhavenapp/mindhaven/backend/internal/analysis/rules"
	"github.com/mindhavenapp/mindhaven/backend/internal/catalog"
	"github.com/mindhavenapp/mindhaven/backend/internal/metrics"
)

// GenericFallback is returned for bot types the facade does not know.
const GenericFallback = "I'm here to support you. Tell me more about what's on your mind."

type entry struct {
	table   rules.Table
	catalog *catalog.Catalog
}

// Service dispatches a message to the requested bot's quick table.
type Service struct {
	bots map[string]entry
}

// NewService builds the facade with the per-bot quick tables.
func NewService() *Service {
	return &Service{bots: map[string]entry{
		"triple_m": {
			table: rules.Table{
				Mode:    rules.FirstMatch,
				Default: "general",
				Rules: []rules.Rule{
					{Category: "sad", Patterns: []rules.Pattern{rules.Substring("sad"), rules.Substring("down")}},
					{Category: "anxious", Patterns: []rules.Pattern{rules.Substring("anxious"), rules.Substring("nervous")}},
				},
			},
			catalog: catalog.New(catalog.DeterministicFirst,
				"Music and mindfulness work together beautifully. What mood are you in right now? I can help you find the right combination.",
				map[rules.Category][]string{
					"sad":     {"I hear that you're feeling sad. Music can be a powerful mood lifter. Try listening to something soothing or uplifting. Would you like me to recommend some calming exercises?"},
					"anxious": {"Anxiety can feel overwhelming. Let's ground you with the 4-7-8 breathing: Breathe in for 4, hold for 7, out for 8. Pair this with some calming ambient music."},
				}),
		},
		"micro_therapy": {
			table: rules.Table{
				Mode:    rules.FirstMatch,
				Default: "general",
				Rules: []rules.Rule{
					{Category: "overwhelmed", Patterns: []rules.Pattern{rules.Substring("overwhelmed")}},
					{Category: "tired", Patterns: []rules.Pattern{rules.Substring("tired"), rules.Substring("exhausted")}},
				},
			},
			catalog: catalog.New(catalog.DeterministicFirst,
				"I'm here with you. Whatever you're feeling right now is valid. Take a deep breath. What do you need most in this moment?",
				map[rules.Category][]string{
					"overwhelmed": {"When everything feels too much, remember: you don't have to solve it all at once. Pick ONE small thing you can do right now. What would that be?"},
					"tired":       {"Emotional exhaustion is real. Your feelings are valid. What's one small act of self-care you could do in the next 10 minutes? Even washing your face or drinking water counts."},
				}),
		},
		"cognitive_distortion": {
			table: rules.Table{
				Mode:    rules.FirstMatch,
				Default: "general",
				Rules: []rules.Rule{
					{Category: "absolutes", Patterns: []rules.Pattern{rules.Substring("always"), rules.Substring("never")}},
					{Category: "overgeneralizing", Patterns: []rules.Pattern{rules.Substring("everyone"), rules.Substring("no one")}},
				},
			},
			catalog: catalog.New(catalog.DeterministicFirst,
				"Let's examine this thought together. What evidence supports it? What evidence might challenge it? Sometimes our thoughts aren't the full picture.",
				map[rules.Category][]string{
					"absolutes":        {"I notice absolute words like 'always' or 'never'. These can be signs of all-or-nothing thinking. What if we looked for exceptions? Has there ever been a time when this wasn't true?"},
					"overgeneralizing": {"When we say 'everyone' or 'no one', we might be overgeneralizing. Let's check: is this really true for everyone, or does it feel that way right now?"},
				}),
		},
		"sleep_guardian": {
			table: rules.Table{
				Mode:    rules.FirstMatch,
				Default: "general",
				Rules: []rules.Rule{
					{Category: "afraid", Patterns: []rules.Pattern{rules.Substring("scared"), rules.Substring("afraid")}},
					{Category: "worried", Patterns: []rules.Pattern{rules.Substring("worry"), rules.Substring("anxious")}},
				},
			},
			catalog: catalog.New(catalog.DeterministicFirst,
				"The night can feel long, but you're not alone. I'm here. Would you like to talk about what's keeping you awake, or would you prefer a calming exercise?",
				map[rules.Category][]string{
					"afraid":  {"You're safe right now. Take a moment to ground yourself: feel the surface beneath you, notice the air on your skin. You're here, you're safe. I'm here with you."},
					"worried": {"Night worries can feel so big. Remember: thoughts at night aren't facts. Try this - imagine placing each worry in a bubble and watching it float away. We can address them tomorrow."},
				}),
		},
		"gratitude": {
			table: rules.Table{Mode: rules.FirstMatch, Default: "general"},
			catalog: catalog.New(catalog.DeterministicFirst,
				"That's wonderful to hear. Gratitude practices have been shown to improve mental well-being. What else are you grateful for today?",
				map[rules.Category][]string{}),
		},
	}}
}

// Classify returns the templated response for one message. Unknown bot
// types yield the generic fallback, not an error.
func (s *Service) Classify(message, botType string) string {
	e, ok := s.bots[botType]
	if !ok {
		return GenericFallback
	}
	metrics.Classifications.WithLabelValues(botType).Inc()
	return e.catalog.SelectFirst(e.table.Classify(message))
}
