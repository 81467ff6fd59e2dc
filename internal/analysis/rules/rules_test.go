package rules

import "testing"

func TestClassifyNeverEmpty(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"blah blah nothing relevant to any rule",
		"I made one mistake, so I'm a complete failure at my job",
	}
	for _, in := range inputs {
		if got := DistortionTable.Classify(in); len(got) == 0 {
			t.Fatalf("Classify(%q) returned empty result", in)
		}
		if got := MicroTherapyTable.Classify(in); len(got) != 1 {
			t.Fatalf("first-match Classify(%q) returned %d categories", in, len(got))
		}
	}
}

func TestDistortionAbsoluteWords(t *testing.T) {
	for _, word := range []string{"always", "never", "everything", "nothing"} {
		got := DistortionTable.Classify("it " + word + " goes wrong for me")
		found := false
		for _, c := range got {
			if c == AllOrNothing {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected all_or_nothing for %q, got %v", word, got)
		}
	}
}

func TestDistortionMultiMatchOrder(t *testing.T) {
	// "everyone" triggers overgeneralization, "should" triggers
	// should_statements; table order must be preserved.
	got := DistortionTable.Classify("Everyone thinks I should be perfect")
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %v", got)
	}
	if got[0] != Overgeneralization || got[1] != ShouldStatements {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestDistortionCompleteFailureRegex(t *testing.T) {
	got := DistortionTable.Classify("I'm a complete failure")
	if got[0] != AllOrNothing {
		t.Fatalf("expected all_or_nothing first, got %v", got)
	}
}

func TestDistortionEmotionalReasoningEitherOrder(t *testing.T) {
	// "i feel" and the conclusion marker can come in either order.
	inputs := []string{
		"I feel like a fraud, so I won't apply",
		"I feel worthless, I must be doing something wrong",
		"Maybe that's why she left, so I wonder how I feel about it",
		"It must be my fault, that's how I feel anyway",
	}
	for _, in := range inputs {
		got := DistortionTable.Classify(in)
		found := false
		for _, c := range got {
			if c == EmotionalReasoning {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected emotional_reasoning for %q, got %v", in, got)
		}
	}
}

func TestDistortionDefault(t *testing.T) {
	got := DistortionTable.Classify("today was a strange day")
	if len(got) != 1 || got[0] != MentalFilter {
		t.Fatalf("expected mental_filter singleton, got %v", got)
	}
}

func TestMicroTherapyFirstMatch(t *testing.T) {
	got := MicroTherapyTable.Classify("I feel so anxious about the exam")
	if len(got) != 1 || got[0] != Anxious {
		t.Fatalf("expected anxious, got %v", got)
	}

	// "anxious" outranks "sad" because it appears earlier in the table.
	got = MicroTherapyTable.Classify("I am sad and anxious")
	if got[0] != Anxious {
		t.Fatalf("expected anxious to win by priority, got %v", got)
	}
}

func TestMicroTherapyDefault(t *testing.T) {
	got := MicroTherapyTable.Classify("blah blah nothing relevant")
	if len(got) != 1 || got[0] != GeneralSupport {
		t.Fatalf("expected general_support default, got %v", got)
	}
}

func TestSleepTablePriority(t *testing.T) {
	got := SleepTable.Classify("I had a nightmare and I'm scared")
	if got[0] != Nightmares {
		t.Fatalf("expected nightmares, got %v", got)
	}

	got = SleepTable.Classify("I just can't sleep tonight")
	if got[0] != CantSleep {
		t.Fatalf("expected cant_sleep, got %v", got)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	in := "I should never have said that, it ruined everything"
	first := DistortionTable.Classify(in)
	for i := 0; i < 10; i++ {
		again := DistortionTable.Classify(in)
		if len(again) != len(first) {
			t.Fatalf("classification changed between calls: %v vs %v", first, again)
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("classification changed between calls: %v vs %v", first, again)
			}
		}
	}
}
