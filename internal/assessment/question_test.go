package assessment

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateAnswer_RatingOutOfRangeRejected(t *testing.T) {
	q := &Question{ID: 1, Kind: KindRating, Min: 1, Max: 10, Step: 1}

	if err := ValidateAnswer(q, RatingAnswer(11)); err == nil {
		t.Fatal("rating 11 with max 10 must be rejected, not stored")
	}
	if err := ValidateAnswer(q, RatingAnswer(0)); err == nil {
		t.Fatal("rating 0 with min 1 must be rejected")
	}
	if err := ValidateAnswer(q, RatingAnswer(10)); err != nil {
		t.Errorf("rating at max rejected: %v", err)
	}
	if err := ValidateAnswer(q, RatingAnswer(1)); err != nil {
		t.Errorf("rating at min rejected: %v", err)
	}
}

func TestValidateAnswer_KindMismatch(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		ans  Answer
	}{
		{"text for mcq", Question{ID: 1, Kind: KindMCQ, Options: []string{"a", "b"}}, TextAnswer("a")},
		{"option for rating", Question{ID: 2, Kind: KindRating, Min: 1, Max: 5}, OptionAnswer(3)},
		{"rating for text", Question{ID: 3, Kind: KindText, MaxLength: 10}, RatingAnswer(2)},
		{"text for coding", Question{ID: 4, Kind: KindCoding}, TextAnswer("print()")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAnswer(&tt.q, tt.ans)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestValidateAnswer_OptionRange(t *testing.T) {
	q := &Question{ID: 1, Kind: KindMCQ, Options: []string{"a", "b", "c"}}

	if err := ValidateAnswer(q, OptionAnswer(3)); err == nil {
		t.Error("option index past the list must be rejected")
	}
	if err := ValidateAnswer(q, OptionAnswer(-1)); err == nil {
		t.Error("negative option index must be rejected")
	}
	if err := ValidateAnswer(q, OptionAnswer(2)); err != nil {
		t.Errorf("last option rejected: %v", err)
	}
}

func TestValidateAnswer_TextLimit(t *testing.T) {
	q := &Question{ID: 1, Kind: KindText, MaxLength: 5}

	if err := ValidateAnswer(q, TextAnswer(strings.Repeat("x", 6))); err == nil {
		t.Error("over-limit text must be rejected")
	}
	if err := ValidateAnswer(q, TextAnswer("12345")); err != nil {
		t.Errorf("text at limit rejected: %v", err)
	}

	// Zero limit means unbounded.
	unlimited := &Question{ID: 2, Kind: KindText}
	if err := ValidateAnswer(unlimited, TextAnswer(strings.Repeat("x", 10000))); err != nil {
		t.Errorf("unbounded text rejected: %v", err)
	}
}

func TestNextRound(t *testing.T) {
	if got := NextRound(RoundMCQ); got != RoundPsychometric {
		t.Errorf("NextRound(mcq) = %s", got)
	}
	if got := NextRound(RoundTextBased); got != "" {
		t.Errorf("NextRound(text-based) = %s, want empty", got)
	}
}
