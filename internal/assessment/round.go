package assessment

import "time"

// Round identifies one phase of the assessment.
type Round string

const (
	RoundMCQ          Round = "mcq"
	RoundPsychometric Round = "psychometric"
	RoundTechnical    Round = "technical"
	RoundTextBased    Round = "text-based"
)

// RoundOrder is the fixed sequence candidates move through.
// The order is configuration, not computed.
var RoundOrder = []Round{RoundMCQ, RoundPsychometric, RoundTechnical, RoundTextBased}

// RoundConfig holds the display metadata for a round.
type RoundConfig struct {
	ID            Round
	Name          string
	Description   string
	EstimatedTime time.Duration
	Order         int
}

// RoundConfigs maps each round to its display metadata.
var RoundConfigs = map[Round]RoundConfig{
	RoundMCQ: {
		ID:            RoundMCQ,
		Name:          "Multiple Choice Questions",
		Description:   "Test your fundamental knowledge with curated MCQ questions",
		EstimatedTime: 15 * time.Minute,
		Order:         1,
	},
	RoundPsychometric: {
		ID:            RoundPsychometric,
		Name:          "Psychometric Assessment",
		Description:   "Evaluate your personality traits, work style, and soft skills",
		EstimatedTime: 20 * time.Minute,
		Order:         2,
	},
	RoundTechnical: {
		ID:            RoundTechnical,
		Name:          "Technical Assessment",
		Description:   "Demonstrate your coding skills with real-world programming challenges",
		EstimatedTime: 45 * time.Minute,
		Order:         3,
	},
	RoundTextBased: {
		ID:            RoundTextBased,
		Name:          "Text-Based Questions",
		Description:   "Answer open-ended questions to show your communication and thought process",
		EstimatedTime: 30 * time.Minute,
		Order:         4,
	},
}

// NextRound returns the round following r in RoundOrder, or "" if r is last.
func NextRound(r Round) Round {
	for i, cur := range RoundOrder {
		if cur == r && i+1 < len(RoundOrder) {
			return RoundOrder[i+1]
		}
	}
	return ""
}
