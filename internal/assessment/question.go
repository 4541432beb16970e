package assessment

import "fmt"

// QuestionKind discriminates the question variants.
type QuestionKind string

const (
	KindCoding QuestionKind = "coding"
	KindMCQ    QuestionKind = "mcq"
	KindText   QuestionKind = "text"
	KindRating QuestionKind = "rating"
)

// Example is a worked input/output pair attached to a coding question.
type Example struct {
	Input       string
	Output      string
	Explanation string
}

// Question is a kind-discriminated record. Only the fields matching Kind
// are meaningful. Questions are immutable once fetched; they are owned by
// the round that contains them.
type Question struct {
	ID     int
	Kind   QuestionKind
	Title  string
	Prompt string

	// mcq
	Options []string

	// rating
	Min  int
	Max  int
	Step int

	// text
	MaxLength int

	// coding
	StarterCode string
	Language    string
	Examples    []Example
	Constraints []string
}

// Answer is the value a candidate gives for one question. The concrete
// type must match the question's Kind.
type Answer interface {
	isAnswer()
}

// OptionAnswer is the selected option index for an mcq question.
type OptionAnswer int

// TextAnswer is free text for a text question.
type TextAnswer string

// RatingAnswer is a numeric rating for a rating question.
type RatingAnswer int

// CodeAnswer is source text for a coding question.
type CodeAnswer string

func (OptionAnswer) isAnswer() {}
func (TextAnswer) isAnswer()   {}
func (RatingAnswer) isAnswer() {}
func (CodeAnswer) isAnswer()   {}

// ValidationError reports an answer rejected at the boundary. The answer
// map is never mutated when validation fails.
type ValidationError struct {
	QuestionID int
	Reason     string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid answer for question %d: %s", e.QuestionID, e.Reason)
}

// ValidateAnswer checks that ans matches q's kind and constraints.
// Out-of-range values are rejected, not clamped.
func ValidateAnswer(q *Question, ans Answer) error {
	switch q.Kind {
	case KindMCQ:
		opt, ok := ans.(OptionAnswer)
		if !ok {
			return &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("mcq question requires an option index, got %T", ans)}
		}
		if int(opt) < 0 || int(opt) >= len(q.Options) {
			return &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("option %d out of range [0,%d)", opt, len(q.Options))}
		}
	case KindText:
		text, ok := ans.(TextAnswer)
		if !ok {
			return &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("text question requires text, got %T", ans)}
		}
		if q.MaxLength > 0 && len(text) > q.MaxLength {
			return &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("text length %d exceeds limit %d", len(text), q.MaxLength)}
		}
	case KindRating:
		r, ok := ans.(RatingAnswer)
		if !ok {
			return &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("rating question requires a number, got %T", ans)}
		}
		if int(r) < q.Min || int(r) > q.Max {
			return &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("rating %d outside [%d,%d]", r, q.Min, q.Max)}
		}
	case KindCoding:
		if _, ok := ans.(CodeAnswer); !ok {
			return &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("coding question requires source text, got %T", ans)}
		}
	default:
		return &ValidationError{QuestionID: q.ID, Reason: fmt.Sprintf("unknown question kind %q", q.Kind)}
	}
	return nil
}
