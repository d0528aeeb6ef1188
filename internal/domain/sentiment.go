package domain

import "context"

// Label is the three-valued sentiment classification of a message.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// Emoji maps a label to its display glyph. Total: anything outside the three
// known labels maps to the neutral glyph.
func (l Label) Emoji() string {
	switch l {
	case LabelPositive:
		return "😃"
	case LabelNegative:
		return "😠"
	default:
		return "😐"
	}
}

// Classifier labels message text. Implementations never fail outward: any
// upstream error degrades to LabelNeutral.
type Classifier interface {
	Classify(ctx context.Context, text string) Label
}
