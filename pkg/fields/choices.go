package fields

// ChoiceEntry is one entry in a field's choice sequence: either a single
// Choice or a labelled ChoiceGroup. The variant set is closed; renderers
// switch over the two concrete types and skip nil entries.
type ChoiceEntry interface {
	sealedChoiceEntry()
}

// Choice is one selectable option. Key becomes the rendered value attribute
// and falls back to Value when nil; Value is compared against the field data
// to derive selection; Label is the display text, escaped on output.
type Choice struct {
	Key   any
	Value any
	Label string
}

func (Choice) sealedChoiceEntry() {}

// OptionKey returns the value attribute for the rendered option.
func (c Choice) OptionKey() any {
	if c.Key != nil {
		return c.Key
	}
	return c.Value
}

// ChoiceGroup is a labelled run of choices rendered as an optgroup. Groups
// hold plain choices only; optgroups do not nest.
type ChoiceGroup struct {
	Label   string
	Choices []Choice
}

func (ChoiceGroup) sealedChoiceEntry() {}

// NewChoice builds a choice whose key and value are the same.
func NewChoice(value any, label string) Choice {
	return Choice{Value: value, Label: label}
}
