package timezones

import (
	"strings"

	"github.com/goliatone/go-formwidgets/pkg/fields"
)

// Choices maps zones onto a flat choice list. The zone name is both value
// and label, so selections round-trip as IANA identifiers.
func Choices(zones []string) []fields.ChoiceEntry {
	if len(zones) == 0 {
		return nil
	}

	out := make([]fields.ChoiceEntry, 0, len(zones))
	for _, zone := range zones {
		out = append(out, fields.NewChoice(zone, zone))
	}
	return out
}

// GroupedChoices maps zones onto optgroup entries keyed by the leading
// region segment. Zones without a region, such as UTC, become plain choices
// at their sorted position. Labels drop the region prefix and replace
// underscores with spaces, while values keep the full IANA name.
func GroupedChoices(zones []string) []fields.ChoiceEntry {
	if len(zones) == 0 {
		return nil
	}

	out := make([]fields.ChoiceEntry, 0, 16)
	var group fields.ChoiceGroup

	flush := func() {
		if group.Label == "" {
			return
		}
		out = append(out, group)
		group = fields.ChoiceGroup{}
	}

	for _, zone := range zones {
		region, rest, ok := strings.Cut(zone, "/")
		if !ok {
			flush()
			out = append(out, fields.NewChoice(zone, zone))
			continue
		}
		if region != group.Label {
			flush()
			group = fields.ChoiceGroup{Label: region}
		}
		group.Choices = append(group.Choices, fields.Choice{
			Value: zone,
			Label: strings.ReplaceAll(rest, "_", " "),
		})
	}
	flush()

	return out
}

// SearchChoices runs Search and maps the hits onto flat choices, preserving
// the ranked order.
func SearchChoices(zones []string, query string, limit int, opts Options) []fields.ChoiceEntry {
	results := Search(zones, query, limit, opts)
	if len(results) == 0 {
		return nil
	}
	return Choices(results)
}
