package subscription

import (
	"strings"

	"urlcheck/pkg/models"
)

// ExtractURLs keeps only the sections whose name starts with "http" and
// treats each of them as a SubscribedURL.
//
// This is a filter, not a validator: a section that passes the prefix check
// but lacks fields still comes back, with the missing fields zero-valued. A
// missing truelink is caught later, when the checker consumes it.
func ExtractURLs(sections map[string]map[string]string) map[string]models.SubscribedURL {
	entries := make(map[string]models.SubscribedURL)
	for name, fields := range sections {
		if !strings.HasPrefix(name, "http") {
			continue
		}
		entries[name] = models.SubscribedURL{
			Name:        fields["name"],
			Description: fields["description"],
			BlogName:    fields["blogname"],
			Icon:        fields["icon"],
			TrueLink:    fields["truelink"],
		}
	}
	return entries
}
