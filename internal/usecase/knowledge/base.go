package knowledge

import (
	"sort"
	"strings"

	"github.com/meetinsight-team/meeting-insight/internal/domain/entities"
)

// Base is a keyword-to-context dictionary, built once at process start and
// immutable for the process lifetime. Lookup is a case-insensitive
// substring match against segment text.
type Base struct {
	entries map[string]entities.ContextItem
}

// New creates a Base from the given entries. Keys are lowercased.
func New(entries map[string]entities.ContextItem) *Base {
	normalized := make(map[string]entities.ContextItem, len(entries))
	for key, item := range entries {
		normalized[strings.ToLower(key)] = item
	}
	return &Base{entries: normalized}
}

// Lookup returns the context items whose keyword occurs in text, in
// keyword order so repeated lookups are deterministic.
func (b *Base) Lookup(text string) []entities.ContextItem {
	textLower := strings.ToLower(text)
	matched := make([]string, 0)
	for key := range b.entries {
		if strings.Contains(textLower, key) {
			matched = append(matched, key)
		}
	}
	sort.Strings(matched)

	items := make([]entities.ContextItem, 0, len(matched))
	for _, key := range matched {
		items = append(items, b.entries[key])
	}
	return items
}

// DefaultEntries is the demo knowledge base shipped with the service.
func DefaultEntries() map[string]entities.ContextItem {
	return map[string]entities.ContextItem{
		"react native": {
			Title:       "React Native",
			Description: "Current Version: 0.76.1. A framework for building native apps using React.",
			ActionText:  "View Docs",
			ActionURL:   "https://reactnative.dev/",
		},
		"budget": {
			Title:       "Project Budget",
			Description: "Allocated: ₹5,00,000. Remaining: ₹3,20,000. Status: On Track.",
			ActionText:  "View Financials",
			ActionURL:   "#",
		},
		"assemblyai": {
			Title:       "AssemblyAI",
			Description: "API for Speech-to-Text, Speaker Diarization, and Audio Intelligence.",
			ActionText:  "API Reference",
			ActionURL:   "https://www.assemblyai.com/docs",
		},
		"next.js": {
			Title:       "Next.js",
			Description: "The React Framework for the Web. Current Version: 14.1.0.",
			ActionText:  "View Docs",
			ActionURL:   "https://nextjs.org/",
		},
	}
}
