package intent

import (
	"strings"

	"github.com/tsawler/prose/v3"

	"schedbot/internal/logging"
)

// prosePeople extracts PERSON entities from the raw (original-case)
// input. It supplements the regex pass: names the "with X" pattern
// misses ("invite Sarah and Omar") still end up in the participant list.
// NER failure is never fatal; extraction just degrades to the regex
// results.
func prosePeople(input string) []string {
	doc, err := prose.NewDocument(input)
	if err != nil {
		logging.Debug("intent", "prose extraction failed: %v", err)
		return nil
	}

	var names []string
	for _, ent := range doc.Entities() {
		if !strings.EqualFold(ent.Label, "PERSON") {
			continue
		}
		// Multi-word entities ("Sarah Chen") are split so they merge
		// cleanly with the single-word regex captures.
		for _, part := range strings.Fields(ent.Text) {
			names = append(names, part)
		}
	}
	return names
}
