package intent

import "fmt"

// Convert turns a flat question/answer dataset into one intent per pair,
// tagged intent_<n> by 1-based position. Items missing a query or a response
// are skipped and their 0-based positions returned.
func Convert(qa QAFile) (File, []int) {
	out := File{Intents: []Entry{}}
	var skipped []int

	for i, item := range qa.Intents {
		if item.Query == "" || item.Response == "" {
			skipped = append(skipped, i)
			continue
		}
		out.Intents = append(out.Intents, Entry{
			Tag:       fmt.Sprintf("intent_%d", i+1),
			Patterns:  []string{item.Query},
			Responses: []string{item.Response},
		})
	}

	return out, skipped
}
