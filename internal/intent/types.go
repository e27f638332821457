package intent

// Entry is one intent: a tag, its example phrasings and its candidate replies.
type Entry struct {
	Tag       string   `json:"tag"       yaml:"tag"       validate:"required"`
	Patterns  []string `json:"patterns"  yaml:"patterns"  validate:"required,min=1,has_text"`
	Responses []string `json:"responses" yaml:"responses" validate:"required,min=1,has_text"`
}

// File is the on-disk shape of an intents file.
type File struct {
	Intents []Entry `json:"intents" yaml:"intents"`
}

// Sample is one pattern with its owning tag, taken from the store in order.
// Response is the reply paired with the pattern: the pattern at position j of
// an entry takes responses[j mod len(responses)].
type Sample struct {
	Tag      string
	Pattern  string
	Response string
}

// Format selects the intents file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Report is the outcome of validating a list of entries.
type Report struct {
	Total         int
	Errors        []string
	DuplicateTags map[string]int
	Distribution  []TagCount
}

// TagCount is how many entries share a tag, in first-seen order.
type TagCount struct {
	Tag   string
	Count int
}

// OK reports whether no structural errors were found.
// Duplicate tags are warnings and do not affect OK.
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

// QAFile is the flat question/answer dataset accepted by Convert.
type QAFile struct {
	Intents []QAItem `json:"intents"`
}

// QAItem is one question/answer pair.
type QAItem struct {
	Query    string `json:"query"`
	Response string `json:"response"`
}
