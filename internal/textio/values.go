package textio

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/quarrydata/slate/internal/frame"
)

// timestampLayouts are tried in order. Seconds and fractional seconds
// are optional in the input.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseValues tokenizes a line into n labels, inferring the most specific
// type per token. Positions past the last token stay Absent.
func ParseValues(line string, n int) []frame.Label {
	out := make([]frame.Label, n)
	for i := range out {
		out[i] = frame.Absent{}
	}
	for i, tok := range strings.Fields(line) {
		if i >= n {
			break
		}
		out[i] = ParseToken(tok)
	}
	return out
}

// ParseToken infers a single token's label. Inference order: boolean,
// integer, double, ISO date-time, the word "null" (empty text), text.
func ParseToken(tok string) frame.Label {
	switch strings.ToLower(tok) {
	case "true":
		return frame.Bool(true)
	case "false":
		return frame.Bool(false)
	}
	if n, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return frame.Int(n)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return frame.Float(f)
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, tok); err == nil {
			return frame.Timestamp(t)
		}
	}
	if strings.EqualFold(tok, "null") {
		return frame.Text("")
	}
	return frame.Text(norm.NFC.String(tok))
}
