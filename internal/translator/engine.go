// Package translator implements the English ⇄ Xel'thor translation engine.
//
// The engine is a pure function of the input text and a lexicon snapshot:
// it never mutates the lexicon, and callers construct a new engine from a
// fresh snapshot after any vocabulary change.
package translator

import (
	"fmt"
	"strings"

	"github.com/xelthorlang/xelthor/internal/lexicon"
)

// punctuation stripped from tokens on the English→Xel'thor path only. The
// reverse path tokenizes raw, an asymmetry carried over deliberately.
const punctuation = ".,!?"

type Engine struct {
	snap *lexicon.Snapshot
}

func New(snap *lexicon.Snapshot) *Engine {
	return &Engine{snap: snap}
}

// TranslateToXelthor translates English text into Xel'thor, applying the
// verb-first word order and the tense suffix. An unrecognized tense falls
// back to present. Unknown words come back bracket-wrapped; the method
// never fails, any internal panic is reported in-band.
func (e *Engine) TranslateToXelthor(text, tense string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("translation error: %v", r)
		}
	}()

	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	suffix := e.snap.SuffixFor(tense)

	words := strings.Fields(strings.ToLower(text))
	xel := make([]string, 0, len(words))
	for _, w := range words {
		clean := strings.Trim(w, punctuation)
		if x, ok := e.snap.EngToXel[clean]; ok {
			xel = append(xel, x)
		} else {
			xel = append(xel, "["+clean+"]")
		}
	}

	xel = reorderToVOS(xel)

	// Every verb-looking token carries the tense, not just the one that
	// drove the reordering.
	for i, w := range xel {
		if lexicon.HasVerbPrefix(w) {
			xel[i] = w + suffix
		}
	}
	return strings.Join(xel, " ")
}

// TranslateToEnglish translates Xel'thor text back to English, stripping
// tense suffixes and undoing the verb-first word order. Bracket-wrapped
// tokens (round-tripped unknown words) are unwrapped; anything else unknown
// passes through unchanged. Same non-failing contract as the forward path.
func (e *Engine) TranslateToEnglish(text string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = fmt.Sprintf("translation error: %v", r)
		}
	}()

	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	tokens := strings.Fields(text)
	out := make([]string, len(tokens))
	needWill := false
	for i, tok := range tokens {
		base, tense := e.snap.StripTenseSuffix(tok)
		if eng, ok := e.snap.XelToEng[base]; ok {
			switch tense {
			case "future":
				needWill = true
			case "past":
				if strings.HasSuffix(eng, "ing") {
					eng = "was " + eng
				} else {
					eng = "did " + eng
				}
			}
			out[i] = eng
		} else if strings.HasPrefix(base, "[") && strings.HasSuffix(base, "]") {
			out[i] = strings.TrimSuffix(strings.TrimPrefix(base, "["), "]")
		} else {
			out[i] = tok
		}
	}

	// Undo VOS using the raw source tokens for verb detection: suffixed
	// forms still match the prefix test.
	if len(tokens) >= 3 {
		if v := verbIndex(tokens); v >= 0 {
			reordered := make([]string, 0, len(out))
			reordered = append(reordered, out[v+1:]...)
			reordered = append(reordered, out[v])
			reordered = append(reordered, out[:v]...)
			out = reordered
		}
	}

	if needWill && (len(out) == 0 || out[0] != "will") {
		out = append([]string{"will"}, out...)
	}
	return strings.Join(out, " ")
}

// reorderToVOS moves the first verb-looking token to the front, keeping
// the tokens after it and then the tokens before it in their original
// order. Inputs of fewer than three tokens keep their order.
func reorderToVOS(words []string) []string {
	if len(words) < 3 {
		return words
	}
	v := verbIndex(words)
	if v < 0 {
		return words
	}
	out := make([]string, 0, len(words))
	out = append(out, words[v])
	out = append(out, words[v+1:]...)
	out = append(out, words[:v]...)
	return out
}

func verbIndex(words []string) int {
	for i, w := range words {
		if lexicon.HasVerbPrefix(w) {
			return i
		}
	}
	return -1
}
