package translator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xelthorlang/xelthor/internal/lexicon"
)

func testSnapshot() *lexicon.Snapshot {
	vocab := map[string]string{
		"travel":   "zz'rix",
		"see":      "xa'lor",
		"speak":    "ph'lor",
		"traveler": "xel'thor",
		"star":     "xel'ka",
		"light":    "vor'kaan",
		"wisdom":   "mii'path",
		"singing":  "zz'ling",
		"through":  "vor",
	}
	rev := make(map[string]string, len(vocab))
	for k, v := range vocab {
		rev[v] = k
	}
	return &lexicon.Snapshot{
		EngToXel: vocab,
		XelToEng: rev,
		Tenses: []lexicon.Tense{
			{Name: "present", Suffix: ""},
			{Name: "past", Suffix: "-pa"},
			{Name: "future", Suffix: "-zi"},
			{Name: "eternal", Suffix: "-th"},
		},
	}
}

func TestTranslateToXelthor_SingleWord(t *testing.T) {
	e := New(testSnapshot())
	require.Equal(t, "xel'thor", e.TranslateToXelthor("traveler", "present"))
}

func TestTranslateToXelthor_Empty(t *testing.T) {
	e := New(testSnapshot())
	require.Equal(t, "", e.TranslateToXelthor("   ", "present"))
}

func TestTranslateToXelthor_UnknownWordBracketed(t *testing.T) {
	e := New(testSnapshot())
	require.Equal(t, "[zorp]", e.TranslateToXelthor("zorp", "present"))
}

func TestTranslateToXelthor_PunctuationAndCase(t *testing.T) {
	e := New(testSnapshot())
	got := e.TranslateToXelthor("Traveler, see star!", "present")
	require.Equal(t, "xa'lor xel'ka xel'thor", got)
}

func TestTranslateToXelthor_ReordersVerbFirst(t *testing.T) {
	e := New(testSnapshot())
	// Middle token is the verb: + [after] + [before].
	got := e.TranslateToXelthor("traveler see star", "present")
	require.Equal(t, "xa'lor xel'ka xel'thor", got)
}

func TestTranslateToXelthor_TwoTokensKeepOrder(t *testing.T) {
	e := New(testSnapshot())
	got := e.TranslateToXelthor("traveler see", "present")
	require.Equal(t, "xel'thor xa'lor", got)
}

func TestTranslateToXelthor_NoVerbKeepsOrder(t *testing.T) {
	e := New(testSnapshot())
	got := e.TranslateToXelthor("traveler star through", "present")
	require.Equal(t, "xel'thor xel'ka vor", got)
}

func TestTranslateToXelthor_TenseSuffixOnVerb(t *testing.T) {
	e := New(testSnapshot())
	got := e.TranslateToXelthor("traveler see star", "future")
	require.Equal(t, "xa'lor-zi xel'ka xel'thor", got)
}

func TestTranslateToXelthor_TenseAlsoHitsVerbLookingNouns(t *testing.T) {
	// vor'/mii' nouns satisfy the verb prefix test, so they carry the
	// suffix too. This overlap is deliberate.
	e := New(testSnapshot())
	require.Equal(t, "vor'kaan-zi", e.TranslateToXelthor("light", "future"))
	require.Equal(t, "mii'path-pa", e.TranslateToXelthor("wisdom", "past"))
}

func TestTranslateToXelthor_UnknownTenseFallsBackToPresent(t *testing.T) {
	e := New(testSnapshot())
	require.Equal(t, "zz'rix", e.TranslateToXelthor("travel", "subjunctive"))
}

func TestTranslateToEnglish_RoundTripSingleWords(t *testing.T) {
	e := New(testSnapshot())
	for _, w := range []string{"traveler", "star", "travel", "see", "through"} {
		require.Equal(t, w, e.TranslateToEnglish(e.TranslateToXelthor(w, "present")), "word %q", w)
	}
}

func TestTranslateToEnglish_UnknownBracketRoundTrip(t *testing.T) {
	e := New(testSnapshot())
	require.Equal(t, "zorp", e.TranslateToEnglish("[zorp]"))
}

func TestTranslateToEnglish_UnknownPassthrough(t *testing.T) {
	e := New(testSnapshot())
	require.Equal(t, "qhaz", e.TranslateToEnglish("qhaz"))
}

func TestTranslateToEnglish_PastTense(t *testing.T) {
	e := New(testSnapshot())
	require.Equal(t, "did travel", e.TranslateToEnglish("zz'rix-pa"))
}

func TestTranslateToEnglish_PastTenseIngForm(t *testing.T) {
	e := New(testSnapshot())
	require.Equal(t, "was singing", e.TranslateToEnglish("zz'ling-pa"))
}

func TestTranslateToEnglish_FutureTensePrependsWillOnce(t *testing.T) {
	e := New(testSnapshot())
	require.Equal(t, "will travel", e.TranslateToEnglish("zz'rix-zi"))
	// Two future verbs still yield a single leading "will".
	require.Equal(t, "will travel see", e.TranslateToEnglish("zz'rix-zi xa'lor-zi"))
}

func TestTranslateToEnglish_EternalTenseKeepsWording(t *testing.T) {
	e := New(testSnapshot())
	require.Equal(t, "see", e.TranslateToEnglish("xa'lor-th"))
}

func TestTranslateToEnglish_ReordersVOSBack(t *testing.T) {
	e := New(testSnapshot())
	// Verb leads the Xel'thor sentence; it moves to the middle.
	got := e.TranslateToEnglish("xa'lor xel'ka xel'thor")
	require.Equal(t, "star traveler see", got)
}

func TestTranslateToEnglish_TwoTokensKeepOrder(t *testing.T) {
	e := New(testSnapshot())
	require.Equal(t, "see star", e.TranslateToEnglish("xa'lor xel'ka"))
}

func TestTranslateToEnglish_SuffixedVerbStillDrivesReorder(t *testing.T) {
	e := New(testSnapshot())
	got := e.TranslateToEnglish("xa'lor-pa xel'ka xel'thor")
	require.Equal(t, "star traveler did see", got)
}

func TestTranslateToEnglish_Empty(t *testing.T) {
	e := New(testSnapshot())
	require.Equal(t, "", e.TranslateToEnglish(""))
}

func TestEngine_NeverMutatesSnapshot(t *testing.T) {
	snap := testSnapshot()
	e := New(snap)
	_ = e.TranslateToXelthor("traveler see star", "future")
	_ = e.TranslateToEnglish("xa'lor xel'ka xel'thor")
	require.Equal(t, "zz'rix", snap.EngToXel["travel"])
	require.Len(t, snap.EngToXel, 9)
}
