package cli

import (
	"context"
	"fmt"
	"strings"
)

var tenseChoices = map[string]string{
	"1": "present",
	"2": "past",
	"3": "future",
	"4": "eternal",
}

func (a *App) translateToXelthor(ctx context.Context) {
	text, err := GetSimpleText(a.reader, "\nEnter English text to translate", a.out)
	if err != nil || text == "" {
		return
	}
	choice, err := GetSimpleText(a.reader,
		"Select tense: 1. present  2. past  3. future  4. eternal", a.out)
	if err != nil {
		return
	}
	tense, ok := tenseChoices[strings.TrimSpace(choice)]
	if !ok {
		tense = "present"
	}

	result := a.engine().TranslateToXelthor(text, tense)
	a.displayTranslation("English to Xel'thor", text, result)
}

func (a *App) translateToEnglish(ctx context.Context) {
	text, err := GetSimpleText(a.reader, "\nEnter Xel'thor text to translate", a.out)
	if err != nil || text == "" {
		return
	}
	result := a.engine().TranslateToEnglish(text)
	a.displayTranslation("Xel'thor to English", text, result)
}

func (a *App) displayTranslation(direction, original, translated string) {
	fmt.Fprintf(a.out, "\n%s translation\n", direction)
	fmt.Fprintln(a.out, strings.Repeat("-", 40))
	fmt.Fprintf(a.out, "Original text:   %s\n", original)
	fmt.Fprintf(a.out, "Translated text: %s\n", translated)
}
