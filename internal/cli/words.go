package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/xelthorlang/xelthor/internal/lexicon"
)

func (a *App) viewVocabulary() {
	entries := a.store.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "\nThe vocabulary is empty.")
		return
	}
	width := 0
	for _, e := range entries {
		if len(e.English) > width {
			width = len(e.English)
		}
	}
	fmt.Fprintln(a.out, "\nCurrent vocabulary:")
	fmt.Fprintln(a.out, strings.Repeat("-", 40))
	for _, e := range entries {
		fmt.Fprintf(a.out, "%-*s = %s\n", width, e.English, e.Xelthor)
	}
}

func (a *App) viewVocabularyByCategory() {
	categories := []lexicon.Category{
		lexicon.CategoryVerb,
		lexicon.CategoryPhysical,
		lexicon.CategoryEnergy,
		lexicon.CategoryAbstract,
		lexicon.CategoryConnector,
	}
	for _, c := range categories {
		entries := a.store.EntriesByCategory(c)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(a.out, "\n%s:\n", c)
		for _, e := range entries {
			fmt.Fprintf(a.out, "  %s = %s\n", e.English, e.Xelthor)
		}
	}
}

func (a *App) viewGrammarRules() {
	snap := a.store.Snapshot()
	fmt.Fprintln(a.out, "\nXel'thor grammar:")
	fmt.Fprintln(a.out, strings.Repeat("-", 40))
	fmt.Fprintln(a.out, "Word order: Verb-Object-Subject (sentences of 3+ words)")
	fmt.Fprintln(a.out, "Verb prefixes:", strings.Join(lexicon.VerbPrefixes, ", "))
	fmt.Fprintln(a.out, "Noun prefixes:")
	for name, prefix := range snap.Prefixes {
		fmt.Fprintf(a.out, "  %-8s %s\n", name, prefix)
	}
	fmt.Fprintln(a.out, "Tense suffixes:")
	for _, t := range snap.Tenses {
		suffix := t.Suffix
		if suffix == "" {
			suffix = "(none)"
		}
		fmt.Fprintf(a.out, "  %-8s %s\n", t.Name, suffix)
	}
}

func (a *App) addWord(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}
	english, err := GetSimpleText(a.reader, "\nEnter the English word", a.out)
	if err != nil || english == "" {
		return
	}
	xelthor, err := GetSimpleText(a.reader, "Enter the Xel'thor form", a.out)
	if err != nil || xelthor == "" {
		return
	}
	catText, err := GetSimpleText(a.reader,
		"Category: 1. verb  2. physical noun  3. energy noun  4. abstract noun  5. connector", a.out)
	if err != nil {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(catText))
	if err != nil {
		fmt.Fprintln(a.out, "Invalid category.")
		return
	}
	c, ok := lexicon.CategoryFromNumber(n)
	if !ok {
		fmt.Fprintln(a.out, "Invalid category.")
		return
	}
	if err := a.store.AddWord(ctx, english, xelthor, c); err != nil {
		fmt.Fprintln(a.out, "Could not add word:", err)
		return
	}
	fmt.Fprintf(a.out, "Added %s = %s\n", english, xelthor)
}

func (a *App) editWord(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}
	english, err := GetSimpleText(a.reader, "\nEnter the English word to edit", a.out)
	if err != nil || english == "" {
		return
	}
	xelthor, err := GetSimpleText(a.reader, "Enter the new Xel'thor form", a.out)
	if err != nil || xelthor == "" {
		return
	}
	if err := a.store.EditWord(ctx, english, xelthor); err != nil {
		fmt.Fprintln(a.out, "Could not edit word:", err)
		return
	}
	fmt.Fprintf(a.out, "Updated %s = %s\n", english, xelthor)
}

func (a *App) removeWord(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}
	english, err := GetSimpleText(a.reader, "\nEnter the English word to remove", a.out)
	if err != nil || english == "" {
		return
	}
	if err := a.store.RemoveWord(ctx, english); err != nil {
		fmt.Fprintln(a.out, "Could not remove word:", err)
		return
	}
	fmt.Fprintf(a.out, "Removed %s\n", english)
}

func (a *App) batchImportWords(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}
	rows, err := GetBatchRows(a.reader,
		"\nEnter rows as english,xelthor,category (1-5)", a.out)
	if err != nil || len(rows) == 0 {
		return
	}
	lenientText, err := GetSimpleText(a.reader,
		"Auto-prepend missing category prefixes? (y/N)", a.out)
	if err != nil {
		return
	}
	lenient := strings.EqualFold(strings.TrimSpace(lenientText), "y")

	added, errs := a.store.BatchAddWords(ctx, rows, lenient)
	fmt.Fprintf(a.out, "\nImported %d word(s).\n", added)
	for _, e := range errs {
		fmt.Fprintln(a.out, " ", e)
	}
}

func (a *App) exportVocabulary(ctx context.Context) {
	rows := a.store.ExportWords()
	fmt.Fprintln(a.out, "\nVocabulary export (english,xelthor,category):")
	fmt.Fprintln(a.out, strings.Repeat("-", 40))
	for _, r := range rows {
		fmt.Fprintln(a.out, r)
	}
}
