package cli

import (
	"context"
	"fmt"
	"strings"
)

func (a *App) viewSpecialPhrases() {
	phrases := a.store.SpecialPhrases()
	if len(phrases) == 0 {
		fmt.Fprintln(a.out, "\nNo special phrases defined.")
		return
	}
	fmt.Fprintln(a.out, "\nSpecial phrases:")
	fmt.Fprintln(a.out, strings.Repeat("-", 40))
	for _, p := range phrases {
		fmt.Fprintf(a.out, "%s = %s\n", p.English, p.Xelthor)
	}
}

func (a *App) addSpecialPhrase(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}
	english, err := GetSimpleText(a.reader, "\nEnter the English phrase", a.out)
	if err != nil || english == "" {
		return
	}
	xelthor, err := GetSimpleText(a.reader, "Enter the Xel'thor phrase", a.out)
	if err != nil || xelthor == "" {
		return
	}
	if err := a.store.AddSpecialPhrase(ctx, english, xelthor); err != nil {
		fmt.Fprintln(a.out, "Could not add phrase:", err)
		return
	}
	fmt.Fprintf(a.out, "Added phrase %s = %s\n", english, xelthor)
}

func (a *App) removeSpecialPhrase(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}
	english, err := GetSimpleText(a.reader, "\nEnter the English phrase to remove", a.out)
	if err != nil || english == "" {
		return
	}
	if err := a.store.RemoveSpecialPhrase(ctx, english); err != nil {
		fmt.Fprintln(a.out, "Could not remove phrase:", err)
		return
	}
	fmt.Fprintf(a.out, "Removed phrase %s\n", english)
}

func (a *App) batchImportPhrases(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}
	rows, err := GetBatchRows(a.reader, "\nEnter rows as english,xelthor", a.out)
	if err != nil || len(rows) == 0 {
		return
	}
	added, errs := a.store.BatchAddSpecialPhrases(ctx, rows)
	fmt.Fprintf(a.out, "\nImported %d phrase(s).\n", added)
	for _, e := range errs {
		fmt.Fprintln(a.out, " ", e)
	}
}
