package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

func (a *App) createBackup(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}
	name, err := a.dictRepo.CreateBackup(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not create backup:", err)
		return
	}
	if name == "" {
		fmt.Fprintln(a.out, "Nothing to back up yet.")
		return
	}
	fmt.Fprintln(a.out, "Backup created:", name)
}

func (a *App) manageBackups(ctx context.Context) {
	if !a.requireAdmin() {
		return
	}
	names, err := a.dictRepo.ListBackups(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not list backups:", err)
		return
	}
	if len(names) == 0 {
		fmt.Fprintln(a.out, "\nNo backups found.")
		return
	}
	fmt.Fprintln(a.out, "\nAvailable backups:")
	for i, n := range names {
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, n)
	}

	choice, err := GetSimpleText(a.reader,
		"Enter a backup number to restore, or press Enter to go back", a.out)
	if err != nil || strings.TrimSpace(choice) == "" {
		return
	}
	idx, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil || idx < 1 || idx > len(names) {
		fmt.Fprintln(a.out, "Unknown backup number.")
		return
	}
	name := names[idx-1]
	if err := a.dictRepo.RestoreBackup(ctx, name); err != nil {
		fmt.Fprintln(a.out, "Could not restore backup:", err)
		return
	}
	// The engine snapshot must not survive a restore.
	if err := a.store.Reload(ctx); err != nil {
		fmt.Fprintln(a.out, "Backup restored but reload failed:", err)
		return
	}
	fmt.Fprintln(a.out, "Restored", name)
}
