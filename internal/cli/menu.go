package cli

import (
	"context"
	"fmt"
	"strings"
)

const headerLine = "========================================"

func (a *App) printHeader() {
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, headerLine)
	fmt.Fprintln(a.out, "        Xel'thor Translator")
	fmt.Fprintln(a.out, headerLine)
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out, "\nAvailable options ["+a.status()+"]:")
	fmt.Fprintln(a.out, " 1. English to Xel'thor translation")
	fmt.Fprintln(a.out, " 2. Xel'thor to English translation")
	fmt.Fprintln(a.out, " 3. View vocabulary")
	fmt.Fprintln(a.out, " 4. View vocabulary by category")
	fmt.Fprintln(a.out, " 5. View grammar rules")
	fmt.Fprintln(a.out, " 6. View special phrases")
	fmt.Fprintln(a.out, " 7. Add word")
	fmt.Fprintln(a.out, " 8. Edit word")
	fmt.Fprintln(a.out, " 9. Remove word")
	fmt.Fprintln(a.out, "10. Add special phrase")
	fmt.Fprintln(a.out, "11. Remove special phrase")
	fmt.Fprintln(a.out, "12. Batch import words")
	fmt.Fprintln(a.out, "13. Batch import special phrases")
	fmt.Fprintln(a.out, "14. Export vocabulary")
	fmt.Fprintln(a.out, "15. Create backup")
	fmt.Fprintln(a.out, "16. List / restore backups")
	fmt.Fprintln(a.out, "17. Manage users")
	fmt.Fprintln(a.out, "18. Change password")
	fmt.Fprintln(a.out, "19. Login / logout")
	fmt.Fprintln(a.out, "20. Exit")
	fmt.Fprintln(a.out, strings.Repeat("-", 40))
}

// Run drives the interactive menu until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	a.printHeader()
	for {
		a.printMenu()
		choice, err := GetSimpleText(a.reader, "Enter your choice (1-20)", a.out)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			a.translateToXelthor(ctx)
		case "2":
			a.translateToEnglish(ctx)
		case "3":
			a.viewVocabulary()
		case "4":
			a.viewVocabularyByCategory()
		case "5":
			a.viewGrammarRules()
		case "6":
			a.viewSpecialPhrases()
		case "7":
			a.addWord(ctx)
		case "8":
			a.editWord(ctx)
		case "9":
			a.removeWord(ctx)
		case "10":
			a.addSpecialPhrase(ctx)
		case "11":
			a.removeSpecialPhrase(ctx)
		case "12":
			a.batchImportWords(ctx)
		case "13":
			a.batchImportPhrases(ctx)
		case "14":
			a.exportVocabulary(ctx)
		case "15":
			a.createBackup(ctx)
		case "16":
			a.manageBackups(ctx)
		case "17":
			a.manageUsers(ctx)
		case "18":
			a.changePassword(ctx)
		case "19":
			a.loginLogout(ctx)
		case "20", "exit", "quit":
			fmt.Fprintln(a.out, "\nFarewell, xel'thor! May the vor'kaan guide your path.")
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice. Please enter a number between 1 and 20.")
		}
	}
}
