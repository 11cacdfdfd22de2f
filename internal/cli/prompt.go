package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var money = message.NewPrinter(language.English)

// formatMoney renders an amount the way the shop always has: NGN with
// thousands grouping and two decimals.
func formatMoney(amount float64) string {
	return money.Sprintf("NGN %.2f", amount)
}

func (a *App) prompt(label string) string {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		a.eof = true
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *App) promptLower(label string) string {
	return strings.ToLower(a.prompt(label))
}

func (a *App) promptInt(label string) (int, bool) {
	raw := a.prompt(label)
	n, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Fprintln(a.out, "Please enter a valid number")
		return 0, false
	}
	return n, true
}

func (a *App) promptFloat(label string) (float64, bool) {
	raw := a.prompt(label)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Please enter a valid amount")
		return 0, false
	}
	return v, true
}

// promptPassword reads without echo when stdin is a real terminal, falling
// back to plain line input under tests and pipes.
func (a *App) promptPassword(label string) string {
	fmt.Fprint(a.out, label)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(a.out)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(string(raw))
	}
	if !a.in.Scan() {
		a.eof = true
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *App) confirm(label string) bool {
	answer := a.promptLower(label + " (y/n): ")
	return answer == "y" || answer == "yes"
}
