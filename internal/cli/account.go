package cli

import (
	"context"
	"fmt"

	"github.com/adewale/termshop/internal/service"
)

func (a *App) accountMenu(ctx context.Context) {
	for a.session.LoggedIn() {
		fmt.Fprintln(a.out, "\n======== Manage Account ========")
		fmt.Fprintln(a.out, "1. Change Username")
		fmt.Fprintln(a.out, "2. Change Email")
		fmt.Fprintln(a.out, "3. Change Password")
		fmt.Fprintln(a.out, "4. View Account Details")
		fmt.Fprintln(a.out, "5. Reset Balance")
		fmt.Fprintln(a.out, "6. Delete Account")
		fmt.Fprintln(a.out, "7. Back to Store Menu")

		choice := a.prompt("Enter choice (1-7): ")
		if a.eof {
			return
		}
		switch choice {
		case "1":
			a.changeUsername(ctx)
		case "2":
			a.changeEmail(ctx)
		case "3":
			a.changePassword(ctx)
		case "4":
			a.viewDetails()
		case "5":
			a.resetBalance(ctx)
		case "6":
			if a.deleteAccount(ctx) {
				return
			}
		case "7":
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice")
		}
	}
}

// verifyPassword is the reauthentication gate in front of every account
// change.
func (a *App) verifyPassword() bool {
	password := a.promptPassword("Enter your password to verify: ")
	if !a.Account.VerifyPassword(a.session.User, password) {
		fmt.Fprintln(a.out, "Incorrect password")
		return false
	}
	return true
}

func (a *App) changeUsername(ctx context.Context) {
	if !a.verifyPassword() {
		return
	}
	for {
		username := a.prompt("Enter new username: ")
		if a.eof {
			return
		}
		if err := a.Account.ChangeUsername(ctx, a.session.User, username); err != nil {
			fmt.Fprintln(a.out, errorMessage(err))
			continue
		}
		fmt.Fprintln(a.out, "Username updated successfully")
		return
	}
}

func (a *App) changeEmail(ctx context.Context) {
	if !a.verifyPassword() {
		return
	}
	for {
		email := a.promptLower("Enter new email: ")
		if a.eof {
			return
		}
		if err := a.Account.ChangeEmail(ctx, a.session.User, email); err != nil {
			fmt.Fprintln(a.out, errorMessage(err))
			continue
		}
		fmt.Fprintln(a.out, "Email updated successfully")
		return
	}
}

func (a *App) changePassword(ctx context.Context) {
	if !a.verifyPassword() {
		return
	}

	fmt.Fprintln(a.out, "\nNew password must be at least 16 characters with an uppercase")
	fmt.Fprintln(a.out, "letter, a lowercase letter, a number and a symbol.")

	for {
		password := a.promptPassword("Enter new password: ")
		if a.eof {
			return
		}
		if err := service.ValidatePassword(password); err != nil {
			fmt.Fprintln(a.out, errorMessage(err))
			continue
		}
		if confirm := a.promptPassword("Confirm new password: "); confirm != password {
			fmt.Fprintln(a.out, "Passwords do not match")
			continue
		}
		if !a.confirm("Are you sure you want to change your password?") {
			fmt.Fprintln(a.out, "Password change cancelled")
			return
		}
		if err := a.Account.ChangePassword(ctx, a.session.User, password); err != nil {
			fmt.Fprintln(a.out, errorMessage(err))
			continue
		}
		fmt.Fprintln(a.out, "Password changed successfully")
		return
	}
}

func (a *App) viewDetails() {
	if !a.verifyPassword() {
		return
	}
	user := a.session.User
	fmt.Fprintln(a.out, "\n======== Account Details ========")
	fmt.Fprintf(a.out, "Username:  %s\n", user.Username)
	fmt.Fprintf(a.out, "Email:     %s\n", user.Email)
	fmt.Fprintf(a.out, "Balance:   %s\n", formatMoney(user.Balance))
}

func (a *App) resetBalance(ctx context.Context) {
	if !a.verifyPassword() {
		return
	}
	user := a.session.User
	fmt.Fprintf(a.out, "\nCurrent balance: %s\n", formatMoney(user.Balance))
	if !a.confirm("Are you sure you want to reset your balance to zero?") {
		fmt.Fprintln(a.out, "Balance reset cancelled")
		return
	}
	if user.Balance > service.LargeBalanceThreshold {
		fmt.Fprintln(a.out, "WARNING: You have a significant balance!")
		if a.prompt("Type 'RESET' to confirm: ") != "RESET" {
			fmt.Fprintln(a.out, "Balance reset cancelled")
			return
		}
	}
	if err := a.Account.ResetBalance(ctx, user); err != nil {
		fmt.Fprintf(a.out, "Error saving balance reset: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Balance reset to zero")
}

func (a *App) deleteAccount(ctx context.Context) bool {
	if !a.verifyPassword() {
		return false
	}
	user := a.session.User
	if user.Balance > 0 {
		fmt.Fprintf(a.out, "WARNING: You have %s in your wallet!\n", formatMoney(user.Balance))
		fmt.Fprintln(a.out, "This balance will be permanently lost if you delete your account.")
	}
	if !a.confirm("ARE YOU SURE YOU WANT TO DELETE YOUR ACCOUNT? THIS CANNOT BE UNDONE!") {
		fmt.Fprintln(a.out, "Account deletion cancelled")
		return false
	}
	if a.prompt("Type 'DELETE' to confirm deletion: ") != "DELETE" {
		fmt.Fprintln(a.out, "Account deletion cancelled")
		return false
	}
	if err := a.Account.DeleteAccount(ctx, a.session); err != nil {
		fmt.Fprintf(a.out, "Error deleting account: %v\n", err)
		return false
	}
	fmt.Fprintln(a.out, "Account deleted successfully. Returning to main menu.")
	return true
}
