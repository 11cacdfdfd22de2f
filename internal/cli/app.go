// Package cli drives the terminal menus. Everything here is prompt glue:
// the decisions live in the service and cart packages.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/adewale/termshop/internal/cart"
	"github.com/adewale/termshop/internal/service"
	"github.com/adewale/termshop/internal/store"
)

type App struct {
	in  *bufio.Scanner
	out io.Writer

	Auth      *service.AuthService
	Account   *service.AccountService
	Checkout  *service.CheckoutService
	Inventory *store.Inventory

	session *service.Session
	eof     bool
}

func New(in io.Reader, out io.Writer, auth *service.AuthService, account *service.AccountService, checkout *service.CheckoutService, inv *store.Inventory) *App {
	return &App{
		in:        bufio.NewScanner(in),
		out:       out,
		Auth:      auth,
		Account:   account,
		Checkout:  checkout,
		Inventory: inv,
		session:   &service.Session{Cart: cart.New(inv)},
	}
}

// Run loops the top-level Sign In / Sign Up / Exit menu until the user quits
// or input runs out.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the E-Commerce App!")

	for {
		fmt.Fprintln(a.out, "\n1. Sign In")
		fmt.Fprintln(a.out, "2. Sign Up")
		fmt.Fprintln(a.out, "3. Exit")

		choice := a.promptLower("Enter choice (1-3): ")
		if a.eof {
			return
		}
		switch choice {
		case "1":
			if a.signIn(ctx) {
				a.dashboard(ctx)
			}
		case "2":
			if a.signUp(ctx) {
				a.dashboard(ctx)
			}
		case "3", "exit", "quit":
			fmt.Fprintln(a.out, "Thank you for using the app! Shutting down...")
			return
		default:
			fmt.Fprintln(a.out, "Invalid entry! Please try again.")
		}
	}
}

func (a *App) signIn(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n======== Login to your Account ========")

	identifier := a.prompt("Enter your Username / Email: ")
	password := a.promptPassword("Enter your password: ")

	user, err := a.Auth.SignIn(ctx, identifier, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Login failed! Invalid username, email or password.")
		} else {
			fmt.Fprintf(a.out, "Login failed: %v\n", err)
		}
		return false
	}

	a.session.User = user
	fmt.Fprintln(a.out, "Login successful!")
	return true
}

// signUp walks each field until it validates, but rejects duplicates
// immediately rather than letting the user type the rest first.
func (a *App) signUp(ctx context.Context) bool {
	fmt.Fprintln(a.out, "\n======== Create an Account ========")

	var username string
	for {
		username = a.prompt("Enter your Username: ")
		if a.eof {
			return false
		}
		if err := service.ValidateUsername(username); err != nil {
			fmt.Fprintln(a.out, errorMessage(err))
			continue
		}
		if a.Auth.UsernameTaken(username) {
			fmt.Fprintln(a.out, "Username already exists!")
			continue
		}
		break
	}

	var email string
	for {
		email = a.promptLower("Enter your E-mail: ")
		if a.eof {
			return false
		}
		if err := service.ValidateEmail(email); err != nil {
			fmt.Fprintln(a.out, errorMessage(err))
			continue
		}
		if a.Auth.EmailTaken(email) {
			fmt.Fprintln(a.out, "Email already exists!")
			continue
		}
		break
	}

	var password string
	for {
		choice := a.promptLower("Do you want to auto-generate a password? (y/n): ")
		if a.eof {
			return false
		}
		if choice == "y" || choice == "yes" {
			generated, err := service.GeneratePassword()
			if err != nil {
				fmt.Fprintf(a.out, "Could not generate a password: %v\n", err)
				continue
			}
			password = generated
			fmt.Fprintf(a.out, "Your password is %s\n", password)
			break
		}
		if choice != "n" && choice != "no" {
			fmt.Fprintln(a.out, "Invalid entry. Try again!")
			continue
		}

		fmt.Fprintln(a.out, "Password must be at least 16 characters with an uppercase letter,")
		fmt.Fprintln(a.out, "a lowercase letter, a number and a symbol.")
		password = a.promptPassword("Enter your password: ")
		if err := service.ValidatePassword(password); err != nil {
			fmt.Fprintln(a.out, "Password doesn't meet requirements!")
			continue
		}
		break
	}

	user, err := a.Auth.SignUp(ctx, username, email, password)
	if err != nil {
		fmt.Fprintf(a.out, "Could not create account: %v\n", errorMessage(err))
		return false
	}

	a.session.User = user
	fmt.Fprintf(a.out, "Account created successfully for %s!\n", user.Username)
	return true
}

// errorMessage strips the ": validation" style sentinel suffix for display.
func errorMessage(err error) string {
	msg := err.Error()
	if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrConflict) || errors.Is(err, service.ErrPasswordReuse) {
		if i := strings.LastIndex(msg, ":"); i > 0 {
			return msg[:i]
		}
	}
	return msg
}
