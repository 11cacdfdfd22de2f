package cli

import (
	"context"
	"fmt"
)

func (a *App) dashboard(ctx context.Context) {
	for a.session.LoggedIn() {
		fmt.Fprintf(a.out, "\n======== Welcome, %s ========\n", a.session.User.Username)
		fmt.Fprintln(a.out, "1. Fund Wallet")
		fmt.Fprintln(a.out, "2. Purchase Items")
		fmt.Fprintln(a.out, "3. Order History")
		fmt.Fprintln(a.out, "4. Manage Account")
		fmt.Fprintln(a.out, "5. Logout")

		choice := a.prompt("Enter choice (1-5): ")
		if a.eof {
			a.session.End()
			return
		}
		switch choice {
		case "1":
			a.fundWallet(ctx)
		case "2":
			a.purchaseMenu(ctx)
		case "3":
			a.orderHistory(ctx)
		case "4":
			a.accountMenu(ctx)
		case "5":
			a.session.End()
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice")
		}
	}
}

var fundPresets = []float64{10_000, 20_000, 50_000, 100_000}

func (a *App) fundWallet(ctx context.Context) {
	fmt.Fprintln(a.out, "\n=== Fund Wallet ===")
	fmt.Fprintf(a.out, "Current balance: %s\n", formatMoney(a.session.User.Balance))

	for i, amount := range fundPresets {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, formatMoney(amount))
	}
	fmt.Fprintln(a.out, "5. Custom Amount")

	for {
		choice := a.prompt("Select amount to add (1-5): ")
		if a.eof {
			return
		}

		var amount float64
		switch choice {
		case "1", "2", "3", "4":
			amount = fundPresets[int(choice[0]-'1')]
		case "5":
			v, ok := a.promptFloat("Enter custom amount: ")
			if !ok {
				continue
			}
			amount = v
		default:
			fmt.Fprintln(a.out, "Invalid entry!")
			continue
		}

		if err := a.Account.FundWallet(ctx, a.session.User, amount); err != nil {
			fmt.Fprintln(a.out, errorMessage(err))
			continue
		}
		fmt.Fprintf(a.out, "Payment of %s successful! New balance: %s\n",
			formatMoney(amount), formatMoney(a.session.User.Balance))
		return
	}
}

func (a *App) orderHistory(ctx context.Context) {
	orders, err := a.Checkout.History(ctx, a.session.User)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load order history: %v\n", err)
		return
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "\nNo orders yet.")
		return
	}

	fmt.Fprintln(a.out, "\n======== Order History ========")
	for _, order := range orders {
		fmt.Fprintf(a.out, "%s  %s  %s\n",
			order.CreatedAt.Format("2006-01-02 15:04"), order.TxID, formatMoney(order.Total))
		for _, item := range order.Items {
			fmt.Fprintf(a.out, "    %s x%d - %s\n", item.Name, item.Quantity, formatMoney(item.Price*float64(item.Quantity)))
		}
	}
}
