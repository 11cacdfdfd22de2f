package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/adewale/termshop/internal/models"
	"github.com/adewale/termshop/internal/service"
)

func (a *App) purchaseMenu(ctx context.Context) {
	for {
		fmt.Fprintln(a.out, "\n======== Purchase Items ========")
		fmt.Fprintln(a.out, "1. Search Items")
		fmt.Fprintln(a.out, "2. Manage Cart")
		fmt.Fprintln(a.out, "3. Checkout")
		fmt.Fprintln(a.out, "4. Back to Store Menu")

		choice := a.prompt("Enter choice (1-4): ")
		if a.eof {
			return
		}
		switch choice {
		case "1":
			if results := a.searchProducts(); len(results) > 0 {
				a.searchResultsMenu(results)
			}
		case "2":
			a.cartMenu()
		case "3":
			a.checkout(ctx)
		case "4":
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice! Please enter 1-4")
		}
	}
}

func (a *App) searchProducts() []*models.Product {
	query := a.prompt("\nEnter search query: ")
	if query == "" {
		fmt.Fprintln(a.out, "Please enter a search term")
		return nil
	}

	results := a.Inventory.Search(query)
	if len(results) == 0 {
		fmt.Fprintln(a.out, "\nNo matching items found")
		return nil
	}

	fmt.Fprintln(a.out, "\n=== Search Results ===")
	for i, p := range results {
		fmt.Fprintf(a.out, "%d. %s - %s (%d available)\n", i+1, p.Name, formatMoney(p.Price), p.Stock)
	}
	return results
}

func (a *App) searchResultsMenu(results []*models.Product) {
	for {
		fmt.Fprintln(a.out, "\n1. Add to Cart")
		fmt.Fprintln(a.out, "2. Search Again")
		fmt.Fprintln(a.out, "3. Back to Purchase Menu")

		choice := a.prompt("Enter choice (1-3): ")
		if a.eof {
			return
		}
		switch choice {
		case "1":
			n, ok := a.promptInt("Enter item number to add: ")
			if !ok {
				continue
			}
			if n < 1 || n > len(results) {
				fmt.Fprintln(a.out, "Invalid item number!")
				continue
			}
			p := results[n-1]
			if err := a.session.Cart.Add(p.ID); err != nil {
				fmt.Fprintln(a.out, errorMessage(err))
				continue
			}
			fmt.Fprintf(a.out, "Added %s to cart. Remaining stock: %d\n", p.Name, p.Stock)
		case "2":
			next := a.searchProducts()
			if len(next) > 0 {
				results = next
			}
		case "3":
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice")
		}
	}
}

func (a *App) viewCart() float64 {
	c := a.session.Cart
	if c.IsEmpty() {
		fmt.Fprintln(a.out, "\nYour cart is empty")
		return 0
	}

	fmt.Fprintln(a.out, "\n======== Your Cart ========")
	for i, item := range c.Items() {
		fmt.Fprintf(a.out, "%d. %s x%d - %s\n", i+1, item.Name, item.Quantity,
			formatMoney(item.Price*float64(item.Quantity)))
	}
	total := c.Total()
	fmt.Fprintf(a.out, "Cart Total: %s\n", formatMoney(total))
	return total
}

func (a *App) cartMenu() {
	for {
		a.viewCart()
		if a.session.Cart.IsEmpty() {
			return
		}

		fmt.Fprintln(a.out, "\n1. Change Quantity")
		fmt.Fprintln(a.out, "2. Remove Item")
		fmt.Fprintln(a.out, "3. Clear Cart")
		fmt.Fprintln(a.out, "4. Back to Purchase Menu")

		choice := a.prompt("Enter choice (1-4): ")
		if a.eof {
			return
		}
		switch choice {
		case "1":
			n, ok := a.promptInt("Enter item number to modify: ")
			if !ok {
				continue
			}
			qty, ok := a.promptInt("Enter new quantity: ")
			if !ok {
				continue
			}
			if err := a.session.Cart.UpdateQuantity(n-1, qty); err != nil {
				fmt.Fprintln(a.out, errorMessage(err))
				continue
			}
			fmt.Fprintf(a.out, "Quantity updated to %d\n", qty)
		case "2":
			n, ok := a.promptInt("Enter item number to remove: ")
			if !ok {
				continue
			}
			item, err := a.session.Cart.Remove(n - 1)
			if err != nil {
				fmt.Fprintln(a.out, errorMessage(err))
				continue
			}
			fmt.Fprintf(a.out, "Removed %s from cart\n", item.Name)
		case "3":
			if a.confirm("Are you sure you want to clear the cart?") {
				a.session.Cart.Clear()
				fmt.Fprintln(a.out, "Cart cleared successfully!")
				return
			}
		case "4":
			return
		default:
			fmt.Fprintln(a.out, "Invalid choice")
		}
	}
}

func (a *App) checkout(ctx context.Context) {
	total := a.viewCart()
	if a.session.Cart.IsEmpty() {
		fmt.Fprintln(a.out, "Add items before checkout.")
		return
	}

	user := a.session.User
	fmt.Fprintln(a.out, "\nOrder Summary:")
	fmt.Fprintf(a.out, "Total Amount: %s\n", formatMoney(total))
	fmt.Fprintf(a.out, "Your Balance: %s\n", formatMoney(user.Balance))
	fmt.Fprintf(a.out, "Balance After Purchase: %s\n", formatMoney(user.Balance-total))

	if !a.confirm("\nConfirm purchase") {
		fmt.Fprintln(a.out, "Purchase cancelled")
		return
	}

	order, err := a.Checkout.Checkout(ctx, a.session)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientFunds) {
			fmt.Fprintln(a.out, "Insufficient funds. Please fund your wallet.")
		} else {
			fmt.Fprintf(a.out, "Checkout failed: %v\n", err)
		}
		return
	}

	fmt.Fprintf(a.out, "Purchase successful! Transaction ID: %s\n", order.TxID)
	fmt.Fprintln(a.out, "Thank you for your order.")
}
