package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/adewale/termshop/internal/logging"
	"github.com/adewale/termshop/internal/models"
	"github.com/adewale/termshop/internal/store"
)

type CheckoutService struct {
	Users  *store.Users
	Orders *store.Orders
}

// Checkout debits the wallet by the cart total, records the sale in the
// ledger and empties the cart without restoring stock. A failed funds check
// leaves balance and cart exactly as they were. Emptiness is checked on the
// cart itself, not on a zero total, so price-0 items still check out.
func (s *CheckoutService) Checkout(ctx context.Context, session *Session) (*models.Order, error) {
	l := logging.FromContext(ctx).With("svc", "checkout", "username", session.User.Username)

	if session.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	total := session.Cart.Total()
	if total > session.User.Balance {
		l.Warn("checkout rejected", "total", total, "balance", session.User.Balance)
		return nil, fmt.Errorf("total %.2f exceeds balance %.2f: %w", total, session.User.Balance, ErrInsufficientFunds)
	}

	order := &models.Order{
		TxID:      "TXN-" + uuid.NewString(),
		Username:  session.User.Username,
		Total:     total,
		CreatedAt: time.Now().UTC(),
	}
	for _, item := range session.Cart.Items() {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	session.User.Balance -= total
	session.Cart.Drop()

	// The debit is committed at this point. Ledger and accounts-file write
	// failures are reported, not rolled back; memory and disk can disagree
	// after a crash here.
	if err := s.Orders.Record(ctx, order); err != nil {
		l.Error("ledger write failed", "tx_id", order.TxID, "error", err)
		return nil, err
	}
	if err := s.Users.Save(); err != nil {
		l.Error("accounts save failed", "tx_id", order.TxID, "error", err)
		return nil, err
	}

	l.Info("checkout complete", "tx_id", order.TxID, "total", total)
	return order, nil
}

// History lists the user's past orders, newest first.
func (s *CheckoutService) History(ctx context.Context, user *models.User) ([]models.Order, error) {
	return s.Orders.For(ctx, user.Username)
}
