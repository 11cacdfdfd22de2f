package service

import (
	"github.com/adewale/termshop/internal/cart"
	"github.com/adewale/termshop/internal/models"
)

// Session is the one live login: the current user and their cart. There is
// exactly one per process, and it is passed around explicitly rather than
// held in package state.
type Session struct {
	User *models.User
	Cart *cart.Cart
}

func (s *Session) LoggedIn() bool {
	return s.User != nil
}

// End clears the current user and returns every cart unit to stock.
func (s *Session) End() {
	if s.Cart != nil {
		s.Cart.Clear()
	}
	s.User = nil
}
