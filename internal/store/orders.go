package store

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/adewale/termshop/internal/models"
)

// Orders is the checkout ledger, a local sqlite database so past purchases
// survive restarts even though carts do not.
type Orders struct {
	DB *gorm.DB
}

func OpenOrders(path string) (*Orders, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open orders db: %w", err)
	}
	if err := db.AutoMigrate(&models.Order{}, &models.OrderItem{}); err != nil {
		return nil, fmt.Errorf("migrate orders db: %w", err)
	}
	return &Orders{DB: db}, nil
}

func (r *Orders) Record(ctx context.Context, order *models.Order) error {
	if err := r.DB.WithContext(ctx).Create(order).Error; err != nil {
		return fmt.Errorf("record order: %w", err)
	}
	return nil
}

// For returns a user's orders newest first, items preloaded.
func (r *Orders) For(ctx context.Context, username string) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("username = ?", username).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	return orders, nil
}

func (r *Orders) Close() error {
	sqlDB, err := r.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
