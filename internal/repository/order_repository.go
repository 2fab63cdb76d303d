package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	// 新しい順
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
}
