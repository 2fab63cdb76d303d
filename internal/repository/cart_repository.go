package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)
	// 同一商品はプラス（上書きではない）
	UpsertAdd(ctx context.Context, userID int64, productID int64, addQty int64) error
	// 更新のみ。対象行が無ければ ErrNotFound。
	UpdateQuantity(ctx context.Context, userID int64, productID int64, qty int64) error
	// 冪等削除。行が無くてもエラーにしない。
	Delete(ctx context.Context, userID int64, productID int64) error
	// ユーザーのカートを全クリア
	DeleteByUserID(ctx context.Context, userID int64) error
}
