package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type PlaceOrderItem struct {
	ProductID int64
	Quantity  int64
}

type PlaceOrderInput struct {
	Items []PlaceOrderItem
}

type OrderItemOutput struct {
	ProductID int64   `json:"product_id"`
	Quantity  int64   `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderOutput struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Total     float64           `json:"total"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []OrderItemOutput `json:"items"`
}

// PlaceOrder はカートのスナップショットを1本のトランザクションで注文に変える。
// 単価はリクエストではなくカタログから取り直す。途中で失敗したら全部rollback。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (int64, error) {
	if userID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	if len(in.Items) == 0 {
		return 0, NewHTTPError(http.StatusBadRequest, "Cart is empty")
	}
	for _, it := range in.Items {
		if it.ProductID <= 0 || it.Quantity < 1 {
			return 0, NewHTTPError(http.StatusBadRequest, "Invalid order items")
		}
	}

	// クライアント切断で注文が中途半端に止まらないように、
	// トランザクションはリクエストのキャンセルから切り離す。
	ctx = context.WithoutCancel(ctx)

	var orderID int64

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// 単価はDBの現在価格をスナップショットする
		orderItems := make([]model.OrderItem, 0, len(in.Items))
		var total float64

		for _, it := range in.Items {
			p, err := r.Products().FindByID(ctx, it.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "Product not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "Server error")
			}

			orderItems = append(orderItems, model.OrderItem{
				ProductID: p.ID,
				Quantity:  it.Quantity,
				Price:     p.Price,
			})
			total += p.Price * float64(it.Quantity)
		}

		id, err := r.Orders().Create(ctx, model.Order{
			UserID: userID,
			Total:  total,
			Status: model.OrderStatusPending,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Server error")
		}

		if err := r.OrderItems().CreateBulk(ctx, id, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Server error")
		}

		// 仕様どおりカートは全クリア（注文した分だけではない）
		if err := r.Carts().DeleteByUserID(ctx, userID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Server error")
		}

		orderID = id
		return nil
	})

	if err != nil {
		return 0, err
	}
	return orderID, nil
}

// ListOrders はユーザーの注文を明細付きで返す。
// 明細は order_id でまとめて取り、メモリ上でグルーピングする。
func (u *OrderUsecase) ListOrders(ctx context.Context, userID int64) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByUserID(ctx, userID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Server error")
		}

		ids := make([]int64, 0, len(orders))
		for _, o := range orders {
			ids = append(ids, o.ID)
		}

		items, err := r.OrderItems().ListByOrderIDs(ctx, ids)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "Server error")
		}

		byOrder := make(map[int64][]OrderItemOutput, len(orders))
		for _, it := range items {
			byOrder[it.OrderID] = append(byOrder[it.OrderID], OrderItemOutput{
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.Price,
			})
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			outItems := byOrder[o.ID]
			if outItems == nil {
				outItems = []OrderItemOutput{}
			}
			outs = append(outs, OrderOutput{
				ID:        o.ID,
				UserID:    o.UserID,
				Total:     o.Total,
				Status:    string(o.Status),
				CreatedAt: o.CreatedAt,
				Items:     outItems,
			})
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}
