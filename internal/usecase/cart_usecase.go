package usecase

import (
	"context"
	"errors"
	"net/http"

	repo "app/internal/repository"
)

// CartUsecase は /cart の業務ロジック。
// 変更系は必ずカートの最新状態を丸ごと返す（クライアントの再取得を省く）。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

func NewCartUsecase(cartRepo repo.CartRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// カート明細（商品情報をjoinして返す）
type CartItemResponse struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Stock     int64   `json:"stock"`
	Quantity  int64   `json:"quantity"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

type UpdateCartInput struct {
	ProductID int64
	Quantity  int64
}

func (u *CartUsecase) Get(ctx context.Context, userID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	return u.buildCartResponse(ctx, userID)
}

// Add はカートに追加。同一商品は数量加算（上書きしない）。
func (u *CartUsecase) Add(ctx context.Context, userID int64, in AddCartInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "Invalid product id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "Invalid quantity")
	}

	// 商品の存在チェック
	_, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	if err := u.cartRepo.UpsertAdd(ctx, userID, in.ProductID, in.Quantity); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	return u.buildCartResponse(ctx, userID)
}

// SetQuantity は数量の置き換え。
// 0以下は削除扱い（冪等）。正の数は更新のみで、行が無ければ404。
func (u *CartUsecase) SetQuantity(ctx context.Context, userID int64, in UpdateCartInput) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "Invalid product id")
	}

	if in.Quantity <= 0 {
		if err := u.cartRepo.Delete(ctx, userID, in.ProductID); err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "Server error")
		}
		return u.buildCartResponse(ctx, userID)
	}

	if err := u.cartRepo.UpdateQuantity(ctx, userID, in.ProductID, in.Quantity); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return CartResponse{}, NewHTTPError(http.StatusNotFound, "Cart item not found")
		}
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	return u.buildCartResponse(ctx, userID)
}

// Remove は冪等削除。無い商品を消してもエラーにしない。
func (u *CartUsecase) Remove(ctx context.Context, userID int64, productID int64) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "Invalid product id")
	}

	if err := u.cartRepo.Delete(ctx, userID, productID); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	return u.buildCartResponse(ctx, userID)
}

// 明細と商品をまとめてCartResponseを作る。
func (u *CartUsecase) buildCartResponse(ctx context.Context, userID int64) (CartResponse, error) {
	items, err := u.cartRepo.ListByUserID(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	respItems := make([]CartItemResponse, 0, len(items))
	var total float64

	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			// cascade-deleteの谷間。表示から落とすだけにする。
			continue
		}
		if err != nil {
			return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "Server error")
		}

		respItems = append(respItems, CartItemResponse{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Image:     p.Image,
			Stock:     p.Stock,
			Quantity:  it.Quantity,
		})

		total += p.Price * float64(it.Quantity)
	}

	return CartResponse{Items: respItems, Total: total}, nil
}
