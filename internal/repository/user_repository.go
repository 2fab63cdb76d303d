package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

// email重複を統一
var ErrDuplicateEmail = errors.New("email already registered")

// ユーザーの保存・取得を約束
type UserRepository interface {
	// 新規ユーザー作成。email重複は ErrDuplicateEmail。
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する。見つからなければ (nil, nil)。
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// メールからユーザーを1件取得する。見つからなければ (nil, nil)。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}
