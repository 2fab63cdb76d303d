package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	"app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(ctx context.Context, name string, email string, password string) error
	ValidateLogin(ctx context.Context, email string, password string) error
}

// トークン発行の約束。実装はcmd/api側（HS256）。
type TokenIssuer interface {
	Issue(userID int64, email string) (string, error)
}

type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

type AuthUsecase struct {
	users      repository.UserRepository
	validator  AuthValidator
	issuer     TokenIssuer
	bcryptCost int
}

func NewAuthUsecase(
	users repository.UserRepository,
	validator AuthValidator,
	issuer TokenIssuer,
	bcryptCost int,
) *AuthUsecase {
	return &AuthUsecase{
		users:      users,
		validator:  validator,
		issuer:     issuer,
		bcryptCost: bcryptCost,
	}
}

// Register はユーザーを新規作成してIDを返す。
// 生パスワードは保存もログもしない。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (int64, error) {
	// 入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(ctx, in.Name, in.Email, in.Password); err != nil {
		return 0, err
	}

	// パスワードは必ずハッシュ化して保存（平文保存しない）
	pwHash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	user := &model.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(pwHash),
	}

	// validatorの重複チェックをすり抜けた同時登録はunique indexで弾く
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return 0, NewHTTPError(http.StatusConflict, "User already exists")
		}
		return 0, NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	return user.ID, nil
}

// Login は認証してトークンを返す。
// emailが未知でもパスワード違いでも同じメッセージ（列挙対策）。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	if err := u.validator.ValidateLogin(ctx, in.Email, in.Password); err != nil {
		return nil, err
	}

	user, err := u.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Server error")
	}
	if user == nil {
		return nil, NewHTTPError(http.StatusBadRequest, "Invalid credentials")
	}

	// パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "Invalid credentials")
	}

	token, err := u.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Server error")
	}

	return &LoginOutput{
		Token: token,
		User:  toUserDTO(user),
	}, nil
}

// Me はトークンのuser_idを現在のユーザーに解決する。
// トークンが有効でもユーザーが消えていれば401。
func (u *AuthUsecase) Me(ctx context.Context, userID int64) (*UserDTO, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "Server error")
	}
	if user == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "User not found")
	}

	dto := toUserDTO(user)
	return &dto, nil
}

// model.UserをAPI返却用DTOに変換。
func toUserDTO(u *model.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
