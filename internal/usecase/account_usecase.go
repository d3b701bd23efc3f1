package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

type AccountUsecase struct {
	accountRepo repo.AccountRepository
	hasher      PasswordHasher
}

// DI
func NewAccountUsecase(accountRepo repo.AccountRepository, hasher PasswordHasher) *AccountUsecase {
	return &AccountUsecase{
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

// POST /accounts・PUT /accounts/:id の入力DTO。
// パスワードは平文で受けてハッシュだけを保存する
type AccountInput struct {
	Username   string
	Password   string
	CustomerID *int64
}

// パスワード（ハッシュ）はレスポンスに出さない
type AccountOutput struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	CustomerID int64  `json:"customer_id"`
}

func (in AccountInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Username) == "" {
		fields["username"] = "username is required"
	}
	if in.Password == "" {
		fields["password"] = "password is required"
	}
	if in.CustomerID == nil {
		fields["customer_id"] = "customer_id is required"
	}
	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}

func (u *AccountUsecase) ListAccounts(ctx context.Context) ([]AccountOutput, error) {
	accounts, err := u.accountRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]AccountOutput, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountOutput(a))
	}
	return out, nil
}

func (u *AccountUsecase) GetAccount(ctx context.Context, id int64) (AccountOutput, error) {
	if id <= 0 {
		return AccountOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	a, err := u.accountRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return AccountOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return AccountOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toAccountOutput(a), nil
}

func (u *AccountUsecase) CreateAccount(ctx context.Context, in AccountInput) (int64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	a, err := u.accountRepo.Create(ctx, model.CustomerAccount{
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: hash,
		CustomerID:   *in.CustomerID,
	})
	if err == repo.ErrConflict {
		return 0, NewHTTPError(http.StatusConflict, "username already exists")
	}
	if err == repo.ErrForeignKey {
		return 0, NewHTTPError(http.StatusBadRequest, "customer does not exist")
	}
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return a.ID, nil
}

// 全置換更新。パスワードも毎回ハッシュし直す
func (u *AccountUsecase) UpdateAccount(ctx context.Context, id int64, in AccountInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := in.validate(); err != nil {
		return err
	}

	hash, err := u.hasher.Hash(in.Password)
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	err = u.accountRepo.Update(ctx, model.CustomerAccount{
		ID:           id,
		Username:     strings.TrimSpace(in.Username),
		PasswordHash: hash,
		CustomerID:   *in.CustomerID,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err == repo.ErrConflict {
		return NewHTTPError(http.StatusConflict, "username already exists")
	}
	if err == repo.ErrForeignKey {
		return NewHTTPError(http.StatusBadRequest, "customer does not exist")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *AccountUsecase) DeleteAccount(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.accountRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func toAccountOutput(a model.CustomerAccount) AccountOutput {
	return AccountOutput{
		ID:         a.ID,
		Username:   a.Username,
		CustomerID: a.CustomerID,
	}
}
