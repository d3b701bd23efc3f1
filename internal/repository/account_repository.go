package repository

import (
	"app/internal/domain/model"
	"context"
)

// 顧客アカウントの永続化だけを約束。
type AccountRepository interface {
	List(ctx context.Context) ([]model.CustomerAccount, error)
	FindByID(ctx context.Context, id int64) (model.CustomerAccount, error)

	Create(ctx context.Context, a model.CustomerAccount) (model.CustomerAccount, error)
	Update(ctx context.Context, a model.CustomerAccount) error
	Delete(ctx context.Context, id int64) error
}
