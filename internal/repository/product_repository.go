package repository

import (
	"app/internal/domain/model"
	"context"
)

// 商品の永続化だけを約束。
// List / FindByID は関連注文（Orders）も読み込んで返す。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error
}
