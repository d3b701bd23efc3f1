package repository

import (
	"app/internal/domain/model"
	"context"
)

// 注文の永続化だけを約束。
// List / FindByID は関連商品（Products）も読み込んで返す。
// productIDsは Order_Product の関連集合。Create は追加、Update は
// 丸ごと差し替え（空なら全解除）。存在しない商品IDは ErrForeignKey。
type OrderRepository interface {
	List(ctx context.Context) ([]model.Order, error)
	FindByID(ctx context.Context, id int64) (model.Order, error)

	Create(ctx context.Context, o model.Order, productIDs []int64) (model.Order, error)
	Update(ctx context.Context, o model.Order, productIDs []int64) error
	Delete(ctx context.Context, id int64) error
}
