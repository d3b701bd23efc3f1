package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 一意制約違反（username重複など）
var ErrConflict = errors.New("conflict")

// 外部キー違反（存在しない行を参照、または参照されている行を削除）
var ErrForeignKey = errors.New("foreign key violation")

// 顧客の永続化（保存・取得）だけを約束。
type CustomerRepository interface {
	List(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)

	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error
	Delete(ctx context.Context, id int64) error
}
