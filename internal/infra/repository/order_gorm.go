package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// 全注文を関連商品つきで返す
func (r *OrderGormRepository) List(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Preload("Products").Order("id asc").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// IDで注文を取得（関連商品つき）
func (r *OrderGormRepository) FindByID(ctx context.Context, id int64) (model.Order, error) {
	var o model.Order
	err := r.db.WithContext(ctx).Preload("Products").First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// 注文の作成。商品の紐付けまで1トランザクションで行う
func (r *OrderGormRepository) Create(ctx context.Context, o model.Order, productIDs []int64) (model.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return translatePgError(err)
		}

		if len(productIDs) == 0 {
			return nil
		}

		products, err := findProducts(tx, productIDs)
		if err != nil {
			return err
		}
		return translatePgError(tx.Model(&o).Association("Products").Append(products))
	})
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// 注文の更新。date/customer_idを置換し、関連集合を丸ごと差し替える
func (r *OrderGormRepository) Update(ctx context.Context, o model.Order, productIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Order{}).Where("id = ?", o.ID).Updates(map[string]interface{}{
			"date":        o.Date,
			"customer_id": o.CustomerID,
		})
		if res.Error != nil {
			return translatePgError(res.Error)
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}

		target := model.Order{ID: o.ID}
		if len(productIDs) == 0 {
			return translatePgError(tx.Model(&target).Association("Products").Clear())
		}

		products, err := findProducts(tx, productIDs)
		if err != nil {
			return err
		}
		return translatePgError(tx.Model(&target).Association("Products").Replace(products))
	})
}

// 注文の削除。Order_Productの行も同じトランザクションで消す
func (r *OrderGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o model.Order
		if err := tx.First(&o, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		if err := tx.Model(&o).Association("Products").Clear(); err != nil {
			return translatePgError(err)
		}

		res := tx.Delete(&model.Order{}, id)
		if res.Error != nil {
			return translatePgError(res.Error)
		}
		if res.RowsAffected == 0 {
			return repo.ErrNotFound
		}
		return nil
	})
}

// productIDsの全件が存在することを確認して返す。
// 欠けていれば（DBに任せる前に）ErrForeignKey として扱う
func findProducts(tx *gorm.DB, productIDs []int64) ([]model.Product, error) {
	var products []model.Product
	if err := tx.Find(&products, productIDs).Error; err != nil {
		return nil, err
	}
	if len(products) != len(uniqueIDs(productIDs)) {
		return nil, repo.ErrForeignKey
	}
	return products, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
