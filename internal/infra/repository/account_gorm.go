package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type AccountGormRepository struct {
	db *gorm.DB
}

// DI
func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) List(ctx context.Context) ([]model.CustomerAccount, error) {
	var accounts []model.CustomerAccount
	if err := r.db.WithContext(ctx).Order("id asc").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *AccountGormRepository) FindByID(ctx context.Context, id int64) (model.CustomerAccount, error) {
	var a model.CustomerAccount
	err := r.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CustomerAccount{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CustomerAccount{}, err
	}
	return a, nil
}

// username重複は ErrConflict、存在しないcustomer_idは ErrForeignKey
func (r *AccountGormRepository) Create(ctx context.Context, a model.CustomerAccount) (model.CustomerAccount, error) {
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return model.CustomerAccount{}, translatePgError(err)
	}
	return a, nil
}

func (r *AccountGormRepository) Update(ctx context.Context, a model.CustomerAccount) error {
	res := r.db.WithContext(ctx).Model(&model.CustomerAccount{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
		"username":      a.Username,
		"password_hash": a.PasswordHash,
		"customer_id":   a.CustomerID,
	})
	if res.Error != nil {
		return translatePgError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *AccountGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.CustomerAccount{}, id)
	if res.Error != nil {
		return translatePgError(res.Error)
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
