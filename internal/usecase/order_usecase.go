package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderUsecase struct {
	orderRepo repo.OrderRepository
}

// DI
func NewOrderUsecase(orderRepo repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo}
}

// POST /orders・PUT /orders/:id の入力DTO。
// Dateは "YYYY-MM-DD"。ProductIDsは紐付ける商品の集合で、
// 作成時は追加、更新時は丸ごと差し替え（空なら全解除）。
type OrderInput struct {
	Date       string
	CustomerID *int64
	ProductIDs []int64
}

// 注文に埋め込む商品は {id, name, price} に制限する（深さ打ち切り）
type ProductSummary struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OrderOutput struct {
	ID         int64            `json:"id"`
	Date       string           `json:"date"`
	CustomerID int64            `json:"customer_id"`
	Products   []ProductSummary `json:"products"`
}

// 必須チェックと日付形式のみ
func (in OrderInput) validate() (time.Time, error) {
	fields := map[string]string{}

	var date time.Time
	if strings.TrimSpace(in.Date) == "" {
		fields["date"] = "date is required"
	} else {
		d, err := time.Parse(time.DateOnly, strings.TrimSpace(in.Date))
		if err != nil {
			fields["date"] = "date must be YYYY-MM-DD"
		}
		date = d
	}

	if in.CustomerID == nil {
		fields["customer_id"] = "customer_id is required"
	}

	if len(fields) > 0 {
		return time.Time{}, NewValidationError(fields)
	}
	return date, nil
}

func (u *OrderUsecase) ListOrders(ctx context.Context) ([]OrderOutput, error) {
	orders, err := u.orderRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderOutput(o))
	}
	return out, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, id int64) (OrderOutput, error) {
	if id <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orderRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return OrderOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toOrderOutput(o), nil
}

// 作成時も商品を受け付けて同じトランザクションで紐付ける
func (u *OrderUsecase) CreateOrder(ctx context.Context, in OrderInput) (int64, error) {
	date, err := in.validate()
	if err != nil {
		return 0, err
	}

	o, err := u.orderRepo.Create(ctx, model.Order{
		Date:       date,
		CustomerID: *in.CustomerID,
	}, in.ProductIDs)
	if err == repo.ErrForeignKey {
		return 0, NewHTTPError(http.StatusBadRequest, "referenced customer or product does not exist")
	}
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o.ID, nil
}

func (u *OrderUsecase) UpdateOrder(ctx context.Context, id int64, in OrderInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	date, err := in.validate()
	if err != nil {
		return err
	}

	err = u.orderRepo.Update(ctx, model.Order{
		ID:         id,
		Date:       date,
		CustomerID: *in.CustomerID,
	}, in.ProductIDs)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err == repo.ErrForeignKey {
		return NewHTTPError(http.StatusBadRequest, "referenced customer or product does not exist")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 削除はOrder_Productの行ごと消える（repo側で同一トランザクション）
func (u *OrderUsecase) DeleteOrder(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.orderRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func toOrderOutput(o model.Order) OrderOutput {
	products := make([]ProductSummary, 0, len(o.Products))
	for _, p := range o.Products {
		products = append(products, ProductSummary{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
		})
	}
	return OrderOutput{
		ID:         o.ID,
		Date:       o.Date.Format(time.DateOnly),
		CustomerID: o.CustomerID,
		Products:   products,
	}
}
