package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

// POST /products・PUT /products/:id の入力DTO。
// Priceは「数値が来たか」を見るためポインタで受ける
type ProductInput struct {
	Name  string
	Price *float64
}

// 商品に紐付く注文は {id, date} だけに制限する。
// Order側が商品を、Product側が注文を互いに埋め込むと無限に
// 展開されるため、深さはここで打ち切る
type OrderSummary struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
}

type ProductOutput struct {
	ID     int64          `json:"id"`
	Name   string         `json:"name"`
	Price  float64        `json:"price"`
	Orders []OrderSummary `json:"orders"`
}

func (in ProductInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "name is required"
	}
	if in.Price == nil {
		fields["price"] = "price is required"
	}
	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]ProductOutput, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]ProductOutput, 0, len(products))
	for _, p := range products {
		out = append(out, toProductOutput(p))
	}
	return out, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, id int64) (ProductOutput, error) {
	if id <= 0 {
		return ProductOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return ProductOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toProductOutput(p), nil
}

func (u *ProductUsecase) CreateProduct(ctx context.Context, in ProductInput) (int64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}

	p, err := u.productRepo.Create(ctx, model.Product{
		Name:  strings.TrimSpace(in.Name),
		Price: *in.Price,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p.ID, nil
}

func (u *ProductUsecase) UpdateProduct(ctx context.Context, id int64, in ProductInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := in.validate(); err != nil {
		return err
	}

	err := u.productRepo.Update(ctx, model.Product{
		ID:    id,
		Name:  strings.TrimSpace(in.Name),
		Price: *in.Price,
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 注文に紐付いたままの商品は消せない（409）
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.productRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err == repo.ErrForeignKey {
		return NewHTTPError(http.StatusConflict, "product is referenced by an order")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func toProductOutput(p model.Product) ProductOutput {
	orders := make([]OrderSummary, 0, len(p.Orders))
	for _, o := range p.Orders {
		orders = append(orders, OrderSummary{
			ID:   o.ID,
			Date: o.Date.Format(time.DateOnly),
		})
	}
	return ProductOutput{
		ID:     p.ID,
		Name:   p.Name,
		Price:  p.Price,
		Orders: orders,
	}
}
