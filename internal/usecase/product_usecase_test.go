package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func float64ptr(v float64) *float64 { return &v }

func TestProductUsecase_CreateProduct_MissingPrice(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProductRepoMock))

	_, err := uc.CreateProduct(context.Background(), usecase.ProductInput{Name: "Beans"})
	assertFieldError(t, err, "price")
}

func TestProductUsecase_CreateProduct_Success(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	want := model.Product{Name: "Beans", Price: 9.99}
	pRepo.On("Create", mock.Anything, want).Return(model.Product{ID: 3, Name: "Beans", Price: 9.99}, nil)

	id, err := uc.CreateProduct(context.Background(), usecase.ProductInput{
		Name:  "Beans",
		Price: float64ptr(9.99),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)
	pRepo.AssertExpectations(t)
}

// 商品に埋め込む注文は {id, date} だけ
func TestProductUsecase_GetProduct_NestedOrdersAreIDAndDateOnly(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	pRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Product{
		ID: 3, Name: "Beans", Price: 9.99,
		Orders: []model.Order{{ID: 7, Date: date, CustomerID: 1}},
	}, nil)

	out, err := uc.GetProduct(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, []usecase.OrderSummary{{ID: 7, Date: "2024-05-01"}}, out.Orders)
}

func TestProductUsecase_GetProduct_NotFound(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProduct(context.Background(), 999)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestProductUsecase_UpdateProduct_MissingName(t *testing.T) {
	uc := usecase.NewProductUsecase(new(ProductRepoMock))

	err := uc.UpdateProduct(context.Background(), 3, usecase.ProductInput{Price: float64ptr(1)})
	assertFieldError(t, err, "name")
}

// 注文に紐付いている商品の削除は409
func TestProductUsecase_DeleteProduct_ReferencedByOrder(t *testing.T) {
	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("Delete", mock.Anything, int64(3)).Return(repo.ErrForeignKey)

	err := uc.DeleteProduct(context.Background(), 3)
	assertHTTPStatus(t, err, http.StatusConflict)
}
