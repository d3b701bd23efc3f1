package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/handler"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
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

func newProductEcho(pRepo *ProductRepoMock) *echo.Echo {
	e := echo.New()
	h := handler.NewProductHandler(usecase.NewProductUsecase(pRepo))
	h.RegisterRoutes(e)
	return e
}

func TestProductHandler_Create_Returns201WithMessage(t *testing.T) {
	pRepo := new(ProductRepoMock)
	pRepo.On("Create", mock.Anything, model.Product{Name: "Beans", Price: 9.99}).
		Return(model.Product{ID: 3, Name: "Beans", Price: 9.99}, nil)

	e := newProductEcho(pRepo)
	rec := doRequest(e, http.MethodPost, "/products", `{"name":"Beans","price":9.99}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var res handler.SuccessResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "New product added successfully", res.Message)
	pRepo.AssertExpectations(t)
}

// priceが数値で来なければ400
func TestProductHandler_Create_MissingPrice(t *testing.T) {
	e := newProductEcho(new(ProductRepoMock))
	rec := doRequest(e, http.MethodPost, "/products", `{"name":"Beans"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var res handler.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res.Fields["price"], "price")
}

// 取得時のordersは {id, date} だけ
func TestProductHandler_Get_NestedOrders(t *testing.T) {
	pRepo := new(ProductRepoMock)
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	pRepo.On("FindByID", mock.Anything, int64(3)).Return(model.Product{
		ID: 3, Name: "Beans", Price: 9.99,
		Orders: []model.Order{{ID: 7, Date: date, CustomerID: 1}},
	}, nil)

	e := newProductEcho(pRepo)
	rec := doRequest(e, http.MethodGet, "/products/3", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var res usecase.ProductOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []usecase.OrderSummary{{ID: 7, Date: "2024-05-01"}}, res.Orders)
}

func TestProductHandler_Delete_ReferencedIs409(t *testing.T) {
	pRepo := new(ProductRepoMock)
	pRepo.On("Delete", mock.Anything, int64(3)).Return(repo.ErrForeignKey)

	e := newProductEcho(pRepo)
	rec := doRequest(e, http.MethodDelete, "/products/3", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}
