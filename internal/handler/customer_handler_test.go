package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/domain/model"
	"app/internal/handler"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) List(ctx context.Context) ([]model.Customer, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Customer)
	return items, args.Error(1)
}

func (m *CustomerRepoMock) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(model.Customer)
	return created, args.Error(1)
}

func (m *CustomerRepoMock) Update(ctx context.Context, c model.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CustomerRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newCustomerEcho(cRepo repo.CustomerRepository) *echo.Echo {
	e := echo.New()
	h := handler.NewCustomerHandler(usecase.NewCustomerUsecase(cRepo))
	h.RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCustomerHandler_Create_Returns201WithMessage(t *testing.T) {
	cRepo := new(CustomerRepoMock)
	cRepo.On("Create", mock.Anything, mock.Anything).Return(model.Customer{ID: 1}, nil)

	e := newCustomerEcho(cRepo)
	rec := doRequest(e, http.MethodPost, "/customers",
		`{"name":"Taro","email":"taro@example.com","phone":"0312345678"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var res handler.SuccessResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "New customer added successfully", res.Message)
}

// 必須フィールド欠落は400で、対象フィールド名がエラーに入る
func TestCustomerHandler_Create_MissingName(t *testing.T) {
	e := newCustomerEcho(new(CustomerRepoMock))
	rec := doRequest(e, http.MethodPost, "/customers",
		`{"email":"taro@example.com","phone":"0312345678"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var res handler.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res.Fields["name"], "name")
}

// bodyのidは無視される（IDは常にサーバー採番）
func TestCustomerHandler_Create_IgnoresClientID(t *testing.T) {
	cRepo := new(CustomerRepoMock)
	cRepo.On("Create", mock.Anything, model.Customer{
		Name: "Taro", Email: "taro@example.com", Phone: "0312345678",
	}).Return(model.Customer{ID: 1}, nil)

	e := newCustomerEcho(cRepo)
	rec := doRequest(e, http.MethodPost, "/customers",
		`{"id":42,"name":"Taro","email":"taro@example.com","phone":"0312345678"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	cRepo.AssertExpectations(t)
}

func TestCustomerHandler_Get_NotFound(t *testing.T) {
	cRepo := new(CustomerRepoMock)
	cRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Customer{}, repo.ErrNotFound)

	e := newCustomerEcho(cRepo)
	rec := doRequest(e, http.MethodGet, "/customers/999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCustomerHandler_Get_InvalidID(t *testing.T) {
	e := newCustomerEcho(new(CustomerRepoMock))
	rec := doRequest(e, http.MethodGet, "/customers/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerHandler_Delete_RestrictedIs409(t *testing.T) {
	cRepo := new(CustomerRepoMock)
	cRepo.On("Delete", mock.Anything, int64(1)).Return(repo.ErrForeignKey)

	e := newCustomerEcho(cRepo)
	rec := doRequest(e, http.MethodDelete, "/customers/1", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCustomerHandler_List_ReturnsArray(t *testing.T) {
	cRepo := new(CustomerRepoMock)
	cRepo.On("List", mock.Anything).Return([]model.Customer{
		{ID: 1, Name: "Taro", Email: "taro@example.com", Phone: "0312345678"},
	}, nil)

	e := newCustomerEcho(cRepo)
	rec := doRequest(e, http.MethodGet, "/customers", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var res []usecase.CustomerOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Len(t, res, 1)
	assert.Equal(t, "Taro", res[0].Name)
}
