package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type CustomerUsecase struct {
	customerRepo repo.CustomerRepository
}

// DI
func NewCustomerUsecase(customerRepo repo.CustomerRepository) *CustomerUsecase {
	return &CustomerUsecase{customerRepo: customerRepo}
}

// POST /customers・PUT /customers/:id の入力DTO
type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

type CustomerOutput struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// name/email/phoneの必須チェックのみ（業務ルールなし）
func (in CustomerInput) validate() error {
	fields := map[string]string{}
	if strings.TrimSpace(in.Name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(in.Email) == "" {
		fields["email"] = "email is required"
	}
	if strings.TrimSpace(in.Phone) == "" {
		fields["phone"] = "phone is required"
	}
	if len(fields) > 0 {
		return NewValidationError(fields)
	}
	return nil
}

func (u *CustomerUsecase) ListCustomers(ctx context.Context) ([]CustomerOutput, error) {
	customers, err := u.customerRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]CustomerOutput, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerOutput(c))
	}
	return out, nil
}

func (u *CustomerUsecase) GetCustomer(ctx context.Context, id int64) (CustomerOutput, error) {
	if id <= 0 {
		return CustomerOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	c, err := u.customerRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return CustomerOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return CustomerOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return toCustomerOutput(c), nil
}

func (u *CustomerUsecase) CreateCustomer(ctx context.Context, in CustomerInput) (int64, error) {
	if err := in.validate(); err != nil {
		return 0, err
	}

	c, err := u.customerRepo.Create(ctx, model.Customer{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return c.ID, nil
}

func (u *CustomerUsecase) UpdateCustomer(ctx context.Context, id int64, in CustomerInput) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := in.validate(); err != nil {
		return err
	}

	err := u.customerRepo.Update(ctx, model.Customer{
		ID:    id,
		Name:  strings.TrimSpace(in.Name),
		Email: strings.TrimSpace(in.Email),
		Phone: strings.TrimSpace(in.Phone),
	})
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 削除は制限方式：注文やアカウントが残っている顧客は409
func (u *CustomerUsecase) DeleteCustomer(ctx context.Context, id int64) error {
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	err := u.customerRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err == repo.ErrForeignKey {
		return NewHTTPError(http.StatusConflict, "customer has related records")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func toCustomerOutput(c model.Customer) CustomerOutput {
	return CustomerOutput{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		Phone: c.Phone,
	}
}
