package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /accounts のAPI
type AccountHandler struct {
	uc *usecase.AccountUsecase
}

// DI
func NewAccountHandler(uc *usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// customer_idは「送られて来たか」を見るためポインタで受ける
type AccountRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	CustomerID *int64 `json:"customer_id"`
}

func (h *AccountHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/accounts", h.list)
	e.GET("/accounts/:id", h.detail)
	e.POST("/accounts", h.create)
	e.PUT("/accounts/:id", h.update)
	e.DELETE("/accounts/:id", h.delete)
}

func (h *AccountHandler) list(c echo.Context) error {
	out, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AccountHandler) detail(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetAccount(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AccountHandler) create(c echo.Context) error {
	var req AccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	_, err := h.uc.CreateAccount(c.Request().Context(), usecase.AccountInput{
		Username:   req.Username,
		Password:   req.Password,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Message: "New account added successfully"})
}

func (h *AccountHandler) update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req AccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err = h.uc.UpdateAccount(c.Request().Context(), id, usecase.AccountInput{
		Username:   req.Username,
		Password:   req.Password,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Account details updated successfully"})
}

func (h *AccountHandler) delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Account removed successfully"})
}
