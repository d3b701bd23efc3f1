package server

import (
	"net/http"
	"time"

	"app/internal/handler"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New はルーティングと共通ミドルウェアを組んだechoを返す。
func New(
	customerH *handler.CustomerHandler,
	accountH *handler.AccountHandler,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	RegisterRoutes(e, customerH, accountH, productH, orderH)

	return e
}

func RegisterRoutes(
	e *echo.Echo,
	customerH *handler.CustomerHandler,
	accountH *handler.AccountHandler,
	productH *handler.ProductHandler,
	orderH *handler.OrderHandler,
) {
	e.GET("/", home)

	customerH.RegisterRoutes(e)
	accountH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
	orderH.RegisterRoutes(e)
}

func home(c echo.Context) error {
	return c.String(http.StatusOK, "Home Page")
}

// Start はリクエスト全体のタイムアウトを設定してから待ち受ける。
// handlerは全てDB呼び出しでブロックするため、上限は転送層で持つ
func Start(addr string, e *echo.Echo) error {
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 30 * time.Second
	e.Server.IdleTimeout = 60 * time.Second

	return e.Start(addr)
}
