package main

import (
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
)

func main() {
	// .envは任意（本番は環境変数を直接渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}

	// テーブルが無ければ作る（Order_Productはmany2manyタグから生成）
	if err := gormDB.AutoMigrate(
		&model.Customer{},
		&model.CustomerAccount{},
		&model.Product{},
		&model.Order{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	customerRepo := infraRepo.NewCustomerGormRepository(gormDB)
	accountRepo := infraRepo.NewAccountGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)

	//bcrypt（アカウント作成・更新でHash）
	hasher := usecase.NewBcryptPasswordHasher(12)

	//Usecase生成
	customerUC := usecase.NewCustomerUsecase(customerRepo)
	accountUC := usecase.NewAccountUsecase(accountRepo, hasher)
	productUC := usecase.NewProductUsecase(productRepo)
	orderUC := usecase.NewOrderUsecase(orderRepo)

	//Handler生成
	customerH := handler.NewCustomerHandler(customerUC)
	accountH := handler.NewAccountHandler(accountUC)
	productH := handler.NewProductHandler(productUC)
	orderH := handler.NewOrderHandler(orderUC)

	//Server起動
	e := server.New(customerH, accountH, productH, orderH)
	if err := server.Start(":"+cfg.Port, e); err != nil {
		panic(err)
	}
}
