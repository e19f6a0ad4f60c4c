package main

import (
	"barkmart/internal/config"
	"barkmart/internal/domain/model"
	"barkmart/internal/handler"
	"barkmart/internal/infra/db"
	infraRepo "barkmart/internal/infra/repository"
	"barkmart/internal/infra/storage"
	"barkmart/internal/server"
	"barkmart/internal/usecase"
	"barkmart/internal/validator"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	//.envは無くても起動できる（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := newLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal("db connect failed", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Cart{},
		&model.CartItem{},
		&model.Address{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	addressRepo := infraRepo.NewAddressGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//画像保存先
	images, err := storage.NewLocalImageStorage(cfg.UploadDir)
	if err != nil {
		log.Fatal("upload dir setup failed", zap.Error(err))
	}

	//Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, userRepo, validator.NewAuthValidator(userRepo))
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, productRepo)
	checkoutUC := usecase.NewCheckoutUsecase(txManager, log)
	orderUC := usecase.NewOrderUsecase(txManager)
	addressUC := usecase.NewAddressUsecase(addressRepo)
	adminProductUC := usecase.NewAdminProductUsecase(productRepo, categoryRepo, images)
	adminOrderUC := usecase.NewAdminOrderUsecase(txManager, log)
	adminDashboardUC := usecase.NewAdminDashboardUsecase(productRepo, orderRepo, userRepo)

	//Handler生成
	handlers := server.Handlers{
		Product:        handler.NewProductHandler(productUC),
		Auth:           handler.NewAuthHandler(authUC),
		Cart:           handler.NewCartHandler(cartUC),
		Checkout:       handler.NewCheckoutHandler(checkoutUC),
		Order:          handler.NewOrderHandler(orderUC),
		Address:        handler.NewAddressHandler(addressUC),
		AdminDashboard: handler.NewAdminDashboardHandler(adminDashboardUC),
		AdminProduct:   handler.NewAdminProductHandler(adminProductUC),
		AdminOrder:     handler.NewAdminOrderHandler(adminOrderUC),
	}

	//Server起動
	e := server.New(cfg, log, handlers)

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := server.Start(e, cfg); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.GoEnv == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
