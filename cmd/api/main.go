package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	apporder "github.com/xiebiao/petstore/internal/application/order"
	appproduct "github.com/xiebiao/petstore/internal/application/product"
	appuser "github.com/xiebiao/petstore/internal/application/user"
	"github.com/xiebiao/petstore/internal/domain/product"
	"github.com/xiebiao/petstore/internal/domain/user"
	"github.com/xiebiao/petstore/internal/infrastructure/config"
	"github.com/xiebiao/petstore/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/petstore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/petstore/internal/interface/http/handler"
	"github.com/xiebiao/petstore/internal/interface/http/middleware"
	"github.com/xiebiao/petstore/pkg/jwt"
	"github.com/xiebiao/petstore/pkg/metrics"
	"github.com/xiebiao/petstore/pkg/mq"
	"github.com/xiebiao/petstore/pkg/response"
)

// main 主程序入口
// 手动依赖注入,Wire版本见wire.go(wire gen ./cmd/api)
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化Prometheus指标
	metrics.InitMetrics()

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 初始化MQ(可选,配置关闭时事件发布降级为no-op)
	var publisher apporder.EventPublisher
	if cfg.MQ.Enabled {
		p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
		if err != nil {
			log.Fatalf("初始化MQ失败: %v", err)
		}
		defer p.Close()
		publisher = p
		fmt.Println("✓ MQ连接成功")
	}

	// 6. 依赖注入(手动组装)
	// Repository ← Service/Ledger ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	productRepo := mysql.NewProductRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	orderCache := redis.NewOrderCache(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	stockLedger := product.NewLedger(productRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore)
	createProductUseCase := appproduct.NewCreateProductUseCase(productRepo)
	listProductsUseCase := appproduct.NewListProductsUseCase(productRepo)
	getProductUseCase := appproduct.NewGetProductUseCase(productRepo)
	placeOrderUseCase := apporder.NewPlaceOrderUseCase(userRepo, orderRepo, stockLedger, txManager, publisher)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo, orderCache)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	updateOrderUseCase := apporder.NewUpdateOrderUseCase(orderRepo, orderCache)
	deleteOrderUseCase := apporder.NewDeleteOrderUseCase(orderRepo, orderCache)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase)
	productHandler := handler.NewProductHandler(createProductUseCase, listProductsUseCase, getProductUseCase)
	orderHandler := handler.NewOrderHandler(
		placeOrderUseCase,
		getOrderUseCase,
		listOrdersUseCase,
		updateOrderUseCase,
		deleteOrderUseCase,
	)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.Metrics())

	// 8. 注册路由
	registerRoutes(r, userHandler, productHandler, orderHandler, authMiddleware)

	// 9. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   指标采集: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	// 生产环境建议禁用或添加访问控制
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
		}

		// 商品模块
		products := v1.Group("/products")
		{
			// 查询接口公开,上架需要登录
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", authMiddleware.RequireAuth(), productHandler.CreateProduct)
		}

		// 订单模块(全部需要登录)
		orders := v1.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			orders.POST("", orderHandler.PlaceOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PATCH("/:id", orderHandler.UpdateOrder)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}
	}
}
