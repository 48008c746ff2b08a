package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookshelf/docs" // swagger文档（swag生成）
	appbook "github.com/xiebiao/bookshelf/internal/application/book"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/metrics"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// @title           Bookshelf API
// @version         1.0
// @description     图书库存管理服务：图书的创建、查询、更新、删除与健康检查
// @BasePath        /

// main 主程序入口
// 说明：手动依赖注入（cmd/api/wire.go声明了等价的Wire注入器）
func main() {
	// 1. 加载.env（容器外开发时使用，文件不存在则忽略）
	if err := godotenv.Load(); err != nil {
		log.Println("未找到.env文件，使用系统环境变量")
	}

	// 2. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 3. 初始化日志
	zlog, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer zlog.Sync()
	response.SetLogger(zlog)

	zlog.Info("配置加载成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("database", fmt.Sprintf("%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
	)

	// 4. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		zlog.Fatal("初始化数据库失败", zap.Error(err))
	}
	zlog.Info("数据库连接成功")

	// 5. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler
	bookRepo := mysql.NewBookRepository(db)
	bookService := book.NewService(bookRepo)

	createBookUseCase := appbook.NewCreateBookUseCase(bookService)
	listBooksUseCase := appbook.NewListBooksUseCase(bookService)
	getBookUseCase := appbook.NewGetBookUseCase(bookService)
	updateBookUseCase := appbook.NewUpdateBookUseCase(bookService)
	deleteBookUseCase := appbook.NewDeleteBookUseCase(bookService)

	bookHandler := handler.NewBookHandler(
		createBookUseCase,
		listBooksUseCase,
		getBookUseCase,
		updateBookUseCase,
		deleteBookUseCase,
	)
	healthHandler := handler.NewHealthHandler(bookService)

	// 6. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Logger(zlog), gin.Recovery(), metrics.Middleware())

	// 7. 注册路由
	registerRoutes(r, bookHandler, healthHandler)

	// 8. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	zlog.Info("服务启动",
		zap.String("addr", addr),
		zap.String("swagger", fmt.Sprintf("http://localhost%s/swagger/index.html", addr)),
	)

	if err := r.Run(addr); err != nil {
		zlog.Fatal("启动服务失败", zap.Error(err))
	}
}

// registerRoutes 注册路由
func registerRoutes(r *gin.Engine, bookHandler *handler.BookHandler, healthHandler *handler.HealthHandler) {
	// 健康检查
	r.GET("/health", healthHandler.Health)

	// Prometheus指标
	r.GET("/metrics", metrics.Handler())

	// Swagger文档
	// 访问 /swagger/index.html 查看交互式文档，/swagger/doc.json 为机器可读格式
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 图书模块
	books := r.Group("/books")
	{
		books.POST("", bookHandler.CreateBook)
		books.GET("", bookHandler.ListBooks)
		books.GET("/:id", bookHandler.GetBook)
		books.PUT("/:id", bookHandler.UpdateBook)
		books.DELETE("/:id", bookHandler.DeleteBook)
	}
}
