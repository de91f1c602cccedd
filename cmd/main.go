package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"family_shopping/internal/config"
	"family_shopping/internal/controller"
	"family_shopping/internal/metrics"
	"family_shopping/internal/middleware"
	"family_shopping/internal/model"
	"family_shopping/internal/repository"
	"family_shopping/internal/router"
	"family_shopping/internal/service"
	"family_shopping/internal/task"
	"family_shopping/pkg/database"
	"family_shopping/pkg/logger"
)

// @title Family Shopping API
// @version 1.0
// @description 家庭购物清单：门店、商品、菜谱、购物清单与门店覆盖率
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "family-shopping",
		Usage: "household shopping list server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file (default: ./config.yaml if present)",
				EnvVars: []string{"FS_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server",
				Action: runServe,
			},
			{
				Name:   "migrate",
				Usage:  "create or update tables and print row counts",
				Action: runMigrate,
			},
			{
				Name:  "purge",
				Usage: "delete purchased items older than --keep-days",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "keep-days", Usage: "days to keep purchased items (default: retention.keep_days)"},
				},
				Action: runPurge,
			},
			{
				Name:  "token",
				Usage: "mint a bearer token for a household member",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "member", Required: true, Usage: "member name stored in the token"},
				},
				Action: runToken,
			},
		},
	}
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Log         *zap.Logger
	Repos       *repository.UnitOfWork
	Services    *Services
	Controllers *router.Controllers
	Metrics     *metrics.Metrics
	Tasks       *task.TaskManager
}

// Services 服务集合
type Services struct {
	Store     *service.StoreService
	Product   *service.ProductService
	Recipe    *service.RecipeService
	Shopping  *service.ShoppingService
	Dashboard *service.DashboardService
}

// ==================== 初始化函数 ====================

// bootstrap 加载配置、日志、数据库
func bootstrap(c *cli.Context) (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := database.InitDB(database.Options{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.DSN,
		LogLevel: cfg.Database.LogLevel,
		Logger:   log,
	}, model.All()...)
	if err != nil {
		_ = log.Sync()
		return nil, nil, nil, err
	}
	return cfg, log, db, nil
}

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, log *zap.Logger, db *gorm.DB) (*Dependencies, error) {
	// -------- Repo 层 --------
	repos := repository.NewUnitOfWork(db)

	// -------- 指标 --------
	m := metrics.New()
	if err := m.RegisterActiveItems(repos.ShoppingItems); err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	// -------- 业务服务 --------
	services := &Services{
		Store:    service.NewStoreService(repos),
		Product:  service.NewProductService(repos),
		Recipe:   service.NewRecipeService(repos),
		Shopping: service.NewShoppingService(repos, m),
	}
	services.Dashboard = service.NewDashboardService(services.Product, services.Shopping)

	// -------- 定时任务 --------
	tasks := task.NewTaskManager(&task.TaskManagerDeps{
		Purger: services.Shopping,
		Logger: log,
	}, &task.TaskManagerConfig{
		RetentionEnabled:  cfg.Retention.Enabled,
		RetentionSchedule: cfg.Retention.Schedule,
		RetentionKeepDays: cfg.Retention.KeepDays,
	})

	return &Dependencies{
		DB:          db,
		Log:         log,
		Repos:       repos,
		Services:    services,
		Controllers: initControllers(services, repos, log),
		Metrics:     m,
		Tasks:       tasks,
	}, nil
}

// initControllers 初始化所有控制器
func initControllers(svc *Services, repos *repository.UnitOfWork, log *zap.Logger) *router.Controllers {
	return &router.Controllers{
		Store:     controller.NewStoreController(svc.Store, log),
		Product:   controller.NewProductController(svc.Product, svc.Recipe, log),
		Recipe:    controller.NewRecipeController(svc.Recipe, log),
		Shopping:  controller.NewShoppingController(svc.Shopping, log),
		Dashboard: controller.NewDashboardController(svc.Dashboard, log),
		Health:    controller.NewHealthController(repos),
	}
}

func jwtConfig(cfg *config.Config) *middleware.JWTConfig {
	if !cfg.Auth.Enabled() {
		return nil
	}
	return &middleware.JWTConfig{
		SecretKey: cfg.Auth.JWTSecret,
		TokenTTL:  cfg.Auth.TokenTTL,
		Issuer:    cfg.Auth.Issuer,
	}
}

// ==================== 命令 ====================

func runServe(c *cli.Context) error {
	cfg, log, db, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	defer func() { _ = database.Close(db) }()

	deps, err := initDependencies(cfg, log, db)
	if err != nil {
		return err
	}

	gin.SetMode(cfg.Server.Mode)
	auth := jwtConfig(cfg)
	if auth == nil {
		log.Warn("[Server] auth.jwt_secret 为空，API 不做认证")
	}
	r, err := router.SetupRouter(deps.Controllers, router.Options{
		Logger:  log,
		Metrics: deps.Metrics,
		Auth:    auth,
	})
	if err != nil {
		return err
	}

	if err := deps.Tasks.Start(); err != nil {
		return err
	}
	defer deps.Tasks.Stop()

	return startServer(r, cfg.Server, log)
}

func runMigrate(c *cli.Context) error {
	_, log, db, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	defer func() { _ = database.Close(db) }()

	stats, err := database.NewInitializer(db, log, model.All()...).Initialize(c.Context)
	if err != nil {
		return err
	}
	for _, s := range stats {
		fmt.Fprintf(c.App.Writer, "%-16s %d\n", s.TableName, s.Rows)
	}
	return nil
}

func runPurge(c *cli.Context) error {
	cfg, log, db, err := bootstrap(c)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	defer func() { _ = database.Close(db) }()

	keepDays := cfg.Retention.KeepDays
	if c.IsSet("keep-days") {
		keepDays = c.Int("keep-days")
	}
	if keepDays < 0 {
		return fmt.Errorf("--keep-days must be >= 0, got %d", keepDays)
	}

	tasks := task.NewTaskManager(&task.TaskManagerDeps{
		Purger: service.NewShoppingService(repository.NewUnitOfWork(db), nil),
		Logger: log,
	}, &task.TaskManagerConfig{
		RetentionEnabled:  true,
		RetentionSchedule: cfg.Retention.Schedule,
		RetentionKeepDays: keepDays,
	})
	n, err := tasks.TriggerRetention(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "removed %d purchased items\n", n)
	return nil
}

func runToken(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	auth := jwtConfig(cfg)
	if auth == nil {
		return errors.New("auth is disabled: set auth.jwt_secret (FS_AUTH_JWT_SECRET)")
	}
	token, err := middleware.GenerateToken(auth, c.String("member"))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, token)
	return nil
}

// ==================== 服务启动 ====================

// startServer 启动服务，收到 SIGINT/SIGTERM 后优雅关闭
func startServer(r *gin.Engine, cfg config.ServerConfig, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[Server] 服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	case sig := <-quit:
		log.Info("[Server] 正在关闭服务...", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("[Server] 服务已退出")
	return nil
}
