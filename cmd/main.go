package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"medusa_seed_v1_202608/internal/config"
	"medusa_seed_v1_202608/internal/service"
	"medusa_seed_v1_202608/pkg/logger"
	"medusa_seed_v1_202608/pkg/medusa"
)

func main() {
	app := &cli.App{
		Name:  "medusa-seed",
		Usage: "Medusa 店铺初始化与清库工具",
		Commands: []*cli.Command{
			{
				Name:  "seed",
				Usage: "初始化店铺基础数据并导入商品",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "csv",
						Usage: "商品导入 CSV 路径，覆盖 SEED_CSV_PATH",
					},
				},
				Action: runSeed,
			},
			{
				Name:   "reset",
				Usage:  "清空商品、分类、区域、运费模板与销售渠道",
				Action: runReset,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("执行失败: %v", err)
	}
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger
	Client *medusa.Client
}

// initDependencies 初始化所有依赖
func initDependencies() (*Dependencies, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		return nil, err
	}

	client := medusa.NewClient(medusa.Config{
		BaseURL:    cfg.BackendURL,
		AdminToken: cfg.AdminToken,
		Timeout:    cfg.HTTPTimeout,
		RetryCount: cfg.HTTPRetryCount,
	}, zapLogger)

	return &Dependencies{
		Config: cfg,
		Logger: zapLogger,
		Client: client,
	}, nil
}

// ==================== 命令入口 ====================

func runSeed(c *cli.Context) error {
	deps, err := initDependencies()
	if err != nil {
		return err
	}
	defer deps.Logger.Sync() //nolint:errcheck

	csvPath := deps.Config.CSVPath
	if path := c.String("csv"); path != "" {
		csvPath = path
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := service.NewSeedService(deps.Client, csvPath, deps.Logger)
	if err := svc.Run(ctx); err != nil {
		deps.Logger.Error("初始化失败", zap.Error(err))
		return err
	}
	deps.Logger.Info("初始化全部完成")
	return nil
}

func runReset(c *cli.Context) error {
	deps, err := initDependencies()
	if err != nil {
		return err
	}
	defer deps.Logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc := service.NewResetService(deps.Client, deps.Logger)
	if err := svc.Run(ctx); err != nil {
		deps.Logger.Error("清库失败", zap.Error(err))
		return err
	}
	deps.Logger.Info("清库全部完成")
	return nil
}
