package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config 运行配置，全部来自环境变量
type Config struct {
	Env            string // development / production
	BackendURL     string // Medusa 后端地址
	AdminToken     string // Admin API 访问令牌
	CSVPath        string // 商品导入 CSV 路径
	HTTPTimeout    time.Duration
	HTTPRetryCount int
}

// Load 读取配置
// 非生产环境先尝试加载 .env 文件，找不到不算错误
func Load() (*Config, error) {
	env := getEnv("APP_ENV", "development")
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("未找到 .env 文件，直接使用环境变量")
		}
	}

	adminToken := os.Getenv("MEDUSA_ADMIN_TOKEN")
	if adminToken == "" {
		return nil, fmt.Errorf("config: 必须设置 MEDUSA_ADMIN_TOKEN")
	}

	cfg := &Config{
		Env:            env,
		BackendURL:     getEnv("MEDUSA_BACKEND_URL", "http://localhost:9000"),
		AdminToken:     adminToken,
		CSVPath:        getEnv("SEED_CSV_PATH", "medusa_seed_products_006.csv"),
		HTTPTimeout:    getEnvDuration("HTTP_TIMEOUT", 20*time.Second),
		HTTPRetryCount: getEnvInt("HTTP_RETRY_COUNT", 2),
	}
	return cfg, nil
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("环境变量 %s 不是合法整数，使用默认值 %d", key, defaultValue)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("环境变量 %s 不是合法时长，使用默认值 %s", key, defaultValue)
	}
	return defaultValue
}
