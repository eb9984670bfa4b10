package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MEDUSA_ADMIN_TOKEN", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("读取配置失败: %v", err)
	}
	if cfg.BackendURL != "http://localhost:9000" {
		t.Errorf("默认后端地址错误: %q", cfg.BackendURL)
	}
	if cfg.CSVPath != "medusa_seed_products_006.csv" {
		t.Errorf("默认 CSV 路径错误: %q", cfg.CSVPath)
	}
	if cfg.HTTPTimeout != 20*time.Second {
		t.Errorf("默认超时错误: %s", cfg.HTTPTimeout)
	}
	if cfg.HTTPRetryCount != 2 {
		t.Errorf("默认重试次数错误: %d", cfg.HTTPRetryCount)
	}
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("MEDUSA_ADMIN_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("缺少 MEDUSA_ADMIN_TOKEN 时应返回错误")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MEDUSA_ADMIN_TOKEN", "secret")
	t.Setenv("MEDUSA_BACKEND_URL", "https://shop.example.com")
	t.Setenv("SEED_CSV_PATH", "/data/products.csv")
	t.Setenv("HTTP_TIMEOUT", "45s")
	t.Setenv("HTTP_RETRY_COUNT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("读取配置失败: %v", err)
	}
	if cfg.BackendURL != "https://shop.example.com" {
		t.Errorf("后端地址未覆盖: %q", cfg.BackendURL)
	}
	if cfg.CSVPath != "/data/products.csv" {
		t.Errorf("CSV 路径未覆盖: %q", cfg.CSVPath)
	}
	if cfg.HTTPTimeout != 45*time.Second {
		t.Errorf("超时未覆盖: %s", cfg.HTTPTimeout)
	}
	if cfg.HTTPRetryCount != 5 {
		t.Errorf("重试次数未覆盖: %d", cfg.HTTPRetryCount)
	}
}

func TestLoad_InvalidNumbers(t *testing.T) {
	t.Setenv("MEDUSA_ADMIN_TOKEN", "secret")
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")
	t.Setenv("HTTP_RETRY_COUNT", "many")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("读取配置失败: %v", err)
	}
	if cfg.HTTPTimeout != 20*time.Second || cfg.HTTPRetryCount != 2 {
		t.Errorf("非法数值应回退默认值: %s / %d", cfg.HTTPTimeout, cfg.HTTPRetryCount)
	}
}
