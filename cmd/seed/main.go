package main

import (
	"github.com/foodie-app/internal/config"
	"github.com/foodie-app/internal/logger"
	"github.com/foodie-app/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 初始化默认菜单（空表时写入，可重复执行）
	if err := models.SeedDefaultMenu(); err != nil {
		stdLog.Fatalf("Failed to seed menu: %v", err)
	}

	var count int64
	if err := models.DB.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		stdLog.Fatalf("Failed to count menu items: %v", err)
	}
	stdLog.Printf("Seeding complete, menu items: %d", count)
}
