package app

import (
	"fmt"
	"testing"
	"time"

	"github.com/foodie-app/internal/config"
	"github.com/foodie-app/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAppTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:app_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	models.DB = db
}

func TestBuildRequiresConfig(t *testing.T) {
	if _, err := Build(Options{}); err == nil {
		t.Fatal("expected error for nil config")
	}
}

func TestBuildAPIMode(t *testing.T) {
	setupAppTestDB(t)
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "8080", Mode: "debug"},
	}

	a, err := Build(Options{Config: cfg, Mode: ModeAPI})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if a.HTTPAddr() != "127.0.0.1:8080" {
		t.Fatalf("unexpected http addr %q", a.HTTPAddr())
	}
	if a.WorkerEnabled() {
		t.Fatal("api mode should not assemble a worker")
	}
}

func TestBuildWorkerModeNeedsQueue(t *testing.T) {
	setupAppTestDB(t)
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "8080", Mode: "debug"},
	}

	// 队列未启用时 worker 模式无事可做
	if _, err := Build(Options{Config: cfg, Mode: ModeWorker}); err == nil {
		t.Fatal("expected error for worker mode without queue")
	}
}
