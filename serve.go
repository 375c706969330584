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

	"MindEaseGo/config"
	"MindEaseGo/controllers"
	"MindEaseGo/middleware"
	"MindEaseGo/routes"
	"MindEaseGo/services"
	"MindEaseGo/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func runServe(cmd *cobra.Command, args []string) error {
	// 加载配置
	conf, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("无法加载配置: %w", err)
	}

	// 初始化日志
	if err := config.InitLogger(conf.LogDir); err != nil {
		return fmt.Errorf("无法初始化日志: %w", err)
	}
	defer config.Logger.Sync()

	utils.SetJWTSecret(conf.JWTSecret)

	// 初始化数据库
	if err := config.InitDB(conf); err != nil {
		return fmt.Errorf("无法初始化数据库: %w", err)
	}

	// 初始化Redis
	if err := config.InitRedis(conf); err != nil {
		return fmt.Errorf("无法初始化Redis: %w", err)
	}

	// 初始化LLM客户端，失败时退回模拟模式
	provider, err := services.NewLLMProvider(conf)
	if err != nil {
		config.Logger.Errorw("无法初始化LLM客户端，使用模拟模式", "error", err, "provider", conf.LLMProvider)
	}
	if provider == nil {
		config.Logger.Infow("AI陪伴运行在模拟模式", "provider", conf.LLMProvider)
	} else {
		config.Logger.Infow("AI陪伴运行在在线模式", "provider", provider.Name())
	}

	store := services.NewGormStore(config.DB)
	usage := services.NewUsageTracker(config.RedisClient, store)
	companion := services.NewCompanionService(
		provider,
		services.NewMockEngine(nil),
		services.NewMoodRecorder(store),
		usage,
		services.CompanionOptions{
			Timeout:   conf.LLMTimeout(),
			MockDelay: conf.MockReplyDelay(),
		},
	)
	insights := services.NewInsightsService(store, store, store, companion)

	// 设置Gin模式
	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	middleware.SetupMiddleware(r, conf.CORSOrigin)
	routes.RegisterRoutes(r, routes.Handlers{
		AI:          controllers.NewAIController(companion, usage),
		Moods:       controllers.NewMoodController(store),
		ERP:         controllers.NewERPController(store),
		Compulsions: controllers.NewCompulsionController(store),
		Analytics:   controllers.NewAnalyticsController(insights),
	})

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		config.Logger.Infow("启动服务器", "port", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// 等待中断信号以实现优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("服务器启动失败: %w", err)
	case <-quit:
	}
	config.Logger.Info("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("服务器关闭失败: %w", err)
	}

	if sqlDB, err := config.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = config.RedisClient.Close()

	config.Logger.Info("服务器已关闭")
	return nil
}
