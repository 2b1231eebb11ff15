// Package main 是应用程序的入口点。
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotline-faq-go/internal/config"
	"hotline-faq-go/internal/handler"
	"hotline-faq-go/internal/middleware"
	"hotline-faq-go/internal/repository"
	"hotline-faq-go/internal/service"
	"hotline-faq-go/pkg/database"
	"hotline-faq-go/pkg/log"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 初始化配置
	config.Init("./configs/config.yaml")
	cfg := config.Conf

	// 2. 初始化日志记录器
	log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath)
	defer log.Sync() // 确保在程序退出时刷新所有缓冲的日志条目
	log.Info("日志记录器初始化成功")

	// 3. 初始化数据库和 Redis
	database.InitMySQL(cfg.Database.MySQL.DSN)
	database.InitRedis(cfg.Database.Redis.Addr, cfg.Database.Redis.Password, cfg.Database.Redis.DB)

	// 4. 初始化 Repository
	questionRepo := repository.NewQuestionRepository(database.DB)
	hitRepo := repository.NewHitCounterRepository(database.RDB)

	// 5. 初始化 Service (依赖注入)
	questionService := service.NewQuestionService(questionRepo, hitRepo)
	searchService := service.NewQuestionSearchService(questionRepo, hitRepo, cfg.Search.Threshold, cfg.Search.TopN)

	// 6. 设置 Gin 模式并创建路由引擎
	gin.SetMode(cfg.Server.Mode)
	r := gin.New() // 使用 New() 创建一个不带默认中间件的引擎
	r.Use(middleware.RequestLogger(), gin.Recovery())

	// 7. 注册路由
	apiV1 := r.Group("/api/v1")
	{
		question := apiV1.Group("/question")
		{
			questionHandler := handler.NewQuestionHandler(questionService)
			searchHandler := handler.NewSearchHandler(searchService)

			question.GET("/all-questions", questionHandler.GetQuestions)
			question.POST("/question_by_id", questionHandler.GetQuestionByID)
			question.POST("/create", questionHandler.CreateQuestion)
			question.POST("/update", questionHandler.UpdateQuestion)
			question.POST("/delete", questionHandler.DeleteQuestion)
			question.GET("/top_question_count", questionHandler.TopQuestionCounts)

			question.GET("/search", searchHandler.SearchQuestions)
			question.GET("/search-fuzzy", searchHandler.SearchQuestionsFuzzy)
		}
	}

	// 8. 启动 HTTP 服务器并实现优雅停机
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Infof("服务启动于 %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP 服务监听失败: %s\n", err)
		}
	}()

	// 等待中断信号以实现优雅停机
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("接收到停机信号，正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("HTTP 服务器关闭失败: %v", err)
	}

	log.Info("服务已优雅关闭")
}
