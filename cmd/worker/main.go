package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"prompthub-go/internal/config"
	"prompthub-go/internal/infra/database"
	infraES "prompthub-go/internal/infra/elasticsearch"
	infraKafka "prompthub-go/internal/infra/kafka"
	"prompthub-go/internal/repository"
	"prompthub-go/internal/service"
	"prompthub-go/pkg/logger"

	"go.uber.org/zap"
)

// 索引同步 worker：消费提示词变更事件，把提示词同步进 Elasticsearch
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close()

	if err := infraES.Init(&cfg.Elasticsearch); err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}
	defer infraES.Close()

	if err := infraES.InitIndexes(); err != nil {
		logger.Fatal("Failed to init elasticsearch indexes", zap.Error(err))
	}

	promptRepo := repository.NewPromptRepository(database.Get())
	searchService := service.NewSearchService(promptRepo)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	topic, ok := cfg.Kafka.Topics["prompt_events"]
	if !ok {
		logger.Fatal("Missing kafka topic config", zap.String("topic", "prompt_events"))
	}
	groupID := "prompthub-index-sync"

	logger.Info("Index sync worker started",
		zap.String("topic", topic),
		zap.String("group", groupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)

	handler := func(event *infraKafka.PromptEvent) error {
		switch event.Action {
		case infraKafka.PromptActionDelete:
			return searchService.RemovePromptFromES(event.PromptID)
		case infraKafka.PromptActionUpsert:
			return searchService.SyncPromptToES(event.PromptID)
		default:
			return errors.New("unknown prompt event action: " + event.Action)
		}
	}

	infraKafka.StartPromptEventConsumer(ctx, cfg.Kafka.Brokers, topic, groupID, handler)
}
