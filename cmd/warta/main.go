package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"warta/internal/ai"
	"warta/internal/archive"
	"warta/internal/cache"
	"warta/internal/chat"
	"warta/internal/config"
	"warta/internal/model"
	"warta/internal/news"
	"warta/internal/newsapi"
	"warta/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "warta",
	Short: "warta - Malaysian news chat and browsing service",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			logger.Info("Shutting down...")
			cancel()
		}()

		newsClient := newsapi.NewClient(newsapi.Config{
			BaseURL: cfg.NewsBaseURL,
			APIKey:  cfg.NewsAPIKey,
			Country: cfg.NewsCountry,
			Timeout: cfg.NewsTimeout,
		}, logger)

		var store cache.Store
		if cfg.RedisAddr != "" {
			redisStore, err := cache.NewRedis(ctx, cfg.RedisAddr)
			if err != nil {
				return err
			}
			defer redisStore.Close()
			store = redisStore
			logger.Info("Using Redis retrieval cache", zap.String("addr", cfg.RedisAddr))
		} else {
			store = cache.NewMemory(cfg.CacheSize)
		}

		newsSvc := news.NewService(newsClient, store, logger,
			news.WithFreshness(cfg.CacheFreshness))

		aiClient := ai.NewClient(ai.Config{
			Endpoint: cfg.AIEndpoint,
			APIKey:   cfg.AIAPIKey,
			Model:    cfg.AIModel,
			Timeout:  cfg.AITimeout,
		}, logger)

		orchestrator := chat.NewOrchestrator(aiClient, newsSvc, logger)

		contentStore, err := archive.OpenStore(cfg.BadgerPath)
		if err != nil {
			return err
		}
		defer contentStore.Close()
		archiver := archive.NewArchiver(contentStore, logger)

		srv := server.NewServer(newsSvc, orchestrator, aiClient, archiver, logger)
		go func() {
			if err := srv.Start(cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server stopped", zap.Error(err))
				cancel()
			}
		}()

		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error("shutdown error", zap.Error(err))
		}
		logger.Info("Goodbye!")
		return nil
	},
}

var includeNews bool

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the news assistant in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		newsClient := newsapi.NewClient(newsapi.Config{
			BaseURL: cfg.NewsBaseURL,
			APIKey:  cfg.NewsAPIKey,
			Country: cfg.NewsCountry,
			Timeout: cfg.NewsTimeout,
		}, logger)
		newsSvc := news.NewService(newsClient, cache.NewMemory(cfg.CacheSize), logger)
		aiClient := ai.NewClient(ai.Config{
			Endpoint: cfg.AIEndpoint,
			APIKey:   cfg.AIAPIKey,
			Model:    cfg.AIModel,
			Timeout:  cfg.AITimeout,
		}, logger)
		orchestrator := chat.NewOrchestrator(aiClient, newsSvc, logger)

		conv := chat.NewConversation()
		scanner := bufio.NewScanner(os.Stdin)
		ctx := context.Background()

		fmt.Println("Malaysian news assistant. Type a message, or 'exit' to quit.")
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				fmt.Println()
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				return nil
			}

			conv.Append(model.NewChatMessage(model.RoleUser, line))

			reply, contextArticles, err := orchestrator.Converse(ctx, conv.Messages(), includeNews, line)
			if err != nil {
				fmt.Println("The assistant is unavailable right now. Please try again.")
				continue
			}

			msg := model.NewChatMessage(model.RoleAssistant, reply)
			if len(contextArticles) > 0 {
				msg.Articles = contextArticles
				msg.Type = model.MessageNews
			}
			conv.Append(msg)

			fmt.Println(reply)
			for _, a := range contextArticles {
				fmt.Printf("  - %s (%s)\n", a.Title, a.Source.Name)
			}
		}
	},
}

var newsCmd = &cobra.Command{
	Use:   "news [category]",
	Short: "Fetch headlines once and print them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		client := newsapi.NewClient(newsapi.Config{
			BaseURL: cfg.NewsBaseURL,
			APIKey:  cfg.NewsAPIKey,
			Country: cfg.NewsCountry,
			Timeout: cfg.NewsTimeout,
		}, logger)
		svc := news.NewService(client, cache.NewMemory(cfg.CacheSize), logger)

		ctx := context.Background()
		var articles []model.Article
		if len(args) == 1 {
			category, ok := model.ParseCategory(args[0])
			if !ok {
				return fmt.Errorf("unknown category %q", args[0])
			}
			articles = svc.ByCategory(ctx, category)
		} else {
			articles = svc.Latest(ctx, 10)
		}

		for _, a := range articles {
			fmt.Printf("[%s] %s (%s)\n", a.Category, a.Title, a.Source.Name)
		}
		return nil
	},
}

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	chatCmd.Flags().BoolVar(&includeNews, "news", false, "Search current headlines for each message and use them as context")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(newsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
