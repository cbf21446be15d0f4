package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	telegramClient "github.com/isergeich22/twitch-bot/internal/client/telegram-client"
	twitchClient "github.com/isergeich22/twitch-bot/internal/client/twitch-client"
	twitchOauthClient "github.com/isergeich22/twitch-bot/internal/client/twitch-oauth-client"
	"github.com/isergeich22/twitch-bot/internal/config"

	statusHandler "github.com/isergeich22/twitch-bot/internal/handlers/status"

	notificationService "github.com/isergeich22/twitch-bot/internal/service/notification"
	streamCheckService "github.com/isergeich22/twitch-bot/internal/service/stream_check"
	twitchTokenService "github.com/isergeich22/twitch-bot/internal/service/twitch_token"

	"github.com/isergeich22/twitch-bot/internal/repository"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const streamCheckInterval = 2 * time.Minute

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := godotenv.Load()
	if err != nil {
		logrus.Info("no .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("cannot load config: %v", err)
	}

	logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		logrus.Fatalf("cannot open log file: %v", err)
	}
	defer logFile.Close()

	logrus.SetOutput(io.MultiWriter(os.Stdout, logFile))

	logrus.Info("bot started")

	telegaClient, err := telegramClient.NewTelegramClient(cfg.ChatBotToken)
	if err != nil {
		logrus.Fatalf("cannot init telegram client: %v", err)
	}

	var (
		twOauthClient = twitchOauthClient.NewTwitchOauthClient(cfg.StreamClientID, cfg.StreamClientSecret)
		twClient      = twitchClient.NewTwitchClient(cfg.StreamClientID)
	)

	stateRepo := repository.NewStreamStateRepository(cfg.StateFile)

	tts := twitchTokenService.NewTwitchTokenService(twOauthClient)

	tns := notificationService.NewTelegramNotificationService(
		telegaClient,
		telegramClient.ParseDestination(cfg.ChatDestinationID),
	)

	scs := streamCheckService.NewStreamCheckService(cfg.StreamChannelLogin, twClient, tts, stateRepo, tns)
	go scs.SyncBg(ctx, streamCheckInterval)

	sHandler := statusHandler.NewStatusHandler(scs)

	router := mux.NewRouter()
	router.HandleFunc("/status", sHandler.GetStatus).Methods("GET").Schemes("HTTP")

	srv := &http.Server{
		Handler:      router,
		Addr:         cfg.DebugAddr,
		WriteTimeout: 5 * time.Second,
		ReadTimeout:  5 * time.Second,
	}

	go func() {
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Errorf("debug server: %v", err)
		}
	}()

	<-ctx.Done()

	logrus.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("debug server shutdown: %v", err)
	}

	logrus.Info("bot stopped")
}
