package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pollbase/pollbase/server/api"
	"github.com/pollbase/pollbase/server/app"
	"github.com/pollbase/pollbase/server/config"
	"github.com/pollbase/pollbase/server/event"
	"github.com/pollbase/pollbase/server/metrics"
	"github.com/pollbase/pollbase/server/store/filestore"
)

const version = "1.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	st, err := filestore.NewStore(cfg.DataDir, logger, version)
	if err != nil {
		logger.Error("failed to open store", "data_dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	var publisher event.Publisher = event.Discard{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = event.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		logger.Info("vote event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("failed to close publisher", "error", err)
		}
	}()

	serviceMetrics := metrics.NewServiceMetrics(prometheus.DefaultRegisterer)
	users := app.NewUserService(st, logger)
	polls := app.NewPollService(st, &app.PollIDGenerator{}, publisher, serviceMetrics, logger)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: api.New(users, polls, version, logger),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	logger.Info("listening", "addr", cfg.ListenAddr)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		logger.Error("server closed", "error", err)
		os.Exit(1)
	}
	logger.Info("server closed")
}
