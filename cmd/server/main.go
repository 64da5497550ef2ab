package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/AnkitPaunikar/Subscriber-Serverless/internal/config"
	"github.com/AnkitPaunikar/Subscriber-Serverless/internal/server"
	"github.com/AnkitPaunikar/Subscriber-Serverless/internal/subscriber"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalln("configuration error: " + err.Error())
	}
	config.ConfigureLogging(cfg.Log)

	store := subscriber.NewStore()
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: server.New(store).Router(),
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		log.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("shutdown error: %v", err)
		}
	}()

	log.Infof("listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
	<-done
}
