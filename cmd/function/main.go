package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"

	"github.com/AnkitPaunikar/Subscriber-Serverless/internal/config"
	"github.com/AnkitPaunikar/Subscriber-Serverless/internal/handler"
	"github.com/AnkitPaunikar/Subscriber-Serverless/internal/subscriber"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalln("configuration error: " + err.Error())
	}
	config.ConfigureLogging(cfg.Log)

	// One store for the process lifetime, shared by both entry points.
	// State lives only in memory and is lost when the function
	// environment is recycled.
	store := subscriber.NewStore()
	h := handler.New(store)

	lambda.Start(h.HandleEvent)
}
