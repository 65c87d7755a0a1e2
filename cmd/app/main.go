package main

import (
	"context"
	"sharmoria/config"
	"sharmoria/di"
	"sharmoria/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()

	ctx := context.Background()

	go service.Dispatcher.Run(ctx)
	go service.Consumer.Run(ctx)

	service.HTTP.Serve()
}
