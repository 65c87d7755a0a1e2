package handler

import (
	"net/http"
	"sharmoria/config"
	"sharmoria/di"
	"sharmoria/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.HTTP.Adaptor()(w, r)
}
