package main

import (
	"os"

	"go-fx-exchange/exchange"
	fxhttp "go-fx-exchange/http"
	"go-fx-exchange/rates"

	"github.com/go-kit/log"
	"github.com/joho/godotenv"

	nhttp "net/http"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	// .env is optional, environment variables win either way
	_ = godotenv.Load()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	rateService, err := rates.NewService()
	if err != nil {
		logger.Log("msg", "building rate table", "err", err)
		os.Exit(1)
	}
	rateService = rates.NewLoggingService(log.With(logger, "component", "rates"), rateService)

	exchangeService := exchange.NewService(rateService)
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)

	server := fxhttp.NewServer(exchangeService)

	logger.Log("msg", "listening", "addr", addr)
	if err := nhttp.ListenAndServe(addr, server); err != nil {
		logger.Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
