package main

import (
	"context"
	"os"

	"go-fx-exchange/command"
	"go-fx-exchange/console"
	"go-fx-exchange/exchange"
	"go-fx-exchange/rates"

	"github.com/go-kit/log"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	rateService, err := rates.NewService()
	if err != nil {
		logger.Log("msg", "building rate table", "err", err)
		os.Exit(1)
	}
	rateService = rates.NewLoggingService(log.With(logger, "component", "rates"), rateService)

	exchangeService := exchange.NewService(rateService)
	exchangeService = exchange.NewLoggingService(log.With(logger, "component", "exchange"), exchangeService)

	commandService := command.NewService(exchangeService)
	commandService = command.NewLoggingService(log.With(logger, "component", "command"), commandService)

	output := console.NewOutput(os.Stdout, rateService)
	app := console.NewApp(commandService, output, os.Stdin, os.Stdout)

	if err := app.Run(context.Background()); err != nil {
		logger.Log("msg", "run", "err", err)
		os.Exit(1)
	}
}
