package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/clients/chart"
	"max.ks1230/expense-tracker/internal/config"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/menu"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/storage"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "path to the YAML config")
	flag.Parse()

	defer logger.Sync()
	defer func() {
		if r := recover(); r != nil {
			logger.Error("unexpected failure", zap.Any("panic", r))
			fmt.Printf("An error occurred: %v\n", r)
			fmt.Println("Please check your input and try again.")
			os.Exit(1)
		}
	}()

	conf, err := config.New(*configPath)
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)

	store, err := storage.NewFromConfig(ctx, conf.Storage())
	if err != nil {
		logger.Fatal("failed to init storage:", zap.Error(err))
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("failed to close storage", zap.Error(closeErr))
		}
	}()

	var renderer *chart.Renderer
	if conf.Charts().Enabled() {
		renderer = chart.New(conf.Charts())
	}

	generator := reports.NewGenerator(store)
	svc := newMenu(store, generator, renderer, conf.App())

	// reading stdin blocks, so an interrupt has to end the process from here
	go func() {
		<-interrupts
		fmt.Println("\n\nProgram interrupted by user. Goodbye!")
		logger.Sync()
		os.Exit(0)
	}()

	if err = svc.Run(ctx); err != nil {
		logger.Error("menu stopped", zap.Error(err))
	}
}

func newMenu(store *storage.Store, generator *reports.Generator, renderer *chart.Renderer, conf *config.AppConfig) *menu.Service {
	// a nil *Renderer must not reach the interface as a non-nil value
	if renderer == nil {
		return menu.New(os.Stdin, os.Stdout, store, generator, nil, conf)
	}
	return menu.New(os.Stdin, os.Stdout, store, generator, renderer, conf)
}
