package main

import (
	"fmt"
	"os"

	"login-test/internal/app"
	"login-test/internal/config"
	"login-test/internal/errors"
	"login-test/internal/logger"

	fyneapp "fyne.io/fyne/v2/app"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "login-test: %+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
	if err != nil {
		return errors.Wrap(err, "create logger")
	}

	log.Info("Application", "starting application", map[string]interface{}{
		"version":   app.AppVersion,
		"log_level": cfg.LogLevel,
	})

	application, err := app.NewApplication(fyneapp.NewWithID(app.AppID), cfg, log)
	if err != nil {
		log.Error("Application", err, nil)
		return errors.Wrap(err, "initialize application")
	}

	if err := application.Run(); err != nil {
		log.Error("Application", err, nil)
		return errors.Wrap(err, "run application")
	}

	log.Info("Application", "application terminated", nil)
	return nil
}
