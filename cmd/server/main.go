package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/valeriaulyamaeva/personal-tracker/internal/config"
	"github.com/valeriaulyamaeva/personal-tracker/internal/database"
	"github.com/valeriaulyamaeva/personal-tracker/internal/handlers"
	"github.com/valeriaulyamaeva/personal-tracker/internal/routes"
	"github.com/valeriaulyamaeva/personal-tracker/web"
)

func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("неизвестный уровень логирования, используется info")
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}

func main() {
	cfg, fromFile, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("ошибка конфигурации")
	}
	log := newLogger(cfg.LogLevel)
	if fromFile {
		log.Info("загружен файл .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("ошибка подключения к БД")
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.WithError(err).Fatal("ошибка создания схемы")
	}

	tmpl, err := web.Templates()
	if err != nil {
		log.WithError(err).Fatal("ошибка загрузки шаблонов")
	}

	gin.SetMode(cfg.GinMode)
	router := routes.SetupRouter(handlers.New(pool, log), log, tmpl)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("сервер запущен")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("ошибка сервера")
		}
	}()

	<-ctx.Done()
	log.Info("остановка сервера")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("ошибка корректной остановки сервера")
	}
}
