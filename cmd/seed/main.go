package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/sirupsen/logrus"

	"github.com/valeriaulyamaeva/personal-tracker/internal/config"
	"github.com/valeriaulyamaeva/personal-tracker/internal/database"
	"github.com/valeriaulyamaeva/personal-tracker/utils"
)

func main() {
	n := flag.Int("n", 10, "rows to generate per table")
	seed := flag.Int64("seed", 0, "random seed, 0 for a random one")
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stdout)

	cfg, _, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("ошибка конфигурации")
	}
	if *n <= 0 {
		log.WithField("n", *n).Fatal("-n должен быть положительным")
	}
	gofakeit.Seed(*seed)

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("ошибка подключения к БД")
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.WithError(err).Fatal("ошибка создания схемы")
	}

	if err := utils.GenerateTestData(ctx, pool, *n, time.Now()); err != nil {
		log.WithError(err).Fatal("ошибка генерации данных")
	}
	log.WithField("rows_per_table", *n).Info("тестовые данные добавлены")
}
