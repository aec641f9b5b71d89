package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/shifa-dev/clinic-desk/backend/internal/config"
	"github.com/shifa-dev/clinic-desk/backend/internal/repository"
	"github.com/shifa-dev/clinic-desk/backend/internal/seed"
	"github.com/shifa-dev/clinic-desk/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var csvPath string

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random staff, 2: insert random patients, 3: install the default weekly schedule, 4: import patients from a CSV file)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.StringVar(&csvPath, "csv", "./internal/seed/data/patients.csv", "path of the patient CSV file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("unable to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("unable to create database connection pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open only builds the pool object, it does not connect yet
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("unable to connect to the database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 0:
		slog.Error("no operation given")
	case 1:
		if n <= 0 {
			slog.Error("please give a valid staff count")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				user, err := utils.GenerateRandomUser(cfg.Seed.User.Password)
				if err != nil {
					slog.Error("unable to generate a random staff member", slog.String("error", err.Error()))
					continue
				}

				if err := repo.CreateUser(user); err != nil {
					slog.Error("unable to insert a staff member", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("staff inserted", slog.Int("count", n-cnt))
		}
	case 2:
		if n <= 0 {
			slog.Error("please give a valid patient count")
		} else {
			cnt := n
			for i := 0; i < n; i++ {
				patient := utils.GenerateRandomPatient()
				if err := repo.CreatePatient(patient); err != nil {
					slog.Error("unable to insert a patient", slog.String("error", err.Error()))
					continue
				}

				cnt--
			}

			slog.Info("patients inserted", slog.Int("count", n-cnt))
		}
	case 3:
		shifts := utils.DefaultWorkingShifts()
		if err := utils.ValidateWorkingShifts(shifts); err != nil {
			slog.Error("the default schedule is invalid", slog.String("error", err.Error()))
			return
		}
		if err := repo.ReplaceWorkingShifts(shifts); err != nil {
			slog.Error("unable to install the default weekly schedule", slog.String("error", err.Error()))
			return
		}

		slog.Info("default weekly schedule installed", slog.Int("shifts", len(shifts)))
	case 4:
		seed.ImportPatients(repo, csvPath)
	default:
		slog.Error("unknown operation")
	}
}
