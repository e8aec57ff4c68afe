package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/mindful/internal/cli"
	"github.com/alexanderramin/mindful/internal/config"
	"github.com/alexanderramin/mindful/internal/db"
	"github.com/alexanderramin/mindful/internal/repository"
	"github.com/alexanderramin/mindful/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		if db.IsStorageOp(err, db.OpInit) {
			fmt.Fprintf(os.Stderr, "Failed to initialize storage: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, cfgPath, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	interactive := func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Use-case logging goes to stderr unless the TUI owns the screen.
	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		var w io.Writer
		switch {
		case cfg.LogFile != "":
			f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("opening log file: %w", err)
			}
			defer f.Close()
			w = f
		case len(os.Args) > 1 || !interactive():
			w = os.Stderr
		}
		observers = append(observers, service.NewLogUseCaseObserver(w))
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	prefsRepo := repository.NewSQLitePreferencesRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// One notifier shared by every service so the TUI hears all commits.
	notifier := service.NewChangeNotifier()

	app := &cli.App{
		Sessions:      service.NewSessionService(sessionRepo, uow, notifier, observers...),
		Preferences:   service.NewPreferencesService(prefsRepo, notifier, observers...),
		Stats:         service.NewStatsService(sessionRepo, observers...),
		Notifier:      notifier,
		Config:        cfg,
		ConfigPath:    cfgPath,
		Location:      loc,
		IsInteractive: interactive,
	}

	return cli.NewRootCmd(app).Execute()
}
