package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	echoapi "github.com/livante/growthlab/apps/api/echo"
	"github.com/livante/growthlab/core"
	"github.com/livante/growthlab/core/catalog"
	"github.com/livante/growthlab/core/newsletter"
	"github.com/livante/growthlab/core/story"
	"github.com/livante/growthlab/core/user"
	emailsvc "github.com/livante/growthlab/services/email"
	logsvc "github.com/livante/growthlab/services/logger"
	"github.com/livante/growthlab/storage/database"
	dummydb "github.com/livante/growthlab/storage/database/dummy"
	sqlxrepos "github.com/livante/growthlab/storage/database/sqlx"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up error reporting
	var logger core.Logger
	if core.Conf.RollbarToken != "" {
		rollbar := logsvc.NewRollbarLogger(std, core.Conf)
		rollbar.Enable(!core.Conf.Debug)
		logger = rollbar
	} else {
		logger = logsvc.NewStdLogger(std)
	}

	// the catalog is static; a malformed one is a build defect
	cat, err := catalog.New()
	if err != nil {
		std.Fatalf("loading catalog: %v", err)
	}

	// set up mailer
	var mailSvc core.EmailService
	if core.Conf.SendgridApiKey != "" {
		mailSvc = emailsvc.NewSendgridService(logger)
	} else {
		mailSvc = emailsvc.NewConsoleService()
	}

	// set up repositories; without a database the app serves the catalog
	// in a degraded, browse-only mode
	var (
		usrRepo   user.Repository
		subRepo   newsletter.Repository
		storyRepo story.Repository
	)
	switch {
	case core.Conf.Database.IsSet():
		db, err := setUpDB()
		if err != nil {
			std.Fatalf("setting up database: %v", err)
		}
		defer db.Close()

		xdb := sqlx.NewDb(db, "postgres")
		usrRepo = sqlxrepos.NewUserRepository(xdb)
		subRepo = sqlxrepos.NewSubscriberRepository(xdb)
		storyRepo = sqlxrepos.NewStoryRepository(xdb)

	case core.Conf.Env == "DEV":
		mem, err := dummydb.Open()
		if err != nil {
			std.Fatalf("setting up in-memory storage: %v", err)
		}
		usrRepo = dummydb.NewUserRepository(mem)
		subRepo = dummydb.NewSubscriberRepository(mem)
		storyRepo = dummydb.NewStoryRepository(mem)
		std.Print("no database configured; using volatile in-memory storage")

	default:
		logger.Warn("no database configured; account features are disabled")
	}

	// set up services
	usrSvc := user.NewService(usrRepo, mailSvc, logger)
	newsSvc := newsletter.NewService(subRepo, mailSvc)
	storySvc := story.NewService(storyRepo)

	// =========================================================================
	// Start API Service

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	server := echoapi.NewServer(&echoapi.Options{
		Address:        core.Conf.Server.Address(),
		Logger:         logger,
		Catalog:        cat,
		UserSvc:        usrSvc,
		NewsletterSvc:  newsSvc,
		StorySvc:       storySvc,
		SignalShutdown: func() { shutdown <- syscall.SIGTERM },
	})

	go server.Start()
	std.Printf("Application started : version %q env %q", core.Conf.Build, core.Conf.Env)

	// =========================================================================
	// Shutdown

	sig := <-shutdown
	std.Printf("%v: start shutdown...", sig)

	// give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		std.Fatalf("could not stop server gracefully: %v", err)
	}
	std.Print("Application stopped")
}

func setUpDB() (*sql.DB, error) {
	if err := database.CreateIfNotExist(core.Conf); err != nil {
		return nil, err
	}
	db, err := database.Open(core.Conf)
	if err != nil {
		return nil, err
	}
	if err = database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
