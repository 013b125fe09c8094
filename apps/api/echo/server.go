package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/livante/growthlab/core"
	"github.com/livante/growthlab/core/catalog"
	"github.com/livante/growthlab/core/newsletter"
	"github.com/livante/growthlab/core/story"
	"github.com/livante/growthlab/core/user"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool
		Logger         core.Logger
		Catalog        *catalog.Catalog
		UserSvc        *user.Service
		NewsletterSvc  *newsletter.Service
		StorySvc       *story.Service
		SignalShutdown func()
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts     *Options
		app      *echo.Echo
		sessions *sessionStore
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	if opts.SignalShutdown == nil {
		opts.SignalShutdown = func() {}
	}
	s := &server{
		opts:     opts,
		app:      echo.New(),
		sessions: newSessionStore(opts.Catalog, core.Conf.SessionTTL),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(core.Conf.Debug || core.Conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, s.opts.SignalShutdown)
	s.app.Debug = core.Conf.Debug

	s.app.GET("/", home)

	v1 := s.app.Group("/v1")
	jwt := middleware.JWTWithConfig(appJWTConfig)
	optAuth := optionalAuthMiddleware()

	registerUserAPI(v1, jwt, s.opts.UserSvc)
	registerCatalogAPI(v1, optAuth, s.sessions, s.opts.Catalog, s.opts.UserSvc)
	registerProgressAPI(v1, s.sessions, s.opts.Catalog)
	registerQuizAPI(v1, s.sessions, s.opts.Catalog)
	registerNewsletterAPI(v1, s.opts.NewsletterSvc)
	registerStoryAPI(v1, s.opts.StorySvc)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	s.sessions.stopAll()
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to the Livante Growth Lab API!")
}
