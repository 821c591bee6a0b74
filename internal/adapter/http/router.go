package http

import (
	"log/slog"
	"time"

	appmw "sacco-admin/internal/adapter/middleware"
	"sacco-admin/internal/shell"
	"sacco-admin/internal/usecase/dashboard"
	"sacco-admin/internal/usecase/loan"
	"sacco-admin/internal/usecase/member"
	"sacco-admin/web"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
)

// Deps is everything the router wires into handlers.
type Deps struct {
	Shell     *shell.Shell
	Members   *member.Usecase
	Loans     *loan.Usecase
	Dashboard *dashboard.Usecase
	DB        Pinger
	Logger    *slog.Logger

	// Redis enables the duplicate-submit guard on POST routes when set.
	Redis    *redis.Client
	IdempTTL time.Duration
}

func NewServer(d Deps) (*echo.Echo, error) {
	renderer, err := NewTemplateRenderer(web.TemplatesFS)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.Renderer = renderer
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	var guard echo.MiddlewareFunc = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	if d.Redis != nil {
		guard = appmw.IdempotencyMiddleware(d.Redis, d.IdempTTL)
	}

	h := NewHandler(d.DB)
	e.GET("/health", h.Health)
	e.StaticFS("/static", echo.MustSubFS(web.StaticFS, "static"))

	sh := NewShellHandler(d.Shell, d.Logger)
	e.GET("/", sh.Index)
	e.GET("/sections/:name", sh.Section)
	e.POST("/sections/Clients/members", sh.SubmitMember, guard)
	e.POST("/sections/Loans/loans", sh.SubmitLoan, guard)

	api := e.Group("/api")
	mh := NewMemberHandler(d.Members)
	api.GET("/members", mh.ListMembers)
	api.POST("/members", mh.CreateMember, guard)
	lh := NewLoanHandler(d.Loans)
	api.GET("/loans", lh.ListLoans)
	api.POST("/loans", lh.CreateLoan, guard)
	api.GET("/dashboard", NewDashboardHandler(d.Dashboard).GetSummary)

	return e, nil
}
