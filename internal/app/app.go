package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
)

type outbound struct {
	catalog    catalog.Client
	kv         storage.KVDB
	identities storage.IdentityRepository
}

type coreServices struct {
	browser  port.CatalogBrowser
	session  port.SessionManager
	cart     port.Carter
	checkout port.CheckoutProcessor
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	outbound   outbound
	services   coreServices
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOutboundAdapters()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	app.outbound.catalog = catalog.NewClient(app.cfg.Catalog.BaseURL)

	kv, err := storage.NewKVDB(app.cfg.IdentityDBPath)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.kv = kv
	app.outbound.identities = storage.NewIdentityRepository(kv)
}

func (app *App) initCoreServices() {
	const op = "App.initCoreServices"

	app.services.browser = service.NewCatalogService(app.outbound.catalog)

	session, err := service.NewSessionService(app.ctx, app.outbound.identities)
	if err != nil {
		app.fallDown(op, err)
	}
	app.services.session = session

	cart := service.NewCartService()
	app.services.cart = cart

	app.services.checkout = service.NewCheckoutService(
		cart, session, app.cfg.Checkout.ProcessingDelay,
	)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.services.browser)
	httphandler.RegisterCart(mux, app.services.cart, app.services.browser)
	httphandler.RegisterCheckout(mux, app.services.checkout)
	httphandler.RegisterAuth(mux, app.services.session)

	handler := httphandler.AllowJSON(mux)
	handler = httphandler.LogRequests(handler)
	httpServer := httphandler.NewHTTPServer(addr, handler)
	app.httpServer = httpServer
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.outbound.kv.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
