package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/echenim/bookview/internal/config"
	"github.com/echenim/bookview/internal/depth"
	hdl "github.com/echenim/bookview/internal/handlers"
	"github.com/echenim/bookview/internal/logging"
	"github.com/echenim/bookview/internal/metrics"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// NewEcho wires the book routes, health and metrics endpoints.
func NewEcho(cfg config.Config, store *depth.Store) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = hdl.ErrorHandler
	e.Server.ReadTimeout = time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(requestLogger())

	reg := metrics.Init()
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(reg)))
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	hdl.NewBookView(cfg, store).Register(e)

	return e
}

// StartServer runs until SIGINT or SIGTERM and then shuts down gracefully.
func StartServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg)

	e := NewEcho(cfg, depth.NewStore())

	go func() {
		if err := e.Start(cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.WithError(err).Fatal("http server error")
		}
	}()

	logrus.WithFields(logrus.Fields{
		"addr":  cfg.Server.Addr,
		"depth": cfg.Book.Depth,
		"pairs": cfg.Book.Pairs,
	}).Info("book view started")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logrus.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return e.Shutdown(shutdownCtx)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logrus.WithFields(logrus.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency,
				"request_id": v.RequestID,
			}).Debug("request")
			return nil
		},
	})
}

