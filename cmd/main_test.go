package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/labelreport/internal/config"
	"github.com/okian/labelreport/internal/container"
	"github.com/okian/labelreport/pkg/logger"
	"github.com/okian/labelreport/pkg/metrics"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("LABELREPORT_ADDR", ":8080")
			_ = os.Setenv("LABELREPORT_PROVIDER", "http")
			defer func() {
				_ = os.Unsetenv("LABELREPORT_ADDR")
				_ = os.Unsetenv("LABELREPORT_PROVIDER")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.Provider, convey.ShouldEqual, config.ProviderHTTP)
			})
		})

		convey.Convey("When initializing logging", func() {
			cfg := config.New()
			cfg.LogLevel = "verbose"

			convey.Convey("Then an invalid level should fall back without failing", func() {
				convey.So(initLogging(cfg), convey.ShouldBeNil)
				convey.So(logger.Get(), convey.ShouldNotBeNil)
			})

			convey.Convey("And an unknown format should fail", func() {
				cfg.LogFormat = "xml"
				convey.So(initLogging(cfg), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			convey.So(logger.Init(), convey.ShouldBeNil)
			cfg := config.New()
			cfg.Provider = config.ProviderHTTP
			c, err := container.New(context.Background(), cfg)
			convey.So(err, convey.ShouldBeNil)

			srv := newServer(cfg, c)

			convey.Convey("Then it should listen on the configured address", func() {
				convey.So(srv.Addr, convey.ShouldEqual, ":9080")
				convey.So(srv.ReadHeaderTimeout, convey.ShouldEqual, readHeaderTimeout)
			})

			convey.Convey("And the health endpoint should be routed", func() {
				w := httptest.NewRecorder()
				srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			})

			convey.Convey("And analyze without imageUrl should return the generic error", func() {
				w := httptest.NewRecorder()
				srv.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/analyze", nil))
				convey.So(w.Code, convey.ShouldEqual, http.StatusInternalServerError)
				convey.So(w.Body.String(), convey.ShouldEqual, "Internal server error!")
			})
		})

		convey.Convey("When updating system metrics", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			convey.So(metrics.RefreshInterval(), convey.ShouldBeGreaterThan, 0)
		})
	})
}
