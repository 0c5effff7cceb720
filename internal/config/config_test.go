package config_test

import (
	"errors"
	"testing"

	"github.com/okian/labelreport/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.Provider, convey.ShouldEqual, config.ProviderAWS)
			convey.So(cfg.ImageEncoding, convey.ShouldEqual, config.EncodingBase64)
			convey.So(cfg.ConfidenceThreshold, convey.ShouldEqual, 80.0)
			convey.So(cfg.SourceLang, convey.ShouldEqual, "en")
			convey.So(cfg.TargetLang, convey.ShouldEqual, "pt")
			convey.So(cfg.JoinSeparator, convey.ShouldEqual, " and ")
			convey.So(cfg.SplitSeparator, convey.ShouldEqual, " e ")
			convey.So(cfg.StrictAlignment, convey.ShouldBeFalse)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New()

		cases := []struct {
			name   string
			mutate func(c *config.Config)
		}{
			{"empty addr", func(c *config.Config) { c.Addr = " " }},
			{"unknown provider", func(c *config.Config) { c.Provider = "gcp" }},
			{"unknown encoding", func(c *config.Config) { c.ImageEncoding = "hex" }},
			{"negative threshold", func(c *config.Config) { c.ConfidenceThreshold = -1 }},
			{"threshold over 100", func(c *config.Config) { c.ConfidenceThreshold = 100.5 }},
			{"empty separator", func(c *config.Config) { c.SplitSeparator = "" }},
			{"zero timeout", func(c *config.Config) { c.HTTPTimeoutMS = 0 }},
			{"malformed source lang", func(c *config.Config) { c.SourceLang = "123456789" }},
			{"empty target lang", func(c *config.Config) { c.TargetLang = "" }},
			{"http provider without labeler url", func(c *config.Config) {
				c.Provider = config.ProviderHTTP
				c.LabelerURL = ""
			}},
		}

		for _, tc := range cases {
			convey.Convey("When the config has "+tc.name, func() {
				tc.mutate(cfg)

				convey.Convey("Then validation should fail with ErrInvalidConfig", func() {
					err := cfg.Validate()
					convey.So(err, convey.ShouldNotBeNil)
					convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				})
			})
		}

		convey.Convey("When the target language is not a BCP 47 tag", func() {
			cfg.TargetLang = "portuguese-brazil"

			convey.Convey("Then the error should also be a language error", func() {
				err := cfg.Validate()
				convey.So(errors.Is(err, config.ErrInvalidLanguage), convey.ShouldBeTrue)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When languages use region subtags", func() {
			cfg.SourceLang = "en-US"
			cfg.TargetLang = "pt-BR"

			convey.Convey("Then validation should pass", func() {
				convey.So(cfg.Validate(), convey.ShouldBeNil)
			})
		})

		convey.Convey("When the http provider has both urls", func() {
			cfg.Provider = config.ProviderHTTP

			convey.Convey("Then validation should pass", func() {
				convey.So(cfg.Validate(), convey.ShouldBeNil)
			})
		})
	})
}
