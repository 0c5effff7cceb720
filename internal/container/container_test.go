package container_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	service "github.com/okian/labelreport/internal/app"
	"github.com/okian/labelreport/internal/config"
	"github.com/okian/labelreport/internal/container"
	"github.com/okian/labelreport/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// collaborators starts fake image, labeling and translation services.
func collaborators(translated string) (image, labeler, translator *httptest.Server) {
	image = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))))
	}))
	labeler = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Image string `json:"image"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Image != base64.StdEncoding.EncodeToString([]byte("jpeg-bytes")) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write([]byte(`{"labels":[{"name":"Dog","confidence":95.2},{"name":"Cat","confidence":88.0},{"name":"Pet","confidence":80.0}]}`))
	}))
	translator = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Text != "Dog and Cat" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"translated_text": translated})
	}))
	return image, labeler, translator
}

func TestNew(t *testing.T) {
	Convey("Given an http provider configuration", t, func() {
		ctx := context.Background()
		image, labeler, translator := collaborators("Cão e Gato")
		defer image.Close()
		defer labeler.Close()
		defer translator.Close()

		cfg := config.New()
		cfg.Provider = config.ProviderHTTP
		cfg.LabelerURL = labeler.URL
		cfg.TranslatorURL = translator.URL

		Convey("When the container is built", func() {
			c, err := container.New(ctx, cfg)

			Convey("Then the service should produce the report end to end", func() {
				So(err, ShouldBeNil)
				resp := c.Service.Invoke(ctx, service.Event{QueryParameters: map[string]string{"imageUrl": image.URL + "/dog.jpg"}})
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Body, ShouldEqual, "A imagem tem\n  95.20% de ser do tipo Cão\n 88.00% de ser do tipo Gato")
			})
		})

		Convey("When strict alignment is on and the translation splits badly", func() {
			image2, labeler2, translator2 := collaborators("Cão e Gato e Extra")
			defer image2.Close()
			defer labeler2.Close()
			defer translator2.Close()
			cfg.LabelerURL = labeler2.URL
			cfg.TranslatorURL = translator2.URL
			cfg.StrictAlignment = true

			c, err := container.New(ctx, cfg)

			Convey("Then the invocation should fail", func() {
				So(err, ShouldBeNil)
				resp := c.Service.Invoke(ctx, service.Event{QueryParameters: map[string]string{"imageUrl": image2.URL}})
				So(resp.StatusCode, ShouldEqual, http.StatusInternalServerError)
				So(resp.Body, ShouldEqual, "Internal server error!")
			})
		})

		Convey("When the labeling service is down", func() {
			labeler.Close()

			c, err := container.New(ctx, cfg)

			Convey("Then the invocation should return 500", func() {
				So(err, ShouldBeNil)
				resp := c.Service.Invoke(ctx, service.Event{QueryParameters: map[string]string{"imageUrl": image.URL}})
				So(resp.StatusCode, ShouldEqual, http.StatusInternalServerError)
			})
		})
	})

	Convey("Given the default aws provider with a region", t, func() {
		cfg := config.New()
		cfg.AWSRegion = "us-east-1"

		Convey("When the container is built", func() {
			c, err := container.New(context.Background(), cfg)

			Convey("Then the service graph should be ready without calling AWS", func() {
				So(err, ShouldBeNil)
				So(cfg.Provider, ShouldEqual, config.ProviderAWS)
				So(c.Pipeline, ShouldNotBeNil)
				So(c.Service, ShouldNotBeNil)
			})
		})
	})

	Convey("Given an unknown provider", t, func() {
		cfg := config.New()
		cfg.Provider = "gcp"

		Convey("When the container is built", func() {
			_, err := container.New(context.Background(), cfg)

			Convey("Then it should fail", func() {
				So(errors.Is(err, container.ErrUnknownProvider), ShouldBeTrue)
			})
		})
	})
}
