package lambda_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/labelreport/internal/adapters/lambda"
	service "github.com/okian/labelreport/internal/app"
)

type fakeService struct {
	events []service.Event
	resp   service.Response
}

func (f *fakeService) Invoke(_ context.Context, ev service.Event) service.Response {
	f.events = append(f.events, ev)
	return f.resp
}

func TestHandler_Handle(t *testing.T) {
	Convey("Given a lambda handler", t, func() {
		svc := &fakeService{resp: service.Response{StatusCode: http.StatusOK, Body: "A imagem tem\n  95.20% de ser do tipo Cão"}}
		h := lambda.NewHandler(svc)

		Convey("When an API Gateway request arrives", func() {
			req := events.APIGatewayProxyRequest{
				QueryStringParameters: map[string]string{"imageUrl": "https://example.com/dog.jpg"},
				RequestContext:        events.APIGatewayProxyRequestContext{RequestID: "apigw-1"},
			}

			resp, err := h.Handle(context.Background(), req)

			Convey("Then the event should be forwarded and the response mapped", func() {
				So(err, ShouldBeNil)
				So(svc.events, ShouldHaveLength, 1)
				So(svc.events[0].QueryParameters["imageUrl"], ShouldEqual, "https://example.com/dog.jpg")
				So(svc.events[0].RequestID, ShouldEqual, "apigw-1")
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Body, ShouldEqual, "A imagem tem\n  95.20% de ser do tipo Cão")
				So(resp.Headers["Content-Type"], ShouldEqual, "text/plain; charset=utf-8")
			})
		})

		Convey("When only the lambda context has a request id", func() {
			ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{AwsRequestID: "lambda-7"})

			_, err := h.Handle(ctx, events.APIGatewayProxyRequest{})

			Convey("Then it should be used", func() {
				So(err, ShouldBeNil)
				So(svc.events[0].RequestID, ShouldEqual, "lambda-7")
				So(svc.events[0].QueryParameters, ShouldBeNil)
			})
		})

		Convey("When the service fails", func() {
			svc.resp = service.Response{StatusCode: http.StatusInternalServerError, Body: "Internal server error!"}

			resp, err := h.Handle(context.Background(), events.APIGatewayProxyRequest{})

			Convey("Then no Go error should reach the runtime", func() {
				So(err, ShouldBeNil)
				So(resp.StatusCode, ShouldEqual, http.StatusInternalServerError)
				So(resp.Body, ShouldEqual, "Internal server error!")
			})
		})
	})
}
