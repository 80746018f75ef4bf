package main

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"employee-records-api/internal/handlers"
	pkglambda "employee-records-api/pkg/lambda"
)

func handler(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	container, err := pkglambda.GetContainerManager().GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
		return events.LambdaFunctionURLResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	container.Logger.WithFields(logrus.Fields{
		"method": event.RequestContext.HTTP.Method,
		"path":   event.RequestContext.HTTP.Path,
	}).Info("Received event")

	body := []byte(event.Body)
	if event.IsBase64Encoded {
		if decoded, err := base64.StdEncoding.DecodeString(event.Body); err == nil {
			body = decoded
		}
	}

	// The raw envelope is kept for the info echo endpoint
	rawEvent, _ := json.Marshal(event)

	req := &pkglambda.Request{
		Method:      event.RequestContext.HTTP.Method,
		Path:        event.RequestContext.HTTP.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        body,
		RawEvent:    rawEvent,
	}

	employeeHandler := handlers.NewEmployeeHandler(container.EmployeeService, container.Logger)
	resp := employeeHandler.Route(ctx, req)

	return events.LambdaFunctionURLResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

func main() {
	awslambda.Start(handler)
}
