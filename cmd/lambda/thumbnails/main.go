package main

import (
	"context"
	"net/url"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"employee-records-api/internal/adapters/storage"
	"employee-records-api/internal/config"
	"employee-records-api/internal/thumbnail"
)

var processor *thumbnail.Processor

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	client, err := storage.NewS3Client(context.Background())
	if err != nil {
		panic("Failed to initialize S3 client: " + err.Error())
	}

	processor = thumbnail.NewProcessor(storage.NewS3Storage(client), thumbnail.Options{
		DestBucket: cfg.Thumbnail.DestBucket,
		Prefix:     cfg.Thumbnail.Prefix,
		BoxWidth:   cfg.Thumbnail.BoxWidth,
		BoxHeight:  cfg.Thumbnail.BoxHeight,
	}, logger)
}

// handler resizes every object named in the notification. Undecodable
// objects are skipped without failing the invocation; an upload failure
// surfaces so platform-level redelivery can retry it.
func handler(ctx context.Context, event events.S3Event) error {
	for _, record := range event.Records {
		bucket := record.S3.Bucket.Name

		// Object keys arrive percent-encoded with '+' for spaces
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			logrus.WithError(err).WithField("key", record.S3.Object.Key).Warn("Unable to decode object key, skipping")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"bucket": bucket,
			"key":    key,
		}).Info("Uploaded image received")

		result := processor.Process(ctx, bucket, key)
		if result.Outcome == thumbnail.OutcomeFailed {
			return result.Err
		}
	}

	return nil
}

func main() {
	awslambda.Start(handler)
}
