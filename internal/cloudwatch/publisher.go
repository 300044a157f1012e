package cloudwatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/acmelimited/netatmo-to-cloudwatch/internal/metrics"
)

// MaxBatchSize is the PutMetricData limit on metric data items per call.
const MaxBatchSize = 20

// dimensionName is the single dimension every datum is published under; its
// value is the source station's or module's display name.
const dimensionName = "ModuleName"

// API is the subset of the CloudWatch client the publisher uses.
type API interface {
	PutMetricData(ctx context.Context, params *cw.PutMetricDataInput, optFns ...func(*cw.Options)) (*cw.PutMetricDataOutput, error)
}

// Publisher sends batches of metric records to CloudWatch under a fixed
// namespace, one PutMetricData call per batch.
type Publisher struct {
	client    API
	namespace string
	logger    *slog.Logger
}

func NewPublisher(client API, namespace string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{client: client, namespace: namespace, logger: logger}
}

// Publish sends one batch. The batch must not exceed MaxBatchSize; an empty
// batch is a no-op.
func (p *Publisher) Publish(ctx context.Context, batch []metrics.Record) error {
	if len(batch) == 0 {
		return nil
	}
	if len(batch) > MaxBatchSize {
		return fmt.Errorf("cloudwatch: batch of %d records exceeds limit of %d", len(batch), MaxBatchSize)
	}

	data := make([]cwtypes.MetricDatum, 0, len(batch))
	for _, r := range batch {
		data = append(data, datum(r))
	}

	out, err := p.client.PutMetricData(ctx, &cw.PutMetricDataInput{
		Namespace:  aws.String(p.namespace),
		MetricData: data,
	})
	if err != nil {
		p.logger.Error("put metric data failed",
			"namespace", p.namespace,
			"size", len(batch),
			"error", err,
		)
		return fmt.Errorf("put metric data: %w", err)
	}

	requestID, _ := awsmiddleware.GetRequestIDMetadata(out.ResultMetadata)
	p.logger.Debug("batch published",
		"namespace", p.namespace,
		"size", len(batch),
		"request_id", requestID,
	)
	return nil
}

// datum converts a record to the CloudWatch shape. A nil value or timestamp
// stays unset; CloudWatch stamps such datums with the receive time.
func datum(r metrics.Record) cwtypes.MetricDatum {
	d := cwtypes.MetricDatum{
		MetricName: aws.String(r.MetricName),
		Dimensions: []cwtypes.Dimension{{
			Name:  aws.String(dimensionName),
			Value: aws.String(r.ModuleName),
		}},
		Unit: cwtypes.StandardUnitNone,
	}
	if r.Value != nil {
		d.Value = aws.Float64(*r.Value)
	}
	if r.Timestamp != nil {
		d.Timestamp = aws.Time(time.Unix(*r.Timestamp, 0).UTC())
	}
	return d
}
