// Package metrics emits best-effort CloudWatch datapoints for the order
// workflow. Failures are reported to the caller for logging, never surfaced
// to API clients.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/marketloop/commerce-backend/internal/aws"
)

// Recorder publishes metrics under a single namespace.
type Recorder struct {
	client    aws.CloudWatchAPI
	namespace string
	nowFunc   func() time.Time
}

// NewRecorder returns a Recorder bound to a namespace.
func NewRecorder(client aws.CloudWatchAPI, namespace string) *Recorder {
	return &Recorder{
		client:    client,
		namespace: namespace,
		nowFunc:   time.Now,
	}
}

// OrderPlaced records one placement with its total and line-item count.
func (r *Recorder) OrderPlaced(ctx context.Context, total float64, itemCount int) error {
	now := r.nowFunc()
	one := 1.0
	totalValue := total
	items := float64(itemCount)

	_, err := r.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: &r.namespace,
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: strPtr("OrdersPlaced"),
				Timestamp:  &now,
				Unit:       cwtypes.StandardUnitCount,
				Value:      &one,
			},
			{
				MetricName: strPtr("OrderTotal"),
				Timestamp:  &now,
				Unit:       cwtypes.StandardUnitNone,
				Value:      &totalValue,
			},
			{
				MetricName: strPtr("OrderLineItems"),
				Timestamp:  &now,
				Unit:       cwtypes.StandardUnitCount,
				Value:      &items,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}

func strPtr(s string) *string { return &s }
