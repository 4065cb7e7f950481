package types

import "errors"

var (
	ErrNoBillingData       = errors.New("no billing data available for the billing period")
	ErrNoWebhookConfigured = errors.New("SLACK_WEBHOOK_URL is not configured")
	ErrNoBucketConfigured  = errors.New("S3_BUCKET is not configured")
)
