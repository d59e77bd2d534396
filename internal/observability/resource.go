package observability

import (
	"context"
	"fmt"

	"github.com/sandeepkv93/biometric-attendance-backend/internal/config"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
)

// newResource describes this process to every exporter. The attendance
// timezone is attached so dashboards can tell which calendar a deployment
// buckets days in.
func newResource(ctx context.Context, cfg *config.Config, signal string) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", cfg.OTELServiceName),
			attribute.String("deployment.environment", cfg.OTELEnvironment),
			attribute.String("attendance.timezone", cfg.AttendanceTimezone),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create %s resource: %w", signal, err)
	}
	return res, nil
}
