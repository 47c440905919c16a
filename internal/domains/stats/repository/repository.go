package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/stats/model"
	"hotel/shared/constant"
	"hotel/shared/logger"
)

var queries = map[model.Metric]string{
	model.MetricTotalBookings:     "SELECT COUNT(*) FROM bookings WHERE status <> 'Cancelled'",
	model.MetricRoomsAvailable:    "SELECT COUNT(*) FROM rooms WHERE available = TRUE",
	model.MetricPendingComplaints: "SELECT COUNT(*) FROM complaints WHERE status = 'Pending'",
	model.MetricActiveStaff:       "SELECT COUNT(*) FROM staff",
}

type Stats interface {
	Count(ctx context.Context, metric model.Metric) (int64, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Stats {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// Count runs the counter query of the metric. A NULL result counts as zero.
func (r *repositoryImpl) Count(ctx context.Context, metric model.Metric) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".stats.Count")
	defer scope.End()

	query, ok := queries[metric]
	if !ok {
		return 0, fmt.Errorf("unknown dashboard metric %q", metric)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count sql.NullInt64

	if err := r.db.Read.GetContext(ctx, &count, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count %s: %w", metric, err)
	}

	return count.Int64, nil
}
