package jobs

import (
	"context"
	"log/slog"

	"stockflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob periodically surfaces products at or under their minimum
// stock level. It only observes and logs; replenishment stays a human
// decision.
type LowStockAlertJob struct {
	handler queries.GetLowStockProductsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockAlertJob creates a job that checks stock levels every minute.
func NewLowStockAlertJob(handler queries.GetLowStockProductsQueryHandler, logger *slog.Logger) *LowStockAlertJob {
	return &LowStockAlertJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "low_stock_alert_job"),
	}
}

// Start begins the low-stock check at the top of every minute.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		products, err := j.handler.Handle(ctx, queries.NewGetLowStockProductsQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock check failed", "error", err)
			return
		}

		for _, p := range products {
			j.logger.WarnContext(ctx, "Product is at or under its minimum stock level",
				"productId", p.ProductID,
				"name", p.Name,
				"onHand", p.OnHandQuantity,
				"minimum", p.MinimumStockLevel)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started (running every minute)")
	return nil
}

// Stop stops the low-stock alert job.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}
