package travelorderworker

import (
	"context"
	"time"

	travelordershandler "hr-records-backend/lib/travel-orders"
	baseworker "hr-records-backend/lib/utils/base-worker"
)

const firstRunDelay = 30 * time.Second

type completer interface {
	CompleteFinished(now time.Time) (int, error)
}

// StartWorker автоматическое завершение командировок после даты возвращения
func StartWorker(ctx context.Context, interval time.Duration) {
	go start(ctx, travelordershandler.Instance, firstRunDelay, interval)
}

func start(ctx context.Context, orders completer, delay, interval time.Duration) {
	worker := baseworker.NewInstance("TravelOrderCompleteWorker", delay, interval)
	worker.Run(ctx, func(ctx context.Context) {
		completed, err := orders.CompleteFinished(time.Now())
		if err != nil {
			worker.GetLogger().WithError(err).Error("ошибка завершения командировок")
			return
		}
		if completed > 0 {
			worker.GetLogger().WithField("completed", completed).Info("командировки завершены")
		}
	})
}
