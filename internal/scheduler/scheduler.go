package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tablebook/tablebook/internal/metrics"
	"github.com/tablebook/tablebook/internal/repo"
)

// Run starts a background cron that refreshes the restaurant and reservation
// count gauges every minute. Blocks until stop is closed.
func Run(restaurantRepo *repo.RestaurantRepo, reservationRepo *repo.ReservationRepo, stop <-chan struct{}) {
	c := cron.New()

	refresh := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if n, err := restaurantRepo.Count(ctx); err != nil {
			slog.Error("scheduler: count restaurants", "err", err)
		} else {
			metrics.SetRestaurantsTotal(n)
		}

		if n, err := reservationRepo.Count(ctx); err != nil {
			slog.Error("scheduler: count reservations", "err", err)
		} else {
			metrics.SetReservationsTotal(n)
		}
	}

	if _, err := c.AddFunc("* * * * *", refresh); err != nil {
		slog.Error("scheduler: add refresh job", "err", err)
		return
	}

	refresh()
	c.Start()

	<-stop
	<-c.Stop().Done()
}
