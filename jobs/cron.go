package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// OccupancyRecalculator rebuilds room occupancy counters from the
// stored assignments.
type OccupancyRecalculator interface {
	RecalculateOccupancy(ctx context.Context) error
}

var occupancyRecalculator OccupancyRecalculator

func SetOccupancyRecalculator(r OccupancyRecalculator) {
	occupancyRecalculator = r
}

// InitCronJobs registers the nightly occupancy repair and starts the
// scheduler.
func InitCronJobs(c *cron.Cron) error {
	_, err := c.AddFunc("0 0 * * *", func() {
		log.Printf("Running nightly occupancy recalculation at: %v", time.Now())
		if occupancyRecalculator == nil {
			log.Printf("Occupancy recalculator is not configured")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := occupancyRecalculator.RecalculateOccupancy(ctx); err != nil {
			log.Printf("Occupancy recalculation failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
