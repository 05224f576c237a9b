package backup

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const jobTimeout = 10 * time.Minute

// Scheduler runs periodic database backups on a cron expression.
type Scheduler struct {
	scheduler gocron.Scheduler
}

func NewScheduler(service Service, cronExpr string) (*Scheduler, error) {
	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					log.Error().
						Str("job_id", jobID.String()).
						Str("job_name", jobName).
						Interface("panic", recoverData).
						Msg("backup job panicked")
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	task := func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if _, err := service.Create(ctx); err != nil {
			log.Error().Err(err).Msg("scheduled backup failed")
		}
	}

	if _, err := sched.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(task),
		gocron.WithName("database-backup"),
	); err != nil {
		return nil, err
	}

	return &Scheduler{scheduler: sched}, nil
}

func (s *Scheduler) Start() {
	log.Info().Msg("backup scheduler starting")
	s.scheduler.Start()
}

func (s *Scheduler) Stop() error {
	log.Info().Msg("backup scheduler stopping")
	return s.scheduler.Shutdown()
}
