package sstf

import (
	"io"

	"github.com/infinivision/sstf/constant"
	"github.com/infinivision/sstf/elevator"
	"github.com/infinivision/sstf/queue"
	"github.com/infinivision/sstf/scheduler"
)

// The scheduler registers under its fixed name when the package is
// loaded and device queues bind to it by name at attachment.
func init() {
	elevator.Register(constant.SchedulerName, func(q queue.Queue, sub scheduler.Submitter, tw io.Writer) (scheduler.Scheduler, error) {
		return scheduler.New(q, sub, tw)
	})
}

type Config = elevator.Config

func DefaultConfig() Config {
	return elevator.DefaultConfig()
}

// Attach binds an sstf scheduler to a new device queue backed by
// cfg.Path.
func Attach(cfg Config) (elevator.Queue, error) {
	return elevator.Attach(cfg)
}
