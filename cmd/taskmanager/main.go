package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskmanager/internal/config"
	"taskmanager/internal/repository"
	"taskmanager/internal/service"
	"taskmanager/internal/shell"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	categorySvc := service.NewCategoryService(categoryRepo)
	taskSvc := service.NewTaskService(taskRepo)
	calendarSvc := service.NewCalendarService(taskRepo)
	reminderSvc := service.NewReminderService(taskRepo)

	if cfg.ReminderInterval > 0 {
		scheduler := service.NewSchedulerService(time.Local)
		if _, err := scheduler.ScheduleInterval(cfg.ReminderInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			summary, err := reminderSvc.DueSoonSummary(jobCtx, time.Now())
			if err != nil {
				log.Printf("reminder: %v", err)
				return
			}
			if summary != "" {
				log.Printf("reminder:\n%s", summary)
			}
		}); err != nil {
			log.Fatalf("schedule reminders: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	sh := shell.New(os.Stdin, os.Stdout, taskSvc, categorySvc, calendarSvc)
	if err := sh.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("shell stopped with error: %v", err)
	}
}
