package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"todoapp/internal/config"
	"todoapp/internal/repository"
	"todoapp/internal/service"
	"todoapp/internal/web"
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

	gw := repository.NewGateway(db)
	userRepo := repository.NewUserRepository(gw)
	priorityRepo := repository.NewPriorityRepository(gw)
	categoryRepo := repository.NewCategoryRepository(gw)
	taskRepo := repository.NewTaskRepository(gw)

	userSvc := service.NewUserService(userRepo)
	prioritySvc := service.NewPriorityService(priorityRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	taskSvc := service.NewTaskService(taskRepo, userRepo, priorityRepo, categoryRepo)

	e := echo.New()
	e.HideBanner = true
	handler := web.NewHandler(taskSvc, userSvc, prioritySvc, categorySvc, []byte(cfg.JWTSecret), cfg.TokenTTL)
	handler.Register(e)

	go func() {
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	log.Println("Task tracker started.")
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("Shutdown complete.")
}
