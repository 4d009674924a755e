package main

import (
	"os"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	httpadp "approvalflow-backend/internal/adapter/http"
	appmw "approvalflow-backend/internal/adapter/middleware"
	"approvalflow-backend/internal/adapter/repository/mysql"
	"approvalflow-backend/internal/config"
	"approvalflow-backend/internal/infrastructure/cache"
	"approvalflow-backend/internal/infrastructure/db"
	"approvalflow-backend/internal/notify"
	commentuc "approvalflow-backend/internal/usecase/comment"
	delegationuc "approvalflow-backend/internal/usecase/delegation"
	requestuc "approvalflow-backend/internal/usecase/request"
	workflowuc "approvalflow-backend/internal/usecase/workflow"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "approvalflow").Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("open mysql")
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		logger.Fatal().Err(err).Msg("open redis")
	}

	workflowRepo := mysql.NewWorkflowRepository(gdb)
	requestRepo := mysql.NewRequestRepository(gdb)
	delegationRepo := mysql.NewDelegationRepository(gdb)
	commentRepo := mysql.NewCommentRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	notifier := notify.Multi{
		notify.NewLogNotifier(logger),
		notify.NewRedisNotifier(rdb, cfg.EventChannel, logger),
	}

	delegationUC := delegationuc.NewUsecase(delegationRepo)
	workflowUC := workflowuc.NewUsecase(workflowRepo, unit)
	requestUC := requestuc.NewUsecase(workflowRepo, requestRepo, delegationUC, unit, notifier)
	commentUC := commentuc.NewUsecase(commentRepo, requestRepo)

	h := httpadp.NewHandler()
	wfH := httpadp.NewWorkflowHandler(workflowUC)
	reqH := httpadp.NewRequestHandler(requestUC)
	dgH := httpadp.NewDelegationHandler(delegationUC)
	cmH := httpadp.NewCommentHandler(commentUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	idem := appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	wf := e.Group("/v1/workflows")
	wf.POST("", wfH.Create, idem)
	wf.GET("", wfH.List)
	wf.GET("/:code", wfH.Get)
	wf.PATCH("/:code", wfH.Update, idem)
	wf.DELETE("/:code", wfH.Delete, idem)
	wf.POST("/:code/steps", wfH.AddStep, idem)
	wf.POST("/:code/steps/reorder", wfH.ReorderSteps, idem)
	wf.GET("/:code/steps/validate", wfH.ValidateSteps)

	rq := e.Group("/v1/requests")
	rq.POST("", reqH.Create, idem)
	rq.GET("", reqH.List)
	rq.GET("/mine", reqH.ListMine)
	rq.GET("/pending", reqH.ListPending)
	rq.GET("/:request_id", reqH.Get)
	rq.POST("/:request_id/actions", reqH.TakeAction, idem)
	rq.POST("/:request_id/withdraw", reqH.Withdraw, idem)
	rq.POST("/:request_id/comments", cmH.Create, idem)
	rq.GET("/:request_id/comments", cmH.Thread)

	cm := e.Group("/v1/comments")
	cm.PATCH("/:comment_id", cmH.Update, idem)
	cm.DELETE("/:comment_id", cmH.Delete, idem)

	dg := e.Group("/v1/delegations")
	dg.POST("", dgH.Create, idem)
	dg.GET("", dgH.ListMine)
	dg.GET("/active", dgH.ListActive)
	dg.POST("/:delegation_id/deactivate", dgH.Deactivate, idem)
	dg.DELETE("/:delegation_id", dgH.Delete, idem)
	dg.POST("/cleanup", dgH.CleanupExpired, idem)

	addr := ":" + cfg.AppPort
	logger.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
