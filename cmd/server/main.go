package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Ravi-kumar178/Project-Management/internal/application/auth"
	"github.com/Ravi-kumar178/Project-Management/internal/application/note"
	"github.com/Ravi-kumar178/Project-Management/internal/application/ports"
	"github.com/Ravi-kumar178/Project-Management/internal/application/project"
	"github.com/Ravi-kumar178/Project-Management/internal/application/task"
	"github.com/Ravi-kumar178/Project-Management/internal/config"
	infraauth "github.com/Ravi-kumar178/Project-Management/internal/infrastructure/auth"
	httprouter "github.com/Ravi-kumar178/Project-Management/internal/infrastructure/http"
	"github.com/Ravi-kumar178/Project-Management/internal/infrastructure/http/handlers"
	"github.com/Ravi-kumar178/Project-Management/internal/infrastructure/http/middleware"
	"github.com/Ravi-kumar178/Project-Management/internal/infrastructure/mail"
	"github.com/Ravi-kumar178/Project-Management/internal/infrastructure/persistence/mongodb"
	"github.com/Ravi-kumar178/Project-Management/internal/infrastructure/queue"
	"github.com/Ravi-kumar178/Project-Management/internal/infrastructure/security"
	"github.com/Ravi-kumar178/Project-Management/internal/infrastructure/webhook"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfg.JWT.AccessSecret == "" || cfg.JWT.RefreshSecret == "" {
		log.Fatal().Msg("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET are required")
	}

	ctx := context.Background()
	mongoClient, err := mongodb.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to mongodb")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	db := mongoClient.Database(cfg.Mongo.Database)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	healthHandler := handlers.NewHealthHandler(mongoClient, redisClient)

	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	memberRepo := mongodb.NewMembershipRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	subTaskRepo := mongodb.NewSubTaskRepository(db)
	noteRepo := mongodb.NewNoteRepository(db)

	var emitter ports.WebhookEmitter
	if cfg.Audit.WebhookURL != "" {
		emitter = webhook.NewHTTPEmitter(cfg.Audit.WebhookURL)
	} else {
		emitter = webhook.NewNoopEmitter()
	}

	var taskEnqueuer ports.TaskEnqueuer
	var asynqWorker *queue.Worker
	if redisClient != nil {
		redisOpt, _ := redis.ParseURL(cfg.Redis.URL)
		asynqOpt := asynq.RedisClientOpt{Addr: redisOpt.Addr, Password: redisOpt.Password, DB: redisOpt.DB}
		asynqEnq, err := queue.NewAsynqEnqueuer(asynqOpt, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create asynq enqueuer")
		}
		defer asynqEnq.Close()
		taskEnqueuer = asynqEnq
		asynqWorker = queue.NewWorker(asynqOpt, emitter, log)
		go func() {
			if err := asynqWorker.Run(); err != nil {
				log.Warn().Err(err).Msg("asynq worker stopped")
			}
		}()
	} else {
		taskEnqueuer = queue.NewNoopEnqueuer()
	}

	hasher := security.NewBcryptHasher(cfg.Bcrypt.Cost)
	issuer := infraauth.NewTokenIssuer(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)

	var mailer ports.Mailer
	if cfg.Mail.APIKey != "" {
		mailer = mail.NewResendMailer(cfg.Mail.APIKey, cfg.Mail.From)
	} else {
		mailer = mail.NewLogMailer(log)
	}

	registerUC := auth.NewRegister(userRepo, hasher, mailer, cfg.Server.BaseURL, cfg.JWT.TempExpiry)
	loginUC := auth.NewLogin(userRepo, hasher, issuer)
	logoutUC := auth.NewLogout(userRepo)
	refreshUC := auth.NewRefresh(userRepo, issuer)
	verifyEmailUC := auth.NewVerifyEmail(userRepo)
	resendVerificationUC := auth.NewSendEmailVerification(userRepo, mailer, cfg.Server.BaseURL, cfg.JWT.TempExpiry)
	forgotPasswordUC := auth.NewForgotPassword(userRepo, mailer, cfg.Server.BaseURL, cfg.JWT.TempExpiry)
	resetPasswordUC := auth.NewResetPassword(userRepo, hasher)
	changePasswordUC := auth.NewChangePassword(userRepo, hasher)

	createProjectUC := project.NewCreate(projectRepo, memberRepo)
	listProjectsUC := project.NewList(projectRepo)
	getProjectUC := project.NewGet(projectRepo)
	updateProjectUC := project.NewUpdate(projectRepo)
	deleteProjectUC := project.NewDelete(projectRepo, memberRepo)
	addMemberUC := project.NewAddMember(projectRepo, memberRepo, userRepo)
	listMembersUC := project.NewListMembers(projectRepo, memberRepo)
	updateRoleUC := project.NewUpdateMemberRole(memberRepo)
	removeMemberUC := project.NewRemoveMember(memberRepo)

	createTaskUC := task.NewCreate(projectRepo, userRepo, taskRepo)
	listTasksUC := task.NewList(projectRepo, taskRepo)
	getTaskUC := task.NewGet(taskRepo)
	updateTaskUC := task.NewUpdate(userRepo, taskRepo)
	deleteTaskUC := task.NewDelete(taskRepo)
	createSubTaskUC := task.NewCreateSubTask(taskRepo, subTaskRepo)
	updateSubTaskUC := task.NewUpdateSubTask(taskRepo, subTaskRepo)
	deleteSubTaskUC := task.NewDeleteSubTask(taskRepo, subTaskRepo)

	createNoteUC := note.NewCreate(projectRepo, noteRepo)
	listNotesUC := note.NewList(projectRepo, noteRepo)
	getNoteUC := note.NewGet(noteRepo)
	updateNoteUC := note.NewUpdate(noteRepo)
	deleteNoteUC := note.NewDelete(noteRepo)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Server.IsDevelopment))
	corsMiddleware := middleware.CORS(cfg.CORS.Origins, nil, nil)

	authHandler := handlers.NewAuthHandler(
		registerUC, loginUC, logoutUC, refreshUC,
		verifyEmailUC, resendVerificationUC,
		forgotPasswordUC, resetPasswordUC, changePasswordUC,
		taskEnqueuer, log, !cfg.Server.IsDevelopment,
	)
	projectHandler := handlers.NewProjectHandler(
		createProjectUC, listProjectsUC, getProjectUC, updateProjectUC, deleteProjectUC,
		addMemberUC, listMembersUC, updateRoleUC, removeMemberUC, log,
	)
	taskHandler := handlers.NewTaskHandler(
		createTaskUC, listTasksUC, getTaskUC, updateTaskUC, deleteTaskUC,
		createSubTaskUC, updateSubTaskUC, deleteSubTaskUC, log,
	)
	noteHandler := handlers.NewNoteHandler(createNoteUC, listNotesUC, getNoteUC, updateNoteUC, deleteNoteUC, log)

	requireJWT := middleware.NewAuthValidator(issuer, userRepo).Handler
	projectGuard := middleware.NewProjectGuard(memberRepo)
	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:    authHandler,
		ProjectHandler: projectHandler,
		TaskHandler:    taskHandler,
		NoteHandler:    noteHandler,
		HealthHandler:  healthHandler,
		RequireJWT:     requireJWT,
		ProjectGuard:   projectGuard,
		Log:            log,
		Secure:         secureMiddleware,
		CORS:           corsMiddleware,
		IPRateLimit:    ipLimit,
		Metrics:        true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if asynqWorker != nil {
		asynqWorker.Shutdown()
	}
	log.Info().Msg("server stopped")
}
