package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"lumi-exercise-service/internal/app"
	"lumi-exercise-service/internal/config"
	"lumi-exercise-service/internal/domain"
	"lumi-exercise-service/internal/infra/memory"
	pgloader "lumi-exercise-service/internal/infra/postgres"
	redisinfra "lumi-exercise-service/internal/infra/redis"
	transport "lumi-exercise-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the exercise server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	redisTTL := config.TTLDuration(cfg.Redis.TTL, 10*time.Minute)

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	var loader memory.ExerciseLoader = memory.NewStaticExerciseLoader(sampleExercises())
	if pool != nil {
		loader = pgloader.NewExerciseLoader(pool)
	}

	contentTTL := config.TTLDuration(cfg.Content.TTL, 10*time.Minute)
	var exerciseRepo app.ExerciseRepository
	if redisClient != nil {
		exerciseRepo = redisinfra.NewExerciseRepository(redisClient, loader, contentTTL)
	} else {
		exerciseRepo = memory.NewExerciseRepository(loader, contentTTL)
	}

	var attempts app.AttemptRepository
	if redisClient != nil {
		attempts = redisinfra.NewAttemptStore(redisClient, redisTTL)
	} else {
		attempts = memory.NewAttemptStore()
	}
	service := app.NewExerciseService(attempts, exerciseRepo)
	wsHandler := transport.NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting exercise service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// sampleExercises provides demo content covering every question variant; swap
// the loader with the Postgres-backed one in production.
func sampleExercises() map[string]domain.Exercise {
	return map[string]domain.Exercise{
		"geography-1": {
			ID:    "geography-1",
			Title: "World Capitals",
			Questions: []domain.Question{
				{
					ID:     "q1",
					Prompt: "Which city is the capital of France?",
					Points: 10,
					Variant: domain.MultipleChoice{
						Options: []domain.Option{
							{ID: "a", Text: "Lyon"},
							{ID: "b", Text: "Paris"},
							{ID: "c", Text: "Marseille"},
						},
						CorrectOptionID: "b",
					},
				},
				{
					ID:      "q2",
					Prompt:  "The Nile is the longest river in the world.",
					Points:  10,
					Variant: domain.TrueOrFalse{Answer: true},
				},
				{
					ID:      "q3",
					Prompt:  "Type the capital of Japan.",
					Points:  10,
					Variant: domain.FillInBlank{Answer: "Tokyo"},
				},
				{
					ID:      "q4",
					Prompt:  "Describe your favorite country in one sentence.",
					Points:  10,
					Variant: domain.ShortAnswer{Keywords: []string{"country", "because"}},
				},
				{
					ID:      "q5",
					Prompt:  "Say the name of your home town out loud.",
					Points:  10,
					Variant: domain.Speaking{Guidance: "Speak slowly and clearly."},
				},
			},
		},
	}
}
