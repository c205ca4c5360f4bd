package main

import (
	"context"
	"net/http"
	"regexp"

	"ecotrackapi/internal/api"
	"ecotrackapi/internal/api/action"
	"ecotrackapi/internal/api/admin"
	"ecotrackapi/internal/api/auth"
	"ecotrackapi/internal/api/leaderboard"
	"ecotrackapi/pkg/config"
	"ecotrackapi/pkg/ecoscore"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {

	ctx := context.Background()
	h := &api.Handler{}

	// init logger
	logger, err := zap.NewDevelopment(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)

	if err != nil {
		panic(err)
	}
	logger.Info("Server starting...")
	defer logger.Sync()
	h.Logger = logger

	// init validator
	h.Validate = validator.New()
	h.Validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		username := fl.Field().String()
		re := regexp.MustCompile(`^[a-zA-Z0-9]{3,30}$`)
		return re.MatchString(username)
	})

	h.Validate.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		password := fl.Field().String()
		if len(password) < 6 || len(password) > 128 {
			return false
		}
		hasLower := regexp.MustCompile(`[a-z]`).MatchString(password)
		hasUpper := regexp.MustCompile(`[A-Z]`).MatchString(password)
		hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)
		return hasLower && hasUpper && hasDigit
	})

	h.Validate.RegisterValidation("actiontype", func(fl validator.FieldLevel) bool {
		_, err := ecoscore.ParseActionType(fl.Field().String())
		return err == nil
	})

	// init mongo
	mongoServerAPI := options.ServerAPI(options.ServerAPIVersion1)
	mongoOpts := options.Client().ApplyURI(config.ENV.MONGO_URI).SetServerAPIOptions(mongoServerAPI)
	mongoCli, err := mongo.Connect(mongoOpts)
	if err != nil {
		panic(err)
	}
	defer func() {
		if err = mongoCli.Disconnect(ctx); err != nil {
			panic(err)
		}
	}()
	if err := mongoCli.Ping(ctx, readpref.Primary()); err != nil {
		panic(err)
	}
	h.MongoDB = mongoCli.Database(config.MONGO_DB)

	// init redis
	h.RedisCli = redis.NewClient(&redis.Options{
		Addr:     config.ENV.REDIS_ADDR,
		Password: config.ENV.REDIS_PASSWORD,
		DB:       0,
	})

	// init aws ses
	sesCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion("us-east-1"))
	if err != nil {
		panic(err)
	}
	h.AWSSESCli = ses.NewFromConfig(sesCfg)

	// init s3
	cred := credentials.NewStaticCredentialsProvider(
		config.ENV.S3_ACCESS_KEY,
		config.ENV.S3_SECRET_KEY,
		"",
	)
	h.S3Cli = s3.New(s3.Options{
		Credentials:  cred,
		BaseEndpoint: aws.String(config.ENV.S3_ENDPOINT),
		UsePathStyle: true,
		Region:       "auto",
	})

	router := chi.NewRouter()

	// Middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{config.ORIGIN},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestSize(8 << 20)) // base64 proof images ride in the body

	authH := &auth.Handler{Handler: h}
	actionH := &action.Handler{Handler: h}
	leaderboardH := &leaderboard.Handler{Handler: h}
	adminH := &admin.Handler{Handler: h}

	// auth endpoints
	router.Post("/auth/register", authH.Register)
	router.Post("/auth/login", authH.Login)
	router.Get("/auth/me", h.AuthMiddleware(authH.GetMe))
	router.Put("/auth/profile", h.AuthMiddleware(authH.UpdateProfile))
	router.Put("/auth/change-password", h.AuthMiddleware(authH.ChangePassword))
	router.Post("/auth/upload-avatar", h.AuthMiddleware(authH.UploadAvatar))
	router.Delete("/auth/account", h.AuthMiddleware(authH.DeleteAccount))

	// action endpoints
	router.Post("/actions", h.AuthMiddleware(actionH.CreateAction))
	router.Get("/actions", h.AuthMiddleware(actionH.ListActions))
	router.Get("/actions/types", h.AuthMiddleware(actionH.ActionTypes))
	router.Get("/actions/impact/stats", h.AuthMiddleware(actionH.ImpactStats))
	router.Get("/actions/{id}", h.AuthMiddleware(actionH.GetAction))
	router.Put("/actions/{id}", h.AuthMiddleware(actionH.UpdateAction))
	router.Delete("/actions/{id}", h.AuthMiddleware(actionH.DeleteAction))

	// leaderboard endpoints
	router.Get("/leaderboard/global", h.AuthMiddleware(leaderboardH.GetGlobal))
	router.Get("/leaderboard/regional", h.AuthMiddleware(leaderboardH.GetRegional))
	router.Get("/leaderboard/monthly", h.AuthMiddleware(leaderboardH.GetMonthly))
	router.Get("/leaderboard/stats", h.AuthMiddleware(leaderboardH.GetStats))
	router.Get("/leaderboard/category/{type}", h.AuthMiddleware(leaderboardH.GetCategory))

	// admin endpoints
	router.Get("/admin/stats", h.AdminMiddleware(adminH.DashboardStats))
	router.Get("/admin/users", h.AdminMiddleware(adminH.ListUsers))
	router.Get("/admin/users/{id}", h.AdminMiddleware(adminH.GetUserDetails))
	router.Put("/admin/users/{id}/status", h.AdminMiddleware(adminH.UpdateUserStatus))
	router.Get("/admin/actions", h.AdminMiddleware(adminH.ListActions))
	router.Put("/admin/actions/{id}/verify", h.AdminMiddleware(adminH.VerifyAction))
	router.Delete("/admin/actions/{id}", h.AdminMiddleware(adminH.DeleteAction))

	logger.Info("Server running on port 8080")
	if err := http.ListenAndServe(":8080", router); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}

}
