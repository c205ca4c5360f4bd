package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	ORIGIN   = "http://localhost:5173"
	MONGO_DB = "EcoTrackDev"

	UPLOAD_BUCKET = "ecotrack-uploads-dev"

	DEFAULT_PAGE_LIMIT = 50
	MAX_PAGE_LIMIT     = 100
	MONTHLY_TOP_COUNT  = 20

	LEADERBOARD_CACHE_KEY = "leaderboard:global"

	MAX_PROOF_IMAGE_BYTES  = 5 << 20
	MAX_AVATAR_IMAGE_BYTES = 2 << 20
)

type EnvVars struct {
	MONGO_URI             string
	REDIS_ADDR            string
	REDIS_PASSWORD        string
	JWT_SECRET            string
	S3_ACCESS_KEY         string
	S3_SECRET_KEY         string
	S3_ENDPOINT           string
	AWS_ACCESS_KEY_ID     string
	AWS_SECRET_ACCESS_KEY string
	SES_SENDER            string
}

var ENV *EnvVars

func init() {

	prod := os.Getenv("ENV") == "prod"

	if !prod {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file loaded:", err)
		}
	}

	ENV = &EnvVars{
		MONGO_URI:             os.Getenv("MONGO_URI"),
		REDIS_ADDR:            os.Getenv("REDIS_ADDR"),
		REDIS_PASSWORD:        os.Getenv("REDIS_PASSWORD"),
		JWT_SECRET:            os.Getenv("JWT_SECRET"),
		S3_ACCESS_KEY:         os.Getenv("S3_ACCESS_KEY"),
		S3_SECRET_KEY:         os.Getenv("S3_SECRET_KEY"),
		S3_ENDPOINT:           os.Getenv("S3_ENDPOINT"),
		AWS_ACCESS_KEY_ID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWS_SECRET_ACCESS_KEY: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SES_SENDER:            os.Getenv("SES_SENDER"),
	}

}
