package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ecotrackapi/pkg/config"
	"ecotrackapi/pkg/schemas"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const REFRESH_INTERVAL = time.Second * 30

type snapshotEntry struct {
	Rank int                `json:"rank"`
	User schemas.PublicUser `json:"user"`
}

type snapshot struct {
	Entries []snapshotEntry `json:"entries"`
	Total   int             `json:"total"`
}

// Keeps the default global leaderboard page warm in redis so the API can
// serve it without touching mongo. The API falls back to a direct query
// when the key is missing, so a crashed refresher degrades, not breaks.
func main() {

	ctx := context.Background()

	mongoServerAPI := options.ServerAPI(options.ServerAPIVersion1)
	mongoOpts := options.Client().ApplyURI(config.ENV.MONGO_URI).SetServerAPIOptions(mongoServerAPI)
	mongoCli, err := mongo.Connect(mongoOpts)
	if err != nil {
		panic(err)
	}
	defer mongoCli.Disconnect(ctx)
	usersCollection := mongoCli.Database(config.MONGO_DB).Collection("users")

	redisCli := redis.NewClient(&redis.Options{
		Addr:     config.ENV.REDIS_ADDR,
		Password: config.ENV.REDIS_PASSWORD,
		DB:       0,
	})

	log.Println("Starting leaderboard refresher")

	for {

		if err := refresh(ctx, usersCollection, redisCli); err != nil {
			log.Printf("refresh error: %v", err)
		}

		time.Sleep(REFRESH_INTERVAL)

	}

}

func refresh(ctx context.Context, usersCollection *mongo.Collection, redisCli *redis.Client) error {

	filter := bson.M{"isActive": true}

	total, err := usersCollection.CountDocuments(ctx, filter)
	if err != nil {
		return err
	}

	findOpts := options.Find().
		SetProjection(bson.M{
			"username":       1,
			"firstName":      1,
			"lastName":       1,
			"profilePicture": 1,
			"totalPoints":    1,
			"level":          1,
			"location":       1,
			"joinDate":       1,
		}).
		SetSort(bson.D{{Key: "totalPoints", Value: -1}}).
		SetLimit(config.DEFAULT_PAGE_LIMIT)

	cursor, err := usersCollection.Find(ctx, filter, findOpts)
	if err != nil {
		return err
	}
	users := []schemas.PublicUser{}
	if err := cursor.All(ctx, &users); err != nil {
		return err
	}

	entries := make([]snapshotEntry, len(users))
	for i, u := range users {
		entries[i] = snapshotEntry{Rank: i + 1, User: u}
	}

	data, err := json.Marshal(&snapshot{Entries: entries, Total: int(total)})
	if err != nil {
		return err
	}

	return redisCli.Set(ctx, config.LEADERBOARD_CACHE_KEY, data, time.Minute*2).Err()

}
