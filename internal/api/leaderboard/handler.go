package leaderboard

import (
	"ecotrackapi/internal/api"
	"ecotrackapi/pkg/schemas"
)

type Handler struct {
	*api.Handler
}

// rankedUser is one global/regional leaderboard row.
type rankedUser struct {
	Rank int                `json:"rank"`
	User schemas.PublicUser `json:"user"`
}
