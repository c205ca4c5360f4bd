package schemas

import (
	"time"

	"ecotrackapi/pkg/ecoscore"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Action is a single logged eco activity. Points are fixed at creation and
// immutable once the action is verified; impact is either caller-supplied or
// derived from the per-type multiplier table at creation time.
type Action struct {
	Id               bson.ObjectID   `bson:"_id,omitempty" json:"id"`
	Ctime            time.Time       `bson:"ctime" json:"-"`
	Mtime            time.Time       `bson:"mtime" json:"-"`
	User             bson.ObjectID   `bson:"user" json:"user"`
	Type             string          `bson:"type" json:"type"`
	Title            string          `bson:"title" json:"title"`
	Description      string          `bson:"description" json:"description"`
	Points           int             `bson:"points" json:"points"`
	Impact           ecoscore.Impact `bson:"impact" json:"impact"`
	ProofImage       string          `bson:"proofImage,omitempty" json:"proofImage,omitempty"`
	IsVerified       bool            `bson:"isVerified" json:"isVerified"`
	VerifiedBy       *bson.ObjectID  `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`
	VerificationDate *time.Time      `bson:"verificationDate,omitempty" json:"verificationDate,omitempty"`
	Location         string          `bson:"location,omitempty" json:"location,omitempty"`
	Tags             []string        `bson:"tags" json:"tags"`
	Date             time.Time       `bson:"date" json:"date"`
}

// LeaderboardEntry is one ranked row. Stats carries whichever score the scope
// computes (total points, category points, monthly points).
type LeaderboardEntry struct {
	Rank  int        `bson:"-" json:"rank"`
	User  PublicUser `bson:"user" json:"user"`
	Stats ScoreStats `bson:"stats" json:"stats"`
}

type ScoreStats struct {
	Points      int     `bson:"points" json:"points"`
	Actions     int     `bson:"actions" json:"actions"`
	TotalImpact float64 `bson:"totalImpact" json:"totalImpact"`
}
