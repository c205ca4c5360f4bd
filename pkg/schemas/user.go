package schemas

import (
	"time"

	"ecotrackapi/pkg/ecoscore"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Location struct {
	Country string `bson:"country,omitempty" json:"country,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	Region  string `bson:"region,omitempty" json:"region,omitempty"`
}

// Achievement is a badge earned once; uniqueness by name is enforced by the
// guarded $push in userutils.GrantAchievements.
type Achievement struct {
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Icon        string    `bson:"icon" json:"icon"`
	DateEarned  time.Time `bson:"dateEarned" json:"dateEarned"`
}

type NotificationPrefs struct {
	Email        bool `bson:"email" json:"email"`
	Achievements bool `bson:"achievements" json:"achievements"`
	Leaderboard  bool `bson:"leaderboard" json:"leaderboard"`
}

type User struct {
	Id             bson.ObjectID     `bson:"_id,omitempty" json:"id"`
	Ctime          time.Time         `bson:"ctime" json:"-"`
	Username       string            `bson:"username" json:"username"`
	Email          string            `bson:"email" json:"email"`
	PassHash       string            `bson:"passHash" json:"-"`
	FirstName      string            `bson:"firstName" json:"firstName"`
	LastName       string            `bson:"lastName" json:"lastName"`
	ProfilePicture string            `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	TotalPoints    int               `bson:"totalPoints" json:"totalPoints"`
	Level          ecoscore.Level    `bson:"level" json:"level"`
	Achievements   []Achievement     `bson:"achievements" json:"achievements"`
	Location       Location          `bson:"location,omitempty" json:"location,omitempty"`
	Notifications  NotificationPrefs `bson:"notifications" json:"notifications"`
	JoinDate       time.Time         `bson:"joinDate" json:"joinDate"`
	LastLogin      time.Time         `bson:"lastLogin" json:"lastLogin"`
	IsActive       bool              `bson:"isActive" json:"isActive"`
	IsAdmin        bool              `bson:"isAdmin" json:"isAdmin"`
}

// AchievementNames is the held-badge list fed to ecoscore.EvaluateAchievements.
func (u *User) AchievementNames() []string {
	names := make([]string, len(u.Achievements))
	for i, a := range u.Achievements {
		names[i] = a.Name
	}
	return names
}

// PublicUser is the projection exposed on leaderboards: no email, no
// preferences, no admin flags.
type PublicUser struct {
	Id             bson.ObjectID  `bson:"_id" json:"id"`
	Username       string         `bson:"username" json:"username"`
	FirstName      string         `bson:"firstName" json:"firstName"`
	LastName       string         `bson:"lastName" json:"lastName"`
	ProfilePicture string         `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	TotalPoints    int            `bson:"totalPoints" json:"totalPoints"`
	Level          ecoscore.Level `bson:"level" json:"level"`
	Location       Location       `bson:"location,omitempty" json:"location,omitempty"`
	JoinDate       time.Time      `bson:"joinDate" json:"joinDate"`
}
