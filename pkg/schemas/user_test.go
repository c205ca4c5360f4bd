package schemas

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAchievementNames(t *testing.T) {

	t.Parallel()

	tests := []struct {
		name         string
		achievements []Achievement
		want         []string
	}{
		{name: "none held", achievements: nil, want: []string{}},
		{
			name: "single",
			achievements: []Achievement{
				{Name: "First Century", DateEarned: time.Now()},
			},
			want: []string{"First Century"},
		},
		{
			name: "preserves order",
			achievements: []Achievement{
				{Name: "First Century"},
				{Name: "Eco Warrior"},
				{Name: "Green Champion"},
			},
			want: []string{"First Century", "Eco Warrior", "Green Champion"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			u := &User{Achievements: tc.achievements}
			assert.Equal(t, tc.want, u.AchievementNames())
		})
	}

}

func TestUserJSONHidesSensitiveFields(t *testing.T) {

	t.Parallel()

	u := &User{
		Username: "ecofan",
		Email:    "eco@example.com",
		PassHash: "$2a$12$notarealhash",
		Ctime:    time.Now(),
	}

	data, err := json.Marshal(u)
	require.NoError(t, err)

	out := string(data)
	assert.NotContains(t, out, "notarealhash")
	assert.NotContains(t, out, "passHash")
	assert.NotContains(t, out, "ctime")
	assert.Contains(t, out, "ecofan")

}

func TestPublicUserOmitsPrivateFields(t *testing.T) {

	t.Parallel()

	data, err := json.Marshal(&PublicUser{Username: "ecofan"})
	require.NoError(t, err)

	out := strings.ToLower(string(data))
	assert.NotContains(t, out, "email")
	assert.NotContains(t, out, "isadmin")
	assert.NotContains(t, out, "notifications")

}
