package seed

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campushub/internal/app/models"
)

var fixedNow = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

func TestDefaultsValidate(t *testing.T) {
	p := NewStaticProvider(func() time.Time { return fixedNow })
	d := p.Defaults()

	for _, key := range models.TrackedKeys {
		t.Run(string(key), func(t *testing.T) {
			field := d.Field(key)
			require.NotNil(t, field)
			require.NoError(t, field.Validate())
		})
	}
}

func TestDefaultsShape(t *testing.T) {
	p := NewStaticProvider(func() time.Time { return fixedNow })
	d := p.Defaults()

	require.Equal(t, "user1", d.CurrentUser.ID)
	require.Empty(t, d.BlockedUsers)
	require.Len(t, d.ChatMessages, 10)
	require.Len(t, d.MarketplaceItems, 6)
	require.Len(t, d.QnaPosts, 4)
	require.Len(t, d.Resources.Visual, 4)
	require.Len(t, d.Resources.Text, 4)
	require.Len(t, d.Hostels, 6)
	require.Len(t, d.Achievements, 8)
	require.Len(t, d.Achievements.Earned(), 5)
	require.Len(t, d.Announcements, 5)
	require.Len(t, p.Users(), 10)

	now := fixedNow.UnixMilli()
	require.Equal(t, now-3600000, d.ChatMessages[0].Timestamp)
	require.Equal(t, now-900000, d.ChatMessages[9].Timestamp)
	require.Equal(t, now-86400000, d.Announcements[0].Date)

	raw, err := json.Marshal(d.ChatMessages[2])
	require.NoError(t, err)
	require.Contains(t, string(raw), `"reactions":{}`)

	raw, err = json.Marshal(d.BlockedUsers)
	require.NoError(t, err)
	require.Equal(t, "[]", string(raw))
}

func TestDefaultsAreIndependentCopies(t *testing.T) {
	p := NewStaticProvider(func() time.Time { return fixedNow })
	a := p.Defaults()
	b := p.Defaults()

	a.ChatMessages[0].Reactions["like"] = 99
	a.MarketplaceItems[0].Tags[0] = "changed"
	require.Equal(t, 3, b.ChatMessages[0].Reactions["like"])

	if diff := cmp.Diff(b, p.Defaults()); diff != "" {
		t.Fatalf("defaults changed between calls (-first +second):\n%s", diff)
	}
}

func TestChatAuthorsAreKnownUsers(t *testing.T) {
	p := NewStaticProvider(nil)
	known := map[string]bool{}
	for _, u := range p.Users() {
		known[u.ID] = true
	}
	for _, m := range p.Defaults().ChatMessages {
		require.True(t, known[m.UserID], "unknown author %s", m.UserID)
	}
	require.Len(t, ChatPhrases, 8)
}
