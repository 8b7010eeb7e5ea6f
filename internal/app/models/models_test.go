package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAchievementEarnedDateInvariant(t *testing.T) {
	require.NoError(t, Achievement{ID: "a", Progress: 100, Earned: true, EarnedDate: "2023-01-15"}.Validate())
	require.NoError(t, Achievement{ID: "a", Progress: 60}.Validate())
	require.Error(t, Achievement{ID: "a", Progress: 100, Earned: true}.Validate())
	require.Error(t, Achievement{ID: "a", Progress: 60, EarnedDate: "2023-01-15"}.Validate())
	require.Error(t, Achievement{ID: "a", Progress: 101}.Validate())
	require.Error(t, Achievement{ID: "a", Progress: -1}.Validate())
}

func TestCollectionsRejectDuplicateIDs(t *testing.T) {
	msgs := ChatMessages{{ID: "m1", UserID: "user1"}, {ID: "m1", UserID: "user2"}}
	require.Error(t, msgs.Validate())

	blocked := BlockedUsers{"user2", "user2"}
	require.Error(t, blocked.Validate())

	lib := ResourceLibrary{
		Visual: []Resource{{ID: "r1", Title: "a", URL: "https://x"}},
		Text:   []Resource{{ID: "r1", Title: "b", FileName: "b.pdf"}},
	}
	require.Error(t, lib.Validate())
}

func TestChatMessageReactionsNonNegative(t *testing.T) {
	require.NoError(t, ChatMessage{ID: "m1", UserID: "user1", Reactions: map[string]int{"like": 0}}.Validate())
	require.Error(t, ChatMessage{ID: "m1", UserID: "user1", Reactions: map[string]int{"like": -1}}.Validate())
}

func TestMarketplaceItemValidation(t *testing.T) {
	ok := MarketplaceItem{ID: "i1", Title: "Bike", Price: 0, Condition: ConditionFair}
	require.NoError(t, ok.Validate())

	neg := ok
	neg.Price = -5
	require.Error(t, neg.Validate())

	bad := ok
	bad.Condition = "Broken"
	require.Error(t, bad.Validate())
}

func TestHostelReviewRatingRange(t *testing.T) {
	h := Hostel{ID: "h1", Name: "Heights", Rating: 4.5, Reviews: []Review{{ID: "r1", Rating: 5}}}
	require.NoError(t, h.Validate())
	h.Reviews[0].Rating = 0
	require.Error(t, h.Validate())
}

func TestAnnouncementPriority(t *testing.T) {
	require.NoError(t, Announcements{{ID: "a1", Priority: PriorityLow}}.Validate())
	require.Error(t, Announcements{{ID: "a1", Priority: "urgent"}}.Validate())
}

func TestBlockedUsersSetSemantics(t *testing.T) {
	var b BlockedUsers
	b = b.With("user3")
	b = b.With("user3")
	require.Equal(t, BlockedUsers{"user3"}, b)

	b = b.Without("user9")
	require.Equal(t, BlockedUsers{"user3"}, b)

	b = b.Without("user3")
	require.Empty(t, b)

	data, err := json.Marshal(b)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestChatMessageCloneIsDeep(t *testing.T) {
	orig := ChatMessages{{ID: "m1", UserID: "u", Reactions: map[string]int{"like": 1}}}
	cp := orig.Clone()
	cp[0].Reactions["like"] = 5
	require.Equal(t, 1, orig[0].Reactions["like"])

	empty := ChatMessage{ID: "m2", UserID: "u"}.Clone()
	data, err := json.Marshal(empty)
	require.NoError(t, err)
	require.Contains(t, string(data), `"reactions":{}`)
}

func TestParsePage(t *testing.T) {
	p, ok := ParsePage("chat")
	require.True(t, ok)
	require.Equal(t, PageChat, p)
	require.Equal(t, "#chat", p.Fragment())

	p, ok = ParsePage("settings")
	require.False(t, ok)
	require.Equal(t, PageDashboard, p)
}
