package renderers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/state"
	"github.com/yigit/campushub/internal/seed"
)

var fixedNow = time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)

func seedSnapshot() state.Snapshot {
	p := seed.NewStaticProvider(func() time.Time { return fixedNow })
	return state.Snapshot{AppData: p.Defaults(), Users: p.Users(), Stats: p.Stats(), Now: fixedNow}
}

func messageIDs(views []dto.ChatMessageView) []string {
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	return ids
}

func TestFormatTimeAgo(t *testing.T) {
	now := fixedNow
	ms := now.UnixMilli()
	tests := []struct {
		name string
		ts   int64
		want string
	}{
		{"just now", ms - 30*1000, "just now"},
		{"future", ms + 60*1000, "just now"},
		{"one minute", ms - 60*1000, "1 minute ago"},
		{"minutes", ms - 15*60*1000, "15 minutes ago"},
		{"hour", ms - 3600*1000, "1 hour ago"},
		{"days", ms - 2*86400*1000, "2 days ago"},
		{"weeks", ms - 15*86400*1000, "2 weeks ago"},
		{"month", ms - 35*86400*1000, "1 month ago"},
		{"years", ms - 800*86400*1000, "2 years ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatTimeAgo(tt.ts, now))
		})
	}
}

func TestChatExcludesBlockedAuthors(t *testing.T) {
	snap := seedSnapshot()
	all := messageIDs(Chat(snap).Messages)
	require.Len(t, all, 10)

	snap.BlockedUsers = models.BlockedUsers{"user2"}
	view := Chat(snap)
	for _, m := range view.Messages {
		require.NotEqual(t, "user2", m.UserID)
	}
	require.Equal(t, []string{"msg2", "msg3", "msg4", "msg6", "msg7", "msg8", "msg9", "msg10"}, messageIDs(view.Messages))
	require.Equal(t, 1, view.BlockedCount)

	// Unblocking restores the original relative order.
	snap.BlockedUsers = models.BlockedUsers{}
	require.Equal(t, all, messageIDs(Chat(snap).Messages))
}

func TestChatMessageResolution(t *testing.T) {
	snap := seedSnapshot()
	snap.ChatMessages = append(snap.ChatMessages, models.ChatMessage{
		ID: "mine", UserID: "user1", Text: "hello", Timestamp: fixedNow.UnixMilli(), Reactions: map[string]int{},
	})
	msgs := Chat(snap).Messages

	first := msgs[0]
	require.Equal(t, "Sarah Chen", first.AuthorName)
	require.Equal(t, "1 hour ago", first.TimeAgo)
	require.False(t, first.IsOwn)

	last := msgs[len(msgs)-1]
	require.True(t, last.IsOwn)
	require.Equal(t, "just now", last.TimeAgo)
}

func TestDashboard(t *testing.T) {
	snap := seedSnapshot()
	view := Dashboard(snap)

	require.Equal(t, 1247, view.Stats.OnlineStudents)
	require.Len(t, view.Announcements, 3)
	require.Equal(t, "ann1", view.Announcements[0].ID)
	require.Equal(t, "1 day ago", view.Announcements[0].TimeAgo)

	require.Len(t, view.Achievements, 4)
	for _, a := range view.Achievements {
		require.True(t, a.Earned)
	}
	require.Equal(t, []string{"ach1", "ach3", "ach5", "ach6"}, []string{
		view.Achievements[0].ID, view.Achievements[1].ID, view.Achievements[2].ID, view.Achievements[3].ID,
	})

	require.Equal(t, []string{"msg6", "msg7", "msg8", "msg9", "msg10"}, messageIDs(view.RecentMessages))

	snap.BlockedUsers = models.BlockedUsers{"user9"}
	require.Equal(t, []string{"msg5", "msg6", "msg7", "msg8", "msg9"}, messageIDs(Dashboard(snap).RecentMessages))
}

func TestQnAStableSortByVotes(t *testing.T) {
	snap := seedSnapshot()
	snap.QnaPosts = models.QnaPosts{
		{ID: "p1", Title: "a", Votes: 5},
		{ID: "p2", Title: "b", Votes: 20},
		{ID: "p3", Title: "c", Votes: 20},
		{ID: "p4", Title: "d", Votes: 3},
	}
	posts := QnA(snap).Posts
	ids := []string{posts[0].ID, posts[1].ID, posts[2].ID, posts[3].ID}
	require.Equal(t, []string{"p2", "p3", "p1", "p4"}, ids)

	// The snapshot itself is not reordered.
	require.Equal(t, "p1", snap.QnaPosts[0].ID)
}

func TestMarketplaceFilters(t *testing.T) {
	snap := seedSnapshot()

	t.Run("no filter keeps insertion order", func(t *testing.T) {
		view := Marketplace(snap, dto.MarketplaceFilter{})
		require.Equal(t, 6, view.Total)
		require.Equal(t, "item1", view.Items[0].ID)
		require.Len(t, view.Categories, 5)
		require.Len(t, view.Conditions, 4)
	})

	t.Run("category", func(t *testing.T) {
		view := Marketplace(snap, dto.MarketplaceFilter{Category: "electronics"})
		require.Equal(t, 2, view.Total)
		require.Equal(t, "item1", view.Items[0].ID)
		require.Equal(t, "item5", view.Items[1].ID)
	})

	t.Run("search matches tags", func(t *testing.T) {
		view := Marketplace(snap, dto.MarketplaceFilter{Search: "DORM"})
		require.Equal(t, 1, view.Total)
		require.Equal(t, "item6", view.Items[0].ID)
	})

	t.Run("price ascending", func(t *testing.T) {
		view := Marketplace(snap, dto.MarketplaceFilter{Sort: SortPriceLow})
		require.Equal(t, "item6", view.Items[0].ID)
		require.Equal(t, "item1", view.Items[5].ID)
	})

	t.Run("newest first", func(t *testing.T) {
		view := Marketplace(snap, dto.MarketplaceFilter{Sort: SortNewest})
		require.Equal(t, "item4", view.Items[0].ID)
		require.Equal(t, "item3", view.Items[5].ID)
	})
}

func TestHostelAmenityPreview(t *testing.T) {
	view := Hostels(seedSnapshot())
	require.Len(t, view.Hostels, 6)

	h1 := view.Hostels[0]
	require.Equal(t, []string{"WiFi", "AC", "Gym"}, h1.AmenitiesPreview)
	require.Equal(t, 2, h1.MoreAmenities)

	h3 := view.Hostels[2]
	require.Len(t, h3.AmenitiesPreview, 3)
	require.Zero(t, h3.MoreAmenities)
	require.Equal(t, "1 week ago", h1.Reviews[0].TimeAgo)
}

func TestRatings(t *testing.T) {
	view := Ratings(seedSnapshot())

	require.Equal(t, 4.4, view.AverageHostelRating)
	require.Equal(t, 495, view.HostelReviewCount)
	require.Equal(t, 4.8, view.AverageResourceRating)
	require.Equal(t, 8, view.ResourceCount)

	require.Equal(t, []dto.RankedItem{
		{Rank: 1, ID: "h4", Name: "Elite Student Residency", Rating: 4.7},
		{Rank: 2, ID: "h5", Name: "Sunshine Hostel", Rating: 4.6},
		{Rank: 3, ID: "h1", Name: "University Heights Hostel", Rating: 4.5},
	}, view.TopHostels)

	// v1 and v3 tie at 4.9 and keep their order.
	require.Equal(t, "v1", view.TopResources[0].ID)
	require.Equal(t, "v3", view.TopResources[1].ID)
	require.Equal(t, "v2", view.TopResources[2].ID)
}

func TestBlocks(t *testing.T) {
	snap := seedSnapshot()
	snap.BlockedUsers = models.BlockedUsers{"user3", "ghost"}
	view := Blocks(snap)

	require.Len(t, view.Blocked, 2)
	require.Equal(t, "Mike Rodriguez", view.Blocked[0].Name)
	require.Equal(t, "ghost", view.Blocked[1].Name)
	require.Len(t, view.Blockable, 8)
	require.Len(t, view.ReportTypes, 4)
}

func TestAchievementsAndProfile(t *testing.T) {
	snap := seedSnapshot()

	a := Achievements(snap)
	require.Equal(t, 5, a.EarnedCount)
	require.Len(t, a.InProgress, 3)
	require.Equal(t, 8, a.Total)

	p := Profile(snap)
	require.Equal(t, "Alex Johnson", p.User.Name)
	require.Equal(t, 5, p.EarnedCount)
	require.Zero(t, p.MessagesSent)
}

func TestRenderDispatch(t *testing.T) {
	snap := seedSnapshot()

	for _, page := range models.Pages {
		t.Run(string(page), func(t *testing.T) {
			view := Render(page, snap, Options{})
			require.Equal(t, string(page), view.Page)
			require.Equal(t, "#"+string(page), view.Fragment)
			require.NotNil(t, view.View)
		})
	}

	view := Render(models.Page("nowhere"), snap, Options{})
	require.Equal(t, "dashboard", view.Page)
	require.IsType(t, dto.DashboardView{}, view.View)
}

func TestRenderersDoNotMutateSnapshot(t *testing.T) {
	snap := seedSnapshot()
	before := snap.AppData.Clone()
	for _, page := range models.Pages {
		Render(page, snap, Options{Marketplace: dto.MarketplaceFilter{Sort: SortPriceHigh}})
	}
	require.Equal(t, before, snap.AppData)
}
