package renderers

import (
	"math"
	"sort"
	"strings"

	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/state"
)

const (
	dashboardAnnouncements = 3
	dashboardAchievements  = 4
	dashboardMessages      = 5
	amenityPreview         = 3
	topRated               = 3
)

// Sort orders accepted by the marketplace.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
)

// ReportTypes are the options of the report form.
var ReportTypes = []dto.ReportTypeOption{
	{Value: "user", Label: "User Behavior"},
	{Value: "content", Label: "Inappropriate Content"},
	{Value: "spam", Label: "Spam"},
	{Value: "other", Label: "Other"},
}

// Dashboard shows stats, the first announcements and earned achievements and
// the latest visible chat messages.
func Dashboard(snap state.Snapshot) dto.DashboardView {
	announcements := snap.Announcements
	if len(announcements) > dashboardAnnouncements {
		announcements = announcements[:dashboardAnnouncements]
	}

	earned := snap.Achievements.Earned()
	if len(earned) > dashboardAchievements {
		earned = earned[:dashboardAchievements]
	}

	messages := visibleMessages(snap)
	if len(messages) > dashboardMessages {
		messages = messages[len(messages)-dashboardMessages:]
	}

	return dto.DashboardView{
		User:           card(snap.CurrentUser),
		Stats:          snap.Stats,
		Announcements:  announcementViews(announcements, snap),
		Achievements:   nonNil(earned),
		RecentMessages: messages,
	}
}

// Chat lists every message whose author is not blocked, in order.
func Chat(snap state.Snapshot) dto.ChatView {
	online := []dto.UserCard{}
	for _, u := range snap.Users {
		if u.OnlineStatus && u.ID != snap.CurrentUser.ID && !snap.BlockedUsers.Contains(u.ID) {
			online = append(online, card(u))
		}
	}
	return dto.ChatView{
		Messages:     visibleMessages(snap),
		OnlineUsers:  online,
		BlockedCount: len(snap.BlockedUsers),
	}
}

func visibleMessages(snap state.Snapshot) []dto.ChatMessageView {
	dir := newDirectory(snap)
	out := []dto.ChatMessageView{}
	for _, m := range snap.ChatMessages {
		if snap.BlockedUsers.Contains(m.UserID) {
			continue
		}
		out = append(out, MessageView(m, dir.author(m.UserID), snap.CurrentUser.ID, snap.Now.UnixMilli()))
	}
	return out
}

// MessageView resolves one message for display. nowMs is the render time in
// epoch milliseconds.
func MessageView(m models.ChatMessage, author models.User, currentUserID string, nowMs int64) dto.ChatMessageView {
	m = m.Clone()
	return dto.ChatMessageView{
		ID:           m.ID,
		UserID:       m.UserID,
		AuthorName:   author.Name,
		AuthorAvatar: author.Avatar,
		Text:         m.Text,
		Timestamp:    m.Timestamp,
		TimeAgo:      FormatTimeAgo(m.Timestamp, msTime(nowMs)),
		Reactions:    m.Reactions,
		IsOwn:        m.UserID == currentUserID,
	}
}

// Marketplace filters listings by search text and category, then orders them.
func Marketplace(snap state.Snapshot, f dto.MarketplaceFilter) dto.MarketplaceView {
	query := strings.ToLower(strings.TrimSpace(f.Search))
	category := strings.TrimSpace(f.Category)

	items := []models.MarketplaceItem{}
	for _, it := range snap.MarketplaceItems {
		if category != "" && !strings.EqualFold(category, "all") && !strings.EqualFold(it.Category, category) {
			continue
		}
		if query != "" && !matchesListing(it, query) {
			continue
		}
		items = append(items, it)
	}

	switch f.Sort {
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].PostedDate > items[j].PostedDate })
	case SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	}

	return dto.MarketplaceView{
		Items:      items,
		Total:      len(items),
		Categories: append([]string(nil), models.ListingCategories...),
		Conditions: append([]models.ItemCondition(nil), models.ItemConditions...),
		Filter:     f,
	}
}

func matchesListing(it models.MarketplaceItem, query string) bool {
	if strings.Contains(strings.ToLower(it.Title), query) || strings.Contains(strings.ToLower(it.Description), query) {
		return true
	}
	for _, tag := range it.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// QnA orders questions by votes, highest first; equal votes keep their order.
func QnA(snap state.Snapshot) dto.QnaView {
	posts := make([]dto.QnaPostView, len(snap.QnaPosts))
	for i, p := range snap.QnaPosts {
		posts[i] = dto.QnaPostView{QnaPost: p, TimeAgo: FormatTimeAgo(p.PostedDate, snap.Now)}
	}
	sort.SliceStable(posts, func(i, j int) bool { return posts[i].Votes > posts[j].Votes })
	return dto.QnaView{Posts: posts}
}

// Resources returns both resource tabs.
func Resources(snap state.Snapshot) dto.ResourcesView {
	return dto.ResourcesView{
		Visual: nonNil(snap.Resources.Visual),
		Text:   nonNil(snap.Resources.Text),
	}
}

// Hostels renders hostel cards with a short amenity preview.
func Hostels(snap state.Snapshot) dto.HostelsView {
	out := make([]dto.HostelCardView, len(snap.Hostels))
	for i, h := range snap.Hostels {
		out[i] = hostelCard(h, snap)
	}
	return dto.HostelsView{Hostels: out}
}

func hostelCard(h models.Hostel, snap state.Snapshot) dto.HostelCardView {
	preview := h.Amenities
	more := 0
	if len(preview) > amenityPreview {
		more = len(preview) - amenityPreview
		preview = preview[:amenityPreview]
	}
	reviews := make([]dto.ReviewView, len(h.Reviews))
	for i, r := range h.Reviews {
		reviews[i] = dto.ReviewView{Review: r, TimeAgo: FormatTimeAgo(r.Date, snap.Now)}
	}
	return dto.HostelCardView{
		ID:               h.ID,
		Name:             h.Name,
		Description:      h.Description,
		Rating:           h.Rating,
		ReviewCount:      h.ReviewCount,
		AvgPrice:         h.AvgPrice,
		Distance:         h.Distance,
		Image:            h.Image,
		AmenitiesPreview: nonNil(preview),
		MoreAmenities:    more,
		Reviews:          reviews,
	}
}

// Blocks lists blocked users, the users that can still be blocked and the
// report form options.
func Blocks(snap state.Snapshot) dto.BlocksView {
	dir := newDirectory(snap)
	blocked := make([]dto.UserCard, 0, len(snap.BlockedUsers))
	for _, id := range snap.BlockedUsers {
		if u, ok := dir.byID[id]; ok {
			blocked = append(blocked, card(u))
			continue
		}
		blocked = append(blocked, dto.UserCard{ID: id, Name: id})
	}

	blockable := []dto.UserCard{}
	for _, u := range snap.Users {
		if u.ID != snap.CurrentUser.ID && !snap.BlockedUsers.Contains(u.ID) {
			blockable = append(blockable, card(u))
		}
	}

	return dto.BlocksView{
		Blocked:     blocked,
		Blockable:   blockable,
		ReportTypes: append([]dto.ReportTypeOption(nil), ReportTypes...),
	}
}

// Ratings averages hostel and resource ratings and ranks the top entries.
func Ratings(snap state.Snapshot) dto.RatingsView {
	view := dto.RatingsView{TopHostels: []dto.RankedItem{}, TopResources: []dto.RankedItem{}}

	var hostelSum float64
	for _, h := range snap.Hostels {
		hostelSum += h.Rating
		view.HostelReviewCount += h.ReviewCount
	}
	if n := len(snap.Hostels); n > 0 {
		view.AverageHostelRating = roundTenth(hostelSum / float64(n))
	}

	all := snap.Resources.All()
	var resourceSum float64
	for _, r := range all {
		resourceSum += r.Rating
	}
	view.ResourceCount = len(all)
	if len(all) > 0 {
		view.AverageResourceRating = roundTenth(resourceSum / float64(len(all)))
	}

	hostels := append(models.Hostels(nil), snap.Hostels...)
	sort.SliceStable(hostels, func(i, j int) bool { return hostels[i].Rating > hostels[j].Rating })
	for i, h := range hostels {
		if i == topRated {
			break
		}
		view.TopHostels = append(view.TopHostels, dto.RankedItem{Rank: i + 1, ID: h.ID, Name: h.Name, Rating: h.Rating})
	}

	visual := append([]models.Resource(nil), snap.Resources.Visual...)
	sort.SliceStable(visual, func(i, j int) bool { return visual[i].Rating > visual[j].Rating })
	for i, r := range visual {
		if i == topRated {
			break
		}
		view.TopResources = append(view.TopResources, dto.RankedItem{Rank: i + 1, ID: r.ID, Name: r.Title, Rating: r.Rating})
	}

	return view
}

// Achievements splits achievements into earned and in progress.
func Achievements(snap state.Snapshot) dto.AchievementsView {
	view := dto.AchievementsView{
		Earned:     []models.Achievement{},
		InProgress: []models.Achievement{},
		Total:      len(snap.Achievements),
	}
	for _, a := range snap.Achievements {
		if a.Earned {
			view.Earned = append(view.Earned, a)
		} else {
			view.InProgress = append(view.InProgress, a)
		}
	}
	view.EarnedCount = len(view.Earned)
	return view
}

// Announcements lists every announcement in insertion order.
func Announcements(snap state.Snapshot) dto.AnnouncementsView {
	return dto.AnnouncementsView{Announcements: announcementViews(snap.Announcements, snap)}
}

func announcementViews(in models.Announcements, snap state.Snapshot) []dto.AnnouncementView {
	out := make([]dto.AnnouncementView, len(in))
	for i, a := range in {
		out[i] = dto.AnnouncementView{Announcement: a, TimeAgo: FormatTimeAgo(a.Date, snap.Now)}
	}
	return out
}

// Profile summarises the current user's local activity.
func Profile(snap state.Snapshot) dto.ProfileView {
	me := snap.CurrentUser.ID
	view := dto.ProfileView{
		User:         snap.CurrentUser,
		Achievements: nonNil(snap.Achievements),
	}
	view.EarnedCount = len(snap.Achievements.Earned())
	for _, m := range snap.ChatMessages {
		if m.UserID == me {
			view.MessagesSent++
		}
	}
	for _, it := range snap.MarketplaceItems {
		if it.SellerID == me {
			view.ListingsPosted++
		}
	}
	for _, p := range snap.QnaPosts {
		if p.UserID == me {
			view.QuestionsAsked++
		}
	}
	return view
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func nonNil[T any, S ~[]T](s S) []T {
	if s == nil {
		return []T{}
	}
	return []T(s)
}
