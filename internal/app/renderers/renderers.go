// Package renderers turns a state snapshot into the view model of each page.
// Renderers are pure: they never mutate the snapshot and perform no I/O.
package renderers

import (
	"github.com/yigit/campushub/internal/app/models"
	"github.com/yigit/campushub/internal/app/models/dto"
	"github.com/yigit/campushub/internal/app/state"
)

// Options carries per-request rendering inputs.
type Options struct {
	Marketplace dto.MarketplaceFilter
}

// Render dispatches to the renderer of page. Unknown pages were already
// resolved to the dashboard by models.ParsePage.
func Render(page models.Page, snap state.Snapshot, opts Options) dto.PageView {
	var view interface{}
	switch page {
	case models.PageChat:
		view = Chat(snap)
	case models.PageMarketplace:
		view = Marketplace(snap, opts.Marketplace)
	case models.PageQnA:
		view = QnA(snap)
	case models.PageResources:
		view = Resources(snap)
	case models.PageHostels:
		view = Hostels(snap)
	case models.PageBlocks:
		view = Blocks(snap)
	case models.PageRatings:
		view = Ratings(snap)
	case models.PageAchievements:
		view = Achievements(snap)
	case models.PageAnnouncements:
		view = Announcements(snap)
	case models.PageProfile:
		view = Profile(snap)
	default:
		page = models.PageDashboard
		view = Dashboard(snap)
	}
	return dto.PageView{Page: string(page), Fragment: page.Fragment(), View: view}
}

// directory indexes the user list of a snapshot.
type directory struct {
	byID    map[string]models.User
	current models.User
}

func newDirectory(snap state.Snapshot) directory {
	d := directory{byID: make(map[string]models.User, len(snap.Users)), current: snap.CurrentUser}
	for _, u := range snap.Users {
		d.byID[u.ID] = u
	}
	d.byID[snap.CurrentUser.ID] = snap.CurrentUser
	return d
}

// author resolves id, falling back to the current user like the chat has always done.
func (d directory) author(id string) models.User {
	if u, ok := d.byID[id]; ok {
		return u
	}
	return d.current
}

func card(u models.User) dto.UserCard {
	return dto.UserCard{
		ID:      u.ID,
		Name:    u.Name,
		Avatar:  u.Avatar,
		College: u.College,
		Year:    u.Year,
		Online:  u.OnlineStatus,
	}
}
