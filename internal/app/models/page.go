package models

// Page is a symbolic page name of the navigation surface.
type Page string

const (
	PageDashboard     Page = "dashboard"
	PageChat          Page = "chat"
	PageMarketplace   Page = "marketplace"
	PageQnA           Page = "qna"
	PageResources     Page = "resources"
	PageHostels       Page = "hostels"
	PageBlocks        Page = "blocks"
	PageRatings       Page = "ratings"
	PageAchievements  Page = "achievements"
	PageAnnouncements Page = "announcements"
	PageProfile       Page = "profile"
)

// Pages lists every page in sidebar order.
var Pages = []Page{
	PageDashboard, PageChat, PageMarketplace, PageQnA, PageResources, PageHostels,
	PageBlocks, PageRatings, PageAchievements, PageAnnouncements, PageProfile,
}

// ParsePage resolves a page name; unknown names resolve to the dashboard.
func ParsePage(name string) (Page, bool) {
	for _, p := range Pages {
		if string(p) == name {
			return p, true
		}
	}
	return PageDashboard, false
}

// Fragment is the shareable location fragment for the page.
func (p Page) Fragment() string {
	return "#" + string(p)
}
