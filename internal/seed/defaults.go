package seed

import (
	"time"

	"github.com/yigit/campushub/internal/app/models"
)

// StaticProvider serves the built-in community dataset. Relative timestamps
// (chat history, answers, reviews, announcements) are computed from the clock
// at the time Defaults is called.
type StaticProvider struct {
	now func() time.Time
}

// NewStaticProvider creates a provider; a nil clock means time.Now.
func NewStaticProvider(now func() time.Time) *StaticProvider {
	if now == nil {
		now = time.Now
	}
	return &StaticProvider{now: now}
}

// Defaults returns a fresh copy of the default dataset.
func (p *StaticProvider) Defaults() models.AppData {
	ms := p.now().UnixMilli()
	ago := func(d int64) int64 { return ms - d }

	return models.AppData{
		CurrentUser:      currentUser(),
		BlockedUsers:     models.BlockedUsers{},
		ChatMessages:     chatMessages(ago),
		MarketplaceItems: marketplaceItems(),
		QnaPosts:         qnaPosts(ago),
		Resources:        resources(),
		Hostels:          hostels(ago),
		Achievements:     achievements(),
		Announcements:    announcements(ago),
	}
}

// Users returns the community members.
func (p *StaticProvider) Users() []models.User {
	return users()
}

// Stats returns the dashboard counters.
func (p *StaticProvider) Stats() models.DashboardStats {
	return models.DashboardStats{
		OnlineStudents: 1247,
		ResourcesAdded: 342,
		HostelReviews:  495,
		ActiveListings: 87,
		QuestionsToday: 23,
	}
}

func currentUser() models.User {
	return models.User{
		ID:           "user1",
		Name:         "Alex Johnson",
		Avatar:       "assets/avatars/user.jpg",
		Email:        "alex.johnson@university.edu",
		College:      "Engineering College",
		Year:         "3rd Year",
		Department:   "Computer Science",
		Interests:    []string{"Web Development", "AI/ML", "Gaming", "Photography"},
		JoinedDate:   "2023-01-15",
		OnlineStatus: true,
	}
}

func users() []models.User {
	u := func(id, name, college, year string, online bool) models.User {
		return models.User{ID: id, Name: name, Avatar: "assets/avatars/" + id + ".jpg", College: college, Year: year, OnlineStatus: online}
	}
	return []models.User{
		u("user1", "Alex Johnson", "Engineering", "3rd", true),
		u("user2", "Sarah Chen", "Business", "2nd", true),
		u("user3", "Mike Rodriguez", "Arts", "4th", false),
		u("user4", "Emma Wilson", "Science", "1st", true),
		u("user5", "David Kim", "Engineering", "2nd", true),
		u("user6", "Lisa Patel", "Medicine", "3rd", false),
		u("user7", "James Brown", "Law", "4th", true),
		u("user8", "Maria Garcia", "Engineering", "2nd", true),
		u("user9", "Tom Anderson", "Business", "3rd", false),
		u("user10", "Nina Taylor", "Arts", "1st", true),
	}
}

func chatMessages(ago func(int64) int64) models.ChatMessages {
	m := func(id, userID, text string, offset int64, reactions map[string]int) models.ChatMessage {
		if reactions == nil {
			reactions = map[string]int{}
		}
		return models.ChatMessage{ID: id, UserID: userID, Text: text, Timestamp: ago(offset), Reactions: reactions}
	}
	return models.ChatMessages{
		m("msg1", "user2", "Hey everyone! Has anyone started working on the ML assignment?", 3600000, map[string]int{"like": 3, "love": 1}),
		m("msg2", "user5", "Yeah, I finished it last night. The neural network part was tricky!", 3300000, map[string]int{"like": 2}),
		m("msg3", "user4", "I'm still stuck on the data preprocessing. Any tips?", 3000000, nil),
		m("msg4", "user8", "Make sure to normalize your features! That helped me a lot.", 2700000, map[string]int{"like": 4}),
		m("msg5", "user2", "Thanks! I'll try that.", 2400000, map[string]int{"like": 1}),
		m("msg6", "user7", "Anyone going to the tech talk tomorrow?", 2100000, map[string]int{"like": 2}),
		m("msg7", "user10", "Yes! Really excited about the AI ethics discussion.", 1800000, map[string]int{"love": 3}),
		m("msg8", "user3", "Does anyone know when the library closes today?", 1500000, nil),
		m("msg9", "user6", "It closes at 10 PM on weekdays.", 1200000, map[string]int{"like": 1}),
		m("msg10", "user9", "Perfect, thanks!", 900000, nil),
	}
}

func marketplaceItems() models.MarketplaceItems {
	return models.MarketplaceItems{
		{
			ID: "item1", Title: "MacBook Pro 2020",
			Description: "Excellent condition, 16GB RAM, 512GB SSD. Perfect for students. Comes with charger and case.",
			Price:       899, Condition: models.ConditionLikeNew, Category: "Electronics",
			SellerID: "user3", SellerName: "Mike Rodriguez", Image: "assets/marketplace/laptop.jpg",
			Location: "North Campus", Tags: []string{"laptop", "apple", "macbook"}, PostedDate: "2024-01-10", Views: 234,
		},
		{
			ID: "item2", Title: "Calculus Textbook Bundle",
			Description: "Complete set of calculus books for engineering students. Barely used, includes solution manual.",
			Price:       75, Condition: models.ConditionGood, Category: "Books",
			SellerID: "user5", SellerName: "David Kim", Image: "assets/marketplace/books.jpg",
			Location: "South Campus", Tags: []string{"textbooks", "math", "engineering"}, PostedDate: "2024-01-12", Views: 156,
		},
		{
			ID: "item3", Title: "Mountain Bike",
			Description: "Trek mountain bike, 21-speed, great for campus commute or weekend trails. Well maintained.",
			Price:       250, Condition: models.ConditionGood, Category: "Sports",
			SellerID: "user7", SellerName: "James Brown", Image: "assets/marketplace/bike.jpg",
			Location: "West Campus", Tags: []string{"bike", "sports", "transport"}, PostedDate: "2024-01-08", Views: 189,
		},
		{
			ID: "item4", Title: "Gaming Chair",
			Description: "Ergonomic gaming chair with lumbar support. Black and red design. Perfect for long study sessions.",
			Price:       120, Condition: models.ConditionLikeNew, Category: "Furniture",
			SellerID: "user2", SellerName: "Sarah Chen", Image: "assets/marketplace/chair.jpg",
			Location: "East Campus", Tags: []string{"furniture", "gaming", "chair"}, PostedDate: "2024-01-15", Views: 201,
		},
		{
			ID: "item5", Title: "iPhone 12 Pro",
			Description: "128GB, Pacific Blue. Battery health 92%. No scratches, always used with case and screen protector.",
			Price:       550, Condition: models.ConditionExcellent, Category: "Electronics",
			SellerID: "user8", SellerName: "Maria Garcia", Image: "assets/marketplace/phone.jpg",
			Location: "North Campus", Tags: []string{"phone", "apple", "iphone"}, PostedDate: "2024-01-14", Views: 312,
		},
		{
			ID: "item6", Title: "Mini Fridge",
			Description: "Compact refrigerator perfect for dorm rooms. Quiet and energy efficient. 1.7 cubic feet.",
			Price:       60, Condition: models.ConditionGood, Category: "Appliances",
			SellerID: "user4", SellerName: "Emma Wilson", Image: "assets/marketplace/fridge.jpg",
			Location: "South Campus", Tags: []string{"appliance", "dorm", "fridge"}, PostedDate: "2024-01-11", Views: 145,
		},
	}
}

func qnaPosts(ago func(int64) int64) models.QnaPosts {
	return models.QnaPosts{
		{
			ID: "q1", UserID: "user2", UserName: "Sarah Chen", UserAvatar: "assets/avatars/user2.jpg",
			Title:   "How to prepare for Data Structures final exam?",
			Content: "I'm struggling with trees and graphs. What resources would you recommend? Looking for practice problems and conceptual explanations.",
			Tags:    []string{"computer-science", "exam-prep", "data-structures"},
			Votes:   24, AnswerCount: 8, Views: 456, PostedDate: ago(172800000),
			Answers: []models.Answer{
				{
					ID: "a1", UserID: "user5", UserName: "David Kim", UserAvatar: "assets/avatars/user5.jpg",
					Content: "I found **LeetCode** and **HackerRank** extremely helpful for practice problems. For concepts, check out Abdul Bari's YouTube channel - his explanations are crystal clear!",
					Votes:   15, PostedDate: ago(169200000), IsAccepted: true,
				},
				{
					ID: "a2", UserID: "user8", UserName: "Maria Garcia", UserAvatar: "assets/avatars/user8.jpg",
					Content: "Don't forget to practice writing code by hand! Our professor mentioned the exam will have a coding section without IDE.",
					Votes:   8, PostedDate: ago(165600000),
				},
			},
		},
		{
			ID: "q2", UserID: "user4", UserName: "Emma Wilson", UserAvatar: "assets/avatars/user4.jpg",
			Title:   "Best places to study on campus during finals week?",
			Content: "The main library is always packed. Looking for quieter spots with good wifi and comfortable seating.",
			Tags:    []string{"campus-life", "study-tips"},
			Votes:   18, AnswerCount: 12, Views: 634, PostedDate: ago(259200000),
			Answers: []models.Answer{
				{
					ID: "a3", UserID: "user7", UserName: "James Brown", UserAvatar: "assets/avatars/user7.jpg",
					Content: "The Engineering building has a 24/7 study lounge on the 3rd floor. It's usually quiet and has great wifi!",
					Votes:   12, PostedDate: ago(255600000), IsAccepted: true,
				},
			},
		},
		{
			ID: "q3", UserID: "user10", UserName: "Nina Taylor", UserAvatar: "assets/avatars/user10.jpg",
			Title:   "Internship opportunities for first-year students?",
			Content: "I'm interested in software development internships but most require juniors/seniors. Any companies that hire freshmen?",
			Tags:    []string{"career", "internship", "first-year"},
			Votes:   31, AnswerCount: 15, Views: 892, PostedDate: ago(432000000),
			Answers: []models.Answer{},
		},
		{
			ID: "q4", UserID: "user6", UserName: "Lisa Patel", UserAvatar: "assets/avatars/user6.jpg",
			Title:   "Recommended electives for AI/ML specialization?",
			Content: "Planning my courses for next semester. What electives pair well with Machine Learning fundamentals?",
			Tags:    []string{"computer-science", "ai-ml", "courses"},
			Votes:   27, AnswerCount: 10, Views: 721, PostedDate: ago(518400000),
			Answers: []models.Answer{},
		},
	}
}

func resources() models.ResourceLibrary {
	visual := func(id, title, desc, url, thumb, typ string, tags []string, rating float64, by, date string) models.Resource {
		return models.Resource{ID: id, Title: title, Description: desc, Kind: models.ResourceVisual, URL: url, Thumbnail: thumb, Type: typ, Tags: tags, Rating: rating, AddedBy: by, AddedDate: date}
	}
	text := func(id, title, desc, file, size string, tags []string, rating float64, downloads int, by, date string) models.Resource {
		return models.Resource{ID: id, Title: title, Description: desc, Kind: models.ResourceText, FileName: file, FileSize: size, Tags: tags, Rating: rating, Downloads: downloads, AddedBy: by, AddedDate: date}
	}
	return models.ResourceLibrary{
		Visual: []models.Resource{
			visual("v1", "MIT OpenCourseWare - Linear Algebra",
				"Complete video lectures by Gilbert Strang. Essential for ML and data science.",
				"https://www.youtube.com/playlist?list=PLE7DDD91010BC51F8", "assets/resources/mit-linear-algebra.jpg", "YouTube",
				[]string{"mathematics", "linear-algebra", "video"}, 4.9, "user5", "2024-01-05"),
			visual("v2", "FreeCodeCamp - Full Stack Development",
				"Comprehensive web development course covering HTML, CSS, JavaScript, React, Node.js, and more.",
				"https://www.freecodecamp.org", "assets/resources/freecodecamp.jpg", "Website",
				[]string{"web-development", "programming", "full-stack"}, 4.8, "user2", "2024-01-08"),
			visual("v3", "StatQuest - Statistics & Machine Learning",
				"Fun and clear explanations of complex statistical concepts and ML algorithms.",
				"https://www.youtube.com/@statquest", "assets/resources/statquest.jpg", "YouTube",
				[]string{"statistics", "machine-learning", "video"}, 4.9, "user8", "2024-01-10"),
			visual("v4", "Khan Academy - Computer Science",
				"Interactive lessons on algorithms, cryptography, and information theory.",
				"https://www.khanacademy.org/computing/computer-science", "assets/resources/khan-cs.jpg", "Website",
				[]string{"computer-science", "algorithms", "interactive"}, 4.7, "user4", "2024-01-12"),
		},
		Text: []models.Resource{
			text("t1", "Data Structures and Algorithms Cheat Sheet",
				"Quick reference guide covering all major DS&A concepts with time complexities.",
				"DSA-CheatSheet.pdf", "2.3 MB", []string{"computer-science", "algorithms", "reference"}, 4.8, 342, "user5", "2024-01-03"),
			text("t2", "Introduction to Machine Learning - Course Notes",
				"Compiled notes from Stanford CS229 course. Covers supervised and unsupervised learning.",
				"ML-Notes.pdf", "5.7 MB", []string{"machine-learning", "notes", "stanford"}, 4.9, 521, "user8", "2024-01-06"),
			text("t3", "System Design Interview Preparation",
				"Comprehensive guide to ace system design interviews with real examples.",
				"SystemDesign-Guide.pdf", "4.1 MB", []string{"interview", "system-design", "career"}, 4.7, 289, "user7", "2024-01-09"),
			text("t4", "Python Programming Best Practices",
				"PEP 8 style guide and pythonic coding patterns for clean code.",
				"Python-BestPractices.pdf", "1.8 MB", []string{"python", "programming", "best-practices"}, 4.6, 198, "user2", "2024-01-11"),
		},
	}
}

func hostels(ago func(int64) int64) models.Hostels {
	r := func(id, userID, userName string, rating int, comment string, offset int64, helpful int) models.Review {
		return models.Review{ID: id, UserID: userID, UserName: userName, UserAvatar: "assets/avatars/" + userID + ".jpg", Rating: rating, Comment: comment, Date: ago(offset), Helpful: helpful}
	}
	return models.Hostels{
		{
			ID: "h1", Name: "University Heights Hostel",
			Description: "Modern hostel with AC rooms, wifi, and gym facilities. Located 5 minutes from campus.",
			Rating:      4.5, ReviewCount: 89, AvgPrice: 450, Distance: "0.5 km",
			Amenities: []string{"WiFi", "AC", "Gym", "Laundry", "Mess"}, Image: "assets/hostels/heights.jpg",
			Reviews: []models.Review{
				r("r1", "user2", "Sarah Chen", 5, "Excellent facilities and very clean. The mess food is surprisingly good! Staff is friendly and responsive.", 604800000, 12),
				r("r2", "user5", "David Kim", 4, "Great location and amenities. The only downside is that it can get a bit noisy during exam season.", 1209600000, 8),
			},
		},
		{
			ID: "h2", Name: "Green Valley Residence",
			Description: "Peaceful environment with garden, library, and study rooms. Vegetarian mess available.",
			Rating:      4.2, ReviewCount: 67, AvgPrice: 380, Distance: "1.2 km",
			Amenities: []string{"WiFi", "Library", "Garden", "Study Rooms", "Veg Mess"}, Image: "assets/hostels/greenvalley.jpg",
			Reviews: []models.Review{
				r("r3", "user6", "Lisa Patel", 4, "Really quiet and perfect for studying. The garden is beautiful and relaxing.", 1814400000, 15),
			},
		},
		{
			ID: "h3", Name: "Campus View Hostel",
			Description: "Budget-friendly option with basic amenities. Perfect for first-year students.",
			Rating:      3.8, ReviewCount: 124, AvgPrice: 280, Distance: "0.8 km",
			Amenities: []string{"WiFi", "Mess", "Common Room"}, Image: "assets/hostels/campusview.jpg",
			Reviews: []models.Review{
				r("r4", "user4", "Emma Wilson", 4, "Great value for money! It's basic but clean and the location is convenient.", 2419200000, 21),
				r("r5", "user10", "Nina Taylor", 3, "Affordable but wifi can be slow sometimes. Otherwise decent for the price.", 3024000000, 9),
			},
		},
		{
			ID: "h4", Name: "Elite Student Residency",
			Description: "Premium hostel with single rooms, private bathrooms, and housekeeping services.",
			Rating:      4.7, ReviewCount: 45, AvgPrice: 650, Distance: "1.5 km",
			Amenities: []string{"WiFi", "AC", "Gym", "Private Bath", "Housekeeping", "Laundry"}, Image: "assets/hostels/elite.jpg",
			Reviews: []models.Review{
				r("r6", "user3", "Mike Rodriguez", 5, "Worth every penny! The single rooms are spacious and having a private bathroom is a game changer.", 864000000, 18),
			},
		},
		{
			ID: "h5", Name: "Sunshine Hostel",
			Description: "Women-only hostel with strict security. Includes yoga room and wellness center.",
			Rating:      4.6, ReviewCount: 78, AvgPrice: 420, Distance: "0.7 km",
			Amenities: []string{"WiFi", "AC", "Security", "Yoga Room", "Wellness Center", "Mess"}, Image: "assets/hostels/sunshine.jpg",
			Reviews: []models.Review{
				r("r7", "user8", "Maria Garcia", 5, "Feel very safe here! The yoga classes are a great stress reliever. Highly recommend for female students.", 1296000000, 24),
			},
		},
		{
			ID: "h6", Name: "Tech Hub Residence",
			Description: "Tech-focused hostel with co-working spaces and high-speed internet. Popular among CS students.",
			Rating:      4.4, ReviewCount: 92, AvgPrice: 480, Distance: "1.0 km",
			Amenities: []string{"High-Speed WiFi", "Co-working Space", "AC", "Gaming Room", "Laundry"}, Image: "assets/hostels/techhub.jpg",
			Reviews: []models.Review{
				r("r8", "user7", "James Brown", 4, "Perfect for tech students! The co-working space is great for group projects and the internet speed is amazing.", 1728000000, 16),
			},
		},
	}
}

func achievements() models.Achievements {
	return models.Achievements{
		{ID: "ach1", Name: "Early Bird", Description: "Joined the community in its first month", Icon: "🐦", Progress: 100, Earned: true, EarnedDate: "2023-01-15", Category: "milestone"},
		{ID: "ach2", Name: "Helpful Helper", Description: "Answered 10 questions in Q&A", Icon: "🤝", Progress: 60, Category: "contribution"},
		{ID: "ach3", Name: "Chat Master", Description: "Sent 100 messages in general chat", Icon: "💬", Progress: 100, Earned: true, EarnedDate: "2023-03-22", Category: "social"},
		{ID: "ach4", Name: "Resource Curator", Description: "Added 5 helpful resources", Icon: "📚", Progress: 80, Category: "contribution"},
		{ID: "ach5", Name: "Market Maven", Description: "Completed 5 successful trades", Icon: "🛒", Progress: 100, Earned: true, EarnedDate: "2023-05-10", Category: "marketplace"},
		{ID: "ach6", Name: "Review Writer", Description: "Wrote 3 detailed hostel reviews", Icon: "✍️", Progress: 100, Earned: true, EarnedDate: "2023-06-18", Category: "hostel"},
		{ID: "ach7", Name: "Top Contributor", Description: "Received 50 upvotes on your posts", Icon: "⭐", Progress: 70, Category: "reputation"},
		{ID: "ach8", Name: "Community Champion", Description: "Active for 6 consecutive months", Icon: "🏆", Progress: 100, Earned: true, EarnedDate: "2023-07-15", Category: "milestone"},
	}
}

func announcements(ago func(int64) int64) models.Announcements {
	return models.Announcements{
		{
			ID: "ann1", Title: "New Study Spaces Available in Library",
			Content: "The university library has opened additional study rooms on the 4th floor. These rooms can be booked online through the student portal. Each room accommodates up to 6 students and is equipped with a whiteboard and power outlets.",
			Author:  "Admin", Date: ago(86400000), Priority: models.PriorityHigh, Icon: "📢", Category: "facilities",
		},
		{
			ID: "ann2", Title: "Career Fair - February 15-16",
			Content: "Don't miss the annual career fair! Over 100 companies will be recruiting for internships and full-time positions. Update your resumes and prepare for on-the-spot interviews. Professional attire recommended.",
			Author:  "Career Services", Date: ago(172800000), Priority: models.PriorityHigh, Icon: "💼", Category: "career",
		},
		{
			ID: "ann3", Title: "Mid-Semester Break Schedule",
			Content: "The mid-semester break will be from March 10-17. Classes will resume on March 18. The library and mess will operate on reduced hours during the break.",
			Author:  "Academic Office", Date: ago(259200000), Priority: models.PriorityMedium, Icon: "📅", Category: "academic",
		},
		{
			ID: "ann4", Title: "New Gym Equipment Installed",
			Content: "The campus gym has been upgraded with new cardio machines and free weights. Remember to bring your student ID for access. Operating hours: 6 AM - 10 PM.",
			Author:  "Sports Committee", Date: ago(432000000), Priority: models.PriorityLow, Icon: "🏋️", Category: "facilities",
		},
		{
			ID: "ann5", Title: "Guest Lecture: AI in Healthcare",
			Content: "Dr. Jennifer Wong from Stanford will be giving a guest lecture on \"Applications of AI in Modern Healthcare\" on February 20th at 4 PM in Auditorium A. Open to all students.",
			Author:  "CS Department", Date: ago(518400000), Priority: models.PriorityMedium, Icon: "🎓", Category: "event",
		},
	}
}
