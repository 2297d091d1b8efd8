package catalog

import "verifind.org/internal/auth"

// Stat is a labelled headline figure.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Activity is an entry of the dashboard activity feed.
type Activity struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
	Status      string `json:"status"`
}

// DashboardPage is the payload of the dashboard view.
type DashboardPage struct {
	Title          string     `json:"title"`
	Subtitle       string     `json:"subtitle"`
	Stats          []Stat     `json:"stats"`
	RecentActivity []Activity `json:"recent_activity"`
}

// Metric is an analytics headline with its period-over-period change.
type Metric struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

// Hotspot is the resolution record of one area.
type Hotspot struct {
	Area     string `json:"area"`
	Cases    int    `json:"cases"`
	Resolved int    `json:"resolved"`
	Rate     int    `json:"rate"`
}

// TimePattern counts reports by time of day.
type TimePattern struct {
	Hour  string `json:"hour"`
	Cases int    `json:"cases"`
}

// AnalyticsPage is the payload of the analytics view.
type AnalyticsPage struct {
	Title        string        `json:"title"`
	Subtitle     string        `json:"subtitle"`
	KeyMetrics   []Metric      `json:"key_metrics"`
	Hotspots     []Hotspot     `json:"hotspots"`
	TimePatterns []TimePattern `json:"time_patterns"`
}

// Feature is a landing-page selling point.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// LandingPage is the payload of the role-selection view.
type LandingPage struct {
	Tagline  string             `json:"tagline"`
	Features []Feature          `json:"features"`
	Portals  []auth.RoleProfile `json:"portals"`
}

// AlertSummary aggregates the alert list header figures.
type AlertSummary struct {
	Active           int `json:"active"`
	Resolved         int `json:"resolved"`
	ActiveResponders int `json:"active_responders"`
	CoverageRadiusKM int `json:"coverage_radius_km"`
}

var dashboardStats = map[auth.Role][]Stat{
	auth.RoleLawEnforcement: {
		{Label: "Active Cases", Value: "23"},
		{Label: "Tips Received", Value: "147"},
		{Label: "Cases Resolved", Value: "18"},
		{Label: "Blockchain Verifications", Value: "342"},
	},
	auth.RoleFamily: {
		{Label: "My Cases", Value: "1"},
		{Label: "Community Alerts", Value: "1,247"},
		{Label: "Tips Received", Value: "34"},
		{Label: "Hours Active", Value: "72"},
	},
	auth.RoleCommunity: {
		{Label: "Active Alerts", Value: "12"},
		{Label: "Tips Submitted", Value: "7"},
		{Label: "Rewards Earned", Value: "$284"},
		{Label: "Verification Score", Value: "98%"},
	},
}

// Dashboard builds the dashboard for role. Visitors get a title and no stats.
func Dashboard(role auth.Role) DashboardPage {
	stats := append([]Stat{}, dashboardStats[role]...)
	return DashboardPage{
		Title:    auth.Profile(role).DashboardTitle,
		Subtitle: "Real-time blockchain-verified data and system overview",
		Stats:    stats,
		RecentActivity: []Activity{
			{ID: 1, Type: "case_created", Title: "New missing person case registered", Description: "Sarah Johnson, 24, reported missing in downtown area", Timestamp: "2 minutes ago", Status: "verified"},
			{ID: 2, Type: "tip_submitted", Title: "Community tip received", Description: "Potential sighting reported near Central Park", Timestamp: "15 minutes ago", Status: "pending"},
			{ID: 3, Type: "reward_distributed", Title: "Reward automatically distributed", Description: "$50 sent to community member for verified tip", Timestamp: "1 hour ago", Status: "completed"},
			{ID: 4, Type: "case_resolved", Title: "Missing person case resolved", Description: "Michael Chen found safe, case closed successfully", Timestamp: "3 hours ago", Status: "resolved"},
		},
	}
}

// Analytics builds the analytics view for role.
func Analytics(role auth.Role) AnalyticsPage {
	return AnalyticsPage{
		Title:    auth.Profile(role).AnalyticsTitle,
		Subtitle: "Data-driven insights powered by blockchain-verified information",
		KeyMetrics: []Metric{
			{Label: "Resolution Rate", Value: "78%", Change: "+12%", Trend: "up"},
			{Label: "Average Response Time", Value: "4.2 hrs", Change: "-18%", Trend: "down"},
			{Label: "Community Engagement", Value: "2,847", Change: "+34%", Trend: "up"},
			{Label: "Rewards Distributed", Value: "$12,450", Change: "+28%", Trend: "up"},
		},
		Hotspots: []Hotspot{
			{Area: "Downtown Metro", Cases: 18, Resolved: 14, Rate: 78},
			{Area: "University District", Cases: 12, Resolved: 9, Rate: 75},
			{Area: "Riverside Area", Cases: 8, Resolved: 7, Rate: 88},
			{Area: "Shopping Centers", Cases: 15, Resolved: 10, Rate: 67},
			{Area: "Transit Hubs", Cases: 22, Resolved: 16, Rate: 73},
		},
		TimePatterns: []TimePattern{
			{Hour: "6 AM", Cases: 2},
			{Hour: "9 AM", Cases: 5},
			{Hour: "12 PM", Cases: 8},
			{Hour: "3 PM", Cases: 12},
			{Hour: "6 PM", Cases: 18},
			{Hour: "9 PM", Cases: 15},
			{Hour: "12 AM", Cases: 7},
			{Hour: "3 AM", Cases: 3},
		},
	}
}

// Landing builds the role-selection screen from the role table.
func Landing() LandingPage {
	return LandingPage{
		Tagline: "World's First Blockchain-Verified Missing Person Network",
		Features: []Feature{
			{Title: "Blockchain-Verified Cases", Description: "Immutable, cryptographically secured case records with tamper-proof timestamps"},
			{Title: "Community Network", Description: "Real-time alerts to verified community members in affected areas"},
			{Title: "Immutable Tips", Description: "Blockchain-verified citizen reports with GPS coordinates and media hashes"},
			{Title: "Smart Rewards", Description: "Automated cryptocurrency bounties through transparent smart contracts"},
		},
		Portals: auth.PortalProfiles(),
	}
}

// SummarizeAlerts computes the alert header figures over the full list.
func SummarizeAlerts(alerts []Alert) AlertSummary {
	var s AlertSummary
	for _, a := range alerts {
		switch a.Status {
		case AlertActive:
			s.Active++
			s.ActiveResponders += a.Responders
		case AlertResolved:
			s.Resolved++
		}
		s.CoverageRadiusKM += a.Radius
	}
	return s
}
