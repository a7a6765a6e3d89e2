package config

import "time"

const (
	// Storage keys
	ComplaintsKey = "campusComplaints"
	ThemeKey      = "theme"

	// Complaints
	ComplaintIDPrefix = "C"

	// Category suggestion
	SuggestionDebounce = 1 * time.Second
	SuggestionMinWords = 5
	SuggestionModel    = "gemini-2.5-flash"
	SuggestionTimeout  = 10 * time.Second

	// Session
	SessionTokenLifetime = 72 * time.Hour
	SessionTokenIssuer   = "complaintbox-service"

	// Notifications
	NotificationPreviewLen = 120
)
