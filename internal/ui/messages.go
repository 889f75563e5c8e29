package ui

import "hatake/internal/models"

// dashboardLoadedMsg is sent when a dashboard build finishes
type dashboardLoadedMsg struct {
	dashboard *models.Dashboard
}
