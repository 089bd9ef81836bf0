// SPDX-License-Identifier: AGPL-3.0-only
package views

import (
	"embed"
	"html/template"
	"strconv"

	"github.com/fluffyriot/profiledash/internal/profile"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	FollowLabel    = "Follow"
	FollowingLabel = "Following ✅"
	FeedTitle      = "Recent Activity"
	FollowAction   = "/follow"
)

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

type StatView struct {
	Label string
	Value string
}

type FollowButton struct {
	Label    string
	Disabled bool
	Action   string
}

type ProfileView struct {
	Name      string
	AvatarURL string
	AvatarAlt string
	Bio       string
	Stats     []StatView
	Button    FollowButton
}

func NewProfileView(user profile.UserProfile, state profile.FollowState) ProfileView {
	button := FollowButton{Label: FollowLabel, Action: FollowAction}
	if state.IsFollowing {
		button.Label = FollowingLabel
		button.Disabled = true
	}

	return ProfileView{
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		AvatarAlt: user.Name + "'s avatar",
		Bio:       user.Bio,
		Stats: []StatView{
			{Label: "Posts", Value: FormatCount(user.Stats.Posts)},
			{Label: "Followers", Value: FormatCount(user.Stats.Followers)},
			{Label: "Following", Value: FormatCount(user.Stats.Following)},
		},
		Button: button,
	}
}

// Stat returns the displayed value of the counter with the given label.
func (p ProfileView) Stat(label string) string {
	for _, s := range p.Stats {
		if s.Label == label {
			return s.Value
		}
	}
	return ""
}

type ActivityRow struct {
	Key       string
	Icon      string
	Text      string
	Timestamp string
}

type ActivityFeedView struct {
	Title string
	Rows  []ActivityRow
}

// NewActivityFeedView keeps the input order, one row per activity.
func NewActivityFeedView(activities []profile.Activity) ActivityFeedView {
	rows := make([]ActivityRow, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, ActivityRow{
			Key:       strconv.Itoa(a.ID),
			Icon:      a.Icon,
			Text:      a.Text,
			Timestamp: a.Timestamp,
		})
	}
	return ActivityFeedView{Title: FeedTitle, Rows: rows}
}

type DashboardView struct {
	Welcome   string
	Following bool
	Profile   ProfileView
	Feed      ActivityFeedView
}

func NewDashboardView(s profile.Snapshot) DashboardView {
	return DashboardView{
		Welcome:   "Welcome back, " + s.User.Name + "!",
		Following: s.Follow.IsFollowing,
		Profile:   NewProfileView(s.User, s.Follow),
		Feed:      NewActivityFeedView(s.User.Activities),
	}
}

func FormatCount(c profile.Count) string {
	return strconv.Itoa(int(c))
}
