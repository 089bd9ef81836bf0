// SPDX-License-Identifier: AGPL-3.0-only
package handlers

import "github.com/fluffyriot/profiledash/internal/profile"

type ProfileResponse struct {
	User        profile.UserProfile `json:"user"`
	IsFollowing bool                `json:"is_following"`
}

func newProfileResponse(s profile.Snapshot) ProfileResponse {
	return ProfileResponse{User: s.User, IsFollowing: s.Follow.IsFollowing}
}
