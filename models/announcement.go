// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Announcement is a message broadcast by admins to every client.
type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"isActive"`
	Priority  int       `json:"priority"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AnnouncementCreate is the body of POST /api/announcements.
type AnnouncementCreate struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsActive *bool  `json:"isActive,omitempty"`
	Priority int    `json:"priority,omitempty"`
}

// AnnouncementUpdate is the body of PUT /api/announcements/{id}. Nil fields
// are left unchanged.
type AnnouncementUpdate struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
	Priority *int    `json:"priority,omitempty"`
}

// IsEmpty reports whether the update changes nothing.
func (u AnnouncementUpdate) IsEmpty() bool {
	return u.Title == nil && u.Content == nil && u.IsActive == nil && u.Priority == nil
}
