// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Work is one saved editing session: the chosen template, the value
// snapshot, and an auto-generated thumbnail. Only the most recent works
// are kept; the store evicts the oldest beyond its cap.
type Work struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Category         Category  `json:"category"`
	TemplateID       string    `json:"template_id"`
	ThumbnailDataURL string    `json:"thumbnail_data_url,omitempty"`
	Data             Values    `json:"data"`
	LastModified     time.Time `json:"last_modified"`
}
