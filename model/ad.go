package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"fliquecms/internal/apperr"
)

var (
	adTypes      = []string{"banner", "sidebar", "in-content", "popup", "native"}
	adFormats    = []string{"display", "inArticle", "inFeed"}
	adPlacements = []string{"top", "bottom", "middle", "sidebar", "inline"}
	adSizes      = []string{"responsive", "300x250", "728x90", "160x600"}
)

type Ad struct {
	ID        bson.ObjectID `json:"_id" bson:"_id,omitempty"`
	Type      string        `json:"type" bson:"type"`
	Format    string        `json:"format" bson:"format"`
	Placement string        `json:"placement" bson:"placement"`
	Size      string        `json:"size" bson:"size"`
	Priority  int           `json:"priority" bson:"priority"`
	Content   string        `json:"content" bson:"content"`
	ClientID  string        `json:"clientId" bson:"clientId"`
	SlotID    string        `json:"slotId" bson:"slotId"`
	IsActive  bool          `json:"isActive" bson:"isActive"`
	CreatedAt time.Time     `json:"createdAt" bson:"createdAt"`
}

func (a Ad) Validate() error {
	checks := []struct {
		field, value string
		allowed      []string
	}{
		{"type", a.Type, adTypes},
		{"format", a.Format, adFormats},
		{"placement", a.Placement, adPlacements},
		{"size", a.Size, adSizes},
	}
	for _, c := range checks {
		if !contains(c.allowed, c.value) {
			return apperr.Newf(apperr.Validation, "invalid ad %s %q", c.field, c.value)
		}
	}
	if a.Priority < 1 || a.Priority > 10 {
		return apperr.New(apperr.Validation, "ad priority must be between 1 and 10")
	}
	if a.Content == "" || a.ClientID == "" || a.SlotID == "" {
		return apperr.New(apperr.Validation, "ad content, clientId and slotId are required")
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
