// Package events defines the domain events exchanged with other services over
// the broker. Every topic has exactly one payload schema; payloads are
// validated at the publish and consume boundary rather than passed through
// untyped.
package events

import (
	"encoding/json"
	"fmt"
)

// Topics published by this service. Downstream services own their own durability.
const (
	TopicUserCreated = "user.user.add"
	TopicUserUpdated = "user.user.update"
	TopicUserDeleted = "user.user.delete"
)

// Topics consumed by this service (category fan-out triggers).
const (
	TopicCategoryUpdated = "category.category.update"
	TopicCategoryDeleted = "category.category.delete"
)

// UserEvent is the full denormalized snapshot of a user, published on every
// mutation. Timestamps are strings so consumers are not coupled to our
// time representation.
type UserEvent struct {
	GUID          string `json:"guid"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	PhoneNumber   string `json:"phoneNumber"`
	Role          string `json:"role"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
	IsActive      bool   `json:"isActive"`
	IsDeleted     bool   `json:"isDeleted"`
	BidsAvailable int64  `json:"bidsAvailable"`
	AvatarURL     string `json:"avatarUrl"`
}

// CategoryEvent describes an upstream category change that must fan out
// across users referencing the category.
type CategoryEvent struct {
	GUID        string `json:"guid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ParentGUID  string `json:"parentGuid"`
}

// DecodeCategoryEvent decodes payload for one of the category topics.
// Unknown topics and payloads without a category guid are rejected.
func DecodeCategoryEvent(topic string, payload []byte) (*CategoryEvent, error) {
	switch topic {
	case TopicCategoryUpdated, TopicCategoryDeleted:
	default:
		return nil, fmt.Errorf("events: unknown category topic %q", topic)
	}
	var ev CategoryEvent
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("events: decode %s: %w", topic, err)
	}
	if ev.GUID == "" {
		return nil, fmt.Errorf("events: %s payload missing category guid", topic)
	}
	return &ev, nil
}
