package events

import (
	"encoding/json"
	"testing"
)

func TestDecodeCategoryEvent(t *testing.T) {
	payload := []byte(`{"guid":"cat-1","title":"Electronics","description":"d","parentGuid":"root"}`)

	ev, err := DecodeCategoryEvent(TopicCategoryUpdated, payload)
	if err != nil {
		t.Fatalf("DecodeCategoryEvent: %v", err)
	}
	if ev.GUID != "cat-1" || ev.Title != "Electronics" || ev.ParentGUID != "root" {
		t.Errorf("decoded event = %+v", ev)
	}

	if _, err := DecodeCategoryEvent(TopicCategoryDeleted, payload); err != nil {
		t.Errorf("delete topic should decode: %v", err)
	}
}

func TestDecodeCategoryEvent_UnknownTopic(t *testing.T) {
	if _, err := DecodeCategoryEvent(TopicUserCreated, []byte(`{"guid":"x"}`)); err == nil {
		t.Fatal("expected error for non-category topic")
	}
}

func TestDecodeCategoryEvent_BadPayload(t *testing.T) {
	if _, err := DecodeCategoryEvent(TopicCategoryUpdated, []byte(`{broken`)); err == nil {
		t.Fatal("expected error for malformed payload")
	}
	if _, err := DecodeCategoryEvent(TopicCategoryUpdated, []byte(`{"title":"no guid"}`)); err == nil {
		t.Fatal("expected error for payload without guid")
	}
}

func TestUserEvent_JSONShape(t *testing.T) {
	ev := UserEvent{
		GUID:          "u-1",
		Email:         "a@x.com",
		FullName:      "A",
		PhoneNumber:   "+111",
		IsActive:      true,
		BidsAvailable: 3,
	}
	raw, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"guid", "email", "fullName", "phoneNumber", "role",
		"createdAt", "updatedAt", "isActive", "isDeleted", "bidsAvailable", "avatarUrl"} {
		if _, ok := m[key]; !ok {
			t.Errorf("snapshot missing field %q", key)
		}
	}
}
