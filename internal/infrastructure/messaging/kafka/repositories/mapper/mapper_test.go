package mapper_test

import (
	"testing"

	json "github.com/goccy/go-json"
	sdk "github.com/segmentio/kafka-go"

	domainrepos "github.com/whiteelite/catalog/internal/domain/repositories"
	"github.com/whiteelite/catalog/internal/infrastructure/messaging/kafka/repositories/mapper"
	"github.com/whiteelite/catalog/internal/infrastructure/messaging/kafka/repositories/models"
	shared "github.com/whiteelite/catalog/pkg/shared/domain/entities"
)

func TestToMessage_UsesActionAsKey(t *testing.T) {
	id := shared.NewID()

	msg, err := mapper.ToMessage(mapper.ToNotification("user-events", domainrepos.ActionDelete, id))
	if err != nil {
		t.Fatalf("ToMessage failed: %v", err)
	}

	if msg.Topic != "user-events" {
		t.Fatalf("unexpected topic: got %q", msg.Topic)
	}
	if string(msg.Key) != "delete" {
		t.Fatalf("unexpected key: got %q, want %q", msg.Key, "delete")
	}

	want := `{"topic":"user-events","action":"delete","entity_id":"` + id.Identity() + `"}`
	if string(msg.Value) != want {
		t.Fatalf("unexpected payload:\n got %s\nwant %s", msg.Value, want)
	}
}

func decodeNotification(t *testing.T, msg sdk.Message) models.Notification {
	t.Helper()

	var got models.Notification
	if err := json.Unmarshal(msg.Value, &got); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return got
}

func TestToMessage_PayloadFields(t *testing.T) {
	id := shared.NewID()
	msg, err := mapper.ToMessage(mapper.ToNotification("product-events", domainrepos.ActionCreate, id))
	if err != nil {
		t.Fatalf("ToMessage failed: %v", err)
	}

	got := decodeNotification(t, msg)
	if got.EntityID != id.Identity() || got.Action != "create" || got.Topic != "product-events" {
		t.Fatalf("unexpected notification: %+v", got)
	}
}

func TestToMessage_RejectsNil(t *testing.T) {
	if _, err := mapper.ToMessage(nil); err == nil {
		t.Fatalf("expected error for nil notification")
	}
}
