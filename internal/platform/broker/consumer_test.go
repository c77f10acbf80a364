package broker

import (
	"testing"

	"github.com/segmentio/kafka-go"
)

func TestDecodeEnvelopedMessage(t *testing.T) {
	msg := decodeMessage(kafka.Message{
		Topic: "pricing.catalog.updated",
		Value: []byte(`{"topic":"pricing.catalog.updated","action":"refresh","metadata":{"source":"scraper"},"data":[{"id":"matchpoint"}]}`),
	})

	if msg.Topic != "pricing.catalog.updated" {
		t.Fatalf("unexpected topic %q", msg.Topic)
	}
	if msg.Action != "refresh" {
		t.Fatalf("unexpected action %q", msg.Action)
	}
	if msg.Metadata["source"] != "scraper" {
		t.Fatalf("unexpected metadata %v", msg.Metadata)
	}
	if msg.Data == nil {
		t.Fatal("expected decoded data")
	}
}

func TestDecodeBareDocument(t *testing.T) {
	raw := "- id: matchpoint\n  name: MatchPoint\n"
	msg := decodeMessage(kafka.Message{Topic: "pricing.catalog.updated", Value: []byte(raw)})

	if msg.Topic != "pricing.catalog.updated" {
		t.Fatalf("unexpected topic %q", msg.Topic)
	}
	data, ok := msg.Data.(string)
	if !ok || data != raw {
		t.Fatalf("expected raw payload passthrough, got %#v", msg.Data)
	}
	if msg.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}
}
