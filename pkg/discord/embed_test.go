package discord

import (
	"testing"

	"retreat/internal/domain"
)

func TestBuildEmbedSkipsEmptyFields(t *testing.T) {
	embed := BuildEmbed("title", StatusColor(domain.RoomStatusDanger), []Field{
		{Name: "a", Value: "1"},
		{Name: "b", Value: ""},
		{Name: "c", Value: "3", Inline: true},
	}, "")

	if len(embed.Fields) != 2 {
		t.Fatalf("fields = %d, want 2", len(embed.Fields))
	}
	if embed.Fields[1].Name != "c" || !embed.Fields[1].Inline {
		t.Fatalf("field[1] = %+v, want inline c", embed.Fields[1])
	}
	if embed.Color != 0xED4245 {
		t.Fatalf("color = %#x, want danger red", embed.Color)
	}
	if embed.Footer != nil {
		t.Fatal("footer should be nil when empty")
	}
}

func TestStatusColorDefault(t *testing.T) {
	if got := StatusColor(""); got != embedColor {
		t.Fatalf("StatusColor(\"\") = %#x, want %#x", got, embedColor)
	}
	if got := FormatOccupancy(3, 2); got != "3/2" {
		t.Fatalf("FormatOccupancy = %q, want 3/2", got)
	}
}
