package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"retreat/internal/domain"
)

const embedColor = 0x5865F2

var statusColors = map[domain.RoomStatus]int{
	domain.RoomStatusOK:     0x57F287,
	domain.RoomStatusWarn:   0xFEE75C,
	domain.RoomStatusDanger: 0xED4245,
	domain.RoomStatusClosed: 0x95A5A6,
}

// Field is one name/value line of an embed.
type Field struct {
	Name   string
	Value  string
	Inline bool
}

// StatusColor returns the embed color for a room status, or the default
// color when status is empty.
func StatusColor(status domain.RoomStatus) int {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return embedColor
}

// FormatOccupancy renders "count/capacity".
func FormatOccupancy(count, capacity int) string {
	return fmt.Sprintf("%d/%d", count, capacity)
}

// BuildEmbed assembles an embed, skipping fields with an empty value.
func BuildEmbed(title string, color int, fields []Field, footer string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: color,
	}
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	if footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
	}
	return embed
}
