package discord

import (
	"github.com/bwmarrin/discordgo"

	"retreat/internal/domain"
	"retreat/internal/ports/output"
	pkgdiscord "retreat/pkg/discord"
)

const embedTitlePrefix = "🛏️ "

func (n *Notifier) t(key string, data map[string]any) string {
	return n.tr.T(n.locale, key, data)
}

// buildAssignmentEmbed summarises one move: event, dates, person and action,
// plus the target room status for assignments.
func (n *Notifier) buildAssignmentEmbed(change output.AssignmentChange) *discordgo.MessageEmbed {
	person := change.Participation.Person.NameDisplay
	if person == "" {
		person = change.Participation.Person.NameFull
	}

	var (
		action string
		status domain.RoomStatus
		fields []pkgdiscord.Field
	)
	if room := change.Room; room != nil {
		action = n.t("notify.assigned", map[string]any{"Room": room.Room.Name()})
		status = room.Status
		fields = []pkgdiscord.Field{
			{Name: n.t("notify.room", nil), Value: room.Room.Name(), Inline: true},
			{
				Name:   n.t("notify.status", nil),
				Value:  n.t("room.status."+string(room.Status), nil) + " · " + pkgdiscord.FormatOccupancy(room.AssignedCount, room.Room.Capacity),
				Inline: true,
			},
		}
	} else {
		action = n.t("notify.unassigned", nil)
	}

	fields = append([]pkgdiscord.Field{
		{Name: n.t("notify.event", nil), Value: change.Event.Name},
		{Name: n.t("notify.dates", nil), Value: pkgdiscord.FormatDateRange(change.Event.DateStart, change.Event.DateEnd)},
		{Name: n.t("notify.person", nil), Value: person + " " + action},
	}, fields...)

	return pkgdiscord.BuildEmbed(
		embedTitlePrefix+n.t("notify.title", nil),
		pkgdiscord.StatusColor(status),
		fields,
		pkgdiscord.FormatDateTime(n.now()),
	)
}
