package discord

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"

	"retreat/internal/domain"
	"retreat/internal/domain/entities"
	"retreat/internal/infrastructure/i18n"
	"retreat/internal/ports/output"
)

type fakeSender struct {
	channelID string
	embeds    []*discordgo.MessageEmbed
	err       error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.channelID = channelID
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{}, f.err
}

func testChange(withRoom bool) output.AssignmentChange {
	change := output.AssignmentChange{
		Event: entities.Event{
			Name:      "Retiro de otoño",
			DateStart: time.Date(2026, time.October, 9, 0, 0, 0, 0, time.UTC),
			DateEnd:   time.Date(2026, time.October, 11, 0, 0, 0, 0, time.UTC),
		},
		Participation: entities.Participation{
			ID:     "p-1",
			Person: entities.NewPerson("org-1", "Ana García", domain.GenderFemale, domain.RoleParticipant),
		},
	}
	if withRoom {
		room := entities.Room{InternalNumber: "03", Capacity: 2, GenderRestriction: domain.RestrictionMixed}
		occ := entities.NewOccupancy(room, []entities.Participation{change.Participation})
		change.Room = &occ
	}
	return change
}

func fieldValue(embed *discordgo.MessageEmbed, name string) string {
	for _, f := range embed.Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func TestParticipationMovedPostsAssignment(t *testing.T) {
	sender := &fakeSender{}
	n := newNotifier(sender, "42", i18n.NewTranslator("es"), "es")
	n.now = func() time.Time { return time.Date(2026, time.October, 1, 10, 0, 0, 0, time.UTC) }

	n.ParticipationMoved(context.Background(), testChange(true))
	n.Wait()

	if len(sender.embeds) != 1 || sender.channelID != "42" {
		t.Fatalf("sent %d embeds to %q, want 1 to 42", len(sender.embeds), sender.channelID)
	}
	embed := sender.embeds[0]
	if got := fieldValue(embed, "Persona"); got != "Ana G. se aloja en Hab 03" {
		t.Fatalf("person field = %q", got)
	}
	if got := fieldValue(embed, "Fechas"); got != "09/10/2026 - 11/10/2026" {
		t.Fatalf("dates field = %q", got)
	}
	if got := fieldValue(embed, "Estado"); !strings.HasSuffix(got, "1/2") || !strings.HasPrefix(got, "Revisar") {
		t.Fatalf("status field = %q, want Revisar ... 1/2", got)
	}
	if embed.Footer == nil || embed.Footer.Text != "01/10/2026 12:00" {
		t.Fatalf("footer = %+v, want Madrid timestamp", embed.Footer)
	}
}

func TestParticipationMovedPostsUnassignment(t *testing.T) {
	sender := &fakeSender{}
	n := newNotifier(sender, "42", i18n.NewTranslator("en"), "en")

	n.ParticipationMoved(context.Background(), testChange(false))
	n.Wait()

	if len(sender.embeds) != 1 {
		t.Fatalf("sent %d embeds, want 1", len(sender.embeds))
	}
	embed := sender.embeds[0]
	if got := fieldValue(embed, "Person"); got != "Ana G. returned to the unassigned pool" {
		t.Fatalf("person field = %q", got)
	}
	if fieldValue(embed, "Room") != "" {
		t.Fatal("unassignment should not carry a room field")
	}
}

func TestParticipationMovedSwallowsSendErrors(t *testing.T) {
	sender := &fakeSender{err: errors.New("discord down")}
	n := newNotifier(sender, "42", i18n.NewTranslator("es"), "es")

	n.ParticipationMoved(context.Background(), testChange(true))
	n.Wait()

	if len(sender.embeds) != 1 {
		t.Fatalf("sent %d embeds, want 1", len(sender.embeds))
	}
}

type blockingSender struct {
	release chan struct{}
	sent    chan string
}

func (b *blockingSender) ChannelMessageSendEmbed(channelID string, _ *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	<-b.release
	b.sent <- channelID
	return &discordgo.Message{}, nil
}

func TestParticipationMovedDoesNotBlockCaller(t *testing.T) {
	sender := &blockingSender{release: make(chan struct{}), sent: make(chan string, 1)}
	n := newNotifier(sender, "42", i18n.NewTranslator("es"), "es")

	ctx, cancel := context.WithCancel(context.Background())
	returned := make(chan struct{})
	go func() {
		n.ParticipationMoved(ctx, testChange(true))
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("ParticipationMoved blocked on a slow Discord API")
	}

	// The request context ending must not abort the pending send.
	cancel()
	close(sender.release)
	n.Wait()

	select {
	case got := <-sender.sent:
		if got != "42" {
			t.Fatalf("channel = %q, want 42", got)
		}
	default:
		t.Fatal("pending notification was not sent")
	}
}
