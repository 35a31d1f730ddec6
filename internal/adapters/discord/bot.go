package discord

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"

	"retreat/internal/ports/output"
)

// Ensure Notifier implements the output.AssignmentNotifier port.
var _ output.AssignmentNotifier = (*Notifier)(nil)

const sendTimeout = 5 * time.Second

// embedSender is the part of *discordgo.Session the notifier uses.
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts a summary embed to one channel after every room move.
type Notifier struct {
	sender    embedSender
	channelID string
	tr        output.Translator
	locale    string
	now       func() time.Time
	inflight  sync.WaitGroup
}

// NewNotifier creates a REST-only Discord session for token. No gateway
// connection is opened.
func NewNotifier(token, channelID string, tr output.Translator, locale string) (*Notifier, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	log.Printf("✅ Discord notifier ready (channel=%s)", channelID)
	return newNotifier(s, channelID, tr, locale), nil
}

func newNotifier(sender embedSender, channelID string, tr output.Translator, locale string) *Notifier {
	return &Notifier{
		sender:    sender,
		channelID: channelID,
		tr:        tr,
		locale:    locale,
		now:       time.Now,
	}
}

// ParticipationMoved sends the embed in the background and returns at once.
// Failures are logged and dropped.
func (n *Notifier) ParticipationMoved(ctx context.Context, change output.AssignmentChange) {
	ctx = context.WithoutCancel(ctx)
	embed := n.buildAssignmentEmbed(change)

	n.inflight.Add(1)
	go func() {
		defer n.inflight.Done()
		ctx, cancel := context.WithTimeout(ctx, sendTimeout)
		defer cancel()
		if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, embed, discordgo.WithContext(ctx)); err != nil {
			log.Printf("❌ Discord notification failed (participation=%s): %v", change.Participation.ID, err)
		}
	}()
}

// Wait blocks until every pending notification has been sent or has failed.
func (n *Notifier) Wait() {
	n.inflight.Wait()
}
