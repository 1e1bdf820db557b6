package announce

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/campuslife/CampusLife_Go/internal/domain"
	"github.com/campuslife/CampusLife_Go/internal/logger"
)

// Config holds the announcer configuration
type Config struct {
	Token     string
	ChannelID string
}

// messageSender is the slice of discordgo.Session the announcer uses
type messageSender interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordAnnouncer posts daily winner announcements to a Discord channel.
// It implements dailysong.Notifier.
type DiscordAnnouncer struct {
	session   messageSender
	channelID string
}

// NewDiscordAnnouncer creates an announcer from a bot token. The session
// sends messages over REST only, so no gateway connection is opened.
func NewDiscordAnnouncer(cfg Config) (*DiscordAnnouncer, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return &DiscordAnnouncer{
		session:   session,
		channelID: cfg.ChannelID,
	}, nil
}

// AnnounceWinner posts the day's winning pick. Failures are logged and
// swallowed; announcing is best-effort.
func (a *DiscordAnnouncer) AnnounceWinner(ctx context.Context, winner *domain.Submission) {
	log := logger.FromContext(ctx)

	if winner == nil {
		return
	}

	message := fmt.Sprintf("🎵 Song of the day (%s): **%s** by **%s**, picked by %s",
		winner.Date, winner.Song.TrackName, winner.Song.ArtistName, winner.DisplayName)

	if _, err := a.session.ChannelMessageSend(a.channelID, message); err != nil {
		log.Warn("Failed to announce winner", "date", winner.Date, "error", err)
		return
	}
	log.Info("Winner announced", "date", winner.Date, "channel_id", a.channelID)
}
