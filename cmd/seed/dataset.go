package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"vidstream/pkg/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	moderatorName    = "mod_marta"
	creatorCount     = 5
	videosPerCreator = 6
	day              = 24 * time.Hour
)

var reportReasons = []string{
	"spam",
	"misleading title",
	"copyright infringement",
	"harassment",
	"violent content",
}

type dataset struct {
	Users             []*models.User
	Channels          []*models.Channel
	Videos            []*models.Video
	Subscriptions     []*models.Subscription
	PaidSubscriptions []*models.PaidSubscription
	Views             []*models.View
	Comments          []*models.Comment
	Strikes           []*models.ChannelStrike
	Reports           []*models.Report
}

type batch struct {
	name string
	rows interface{}
}

// batches lists the tables in foreign key order.
func (d *dataset) batches() []batch {
	return []batch{
		{"users", d.Users},
		{"channels", d.Channels},
		{"videos", d.Videos},
		{"subscriptions", d.Subscriptions},
		{"paid subscriptions", d.PaidSubscriptions},
		{"views", d.Views},
		{"comments", d.Comments},
		{"strikes", d.Strikes},
		{"reports", d.Reports},
	}
}

func newID(rng *rand.Rand) string {
	var b [16]byte
	for i := range b {
		b[i] = byte(rng.IntN(256))
	}
	id, _ := uuid.FromBytes(b[:])
	// Force a valid version 4 layout.
	id[6] = (id[6] & 0x0f) | 0x40
	id[8] = (id[8] & 0x3f) | 0x80
	return id.String()
}

// buildDataset generates a demo platform: one moderator, a handful of
// creators with channels and videos, and viewers who watch, react, comment,
// subscribe, pay and report. Every category the analytics read is covered,
// including soft-deleted and banned viewers.
func buildDataset(rng *rand.Rand, now time.Time, viewerCount, bcryptCost int) (*dataset, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	d := &dataset{}
	newUser := func(name string) *models.User {
		u := &models.User{
			ID:        newID(rng),
			Username:  name,
			Email:     name + "@vidstream.test",
			Password:  string(hash),
			CreatedAt: now.Add(-time.Duration(365+rng.IntN(365)) * day),
		}
		u.UpdatedAt = u.CreatedAt
		d.Users = append(d.Users, u)
		return u
	}

	moderator := newUser(moderatorName)
	moderator.IsModerator = true

	for i := 0; i < creatorCount; i++ {
		owner := newUser(fmt.Sprintf("creator_%02d", i+1))
		channel := &models.Channel{
			ID:        newID(rng),
			Name:      fmt.Sprintf("channel_%02d", i+1),
			OwnerID:   owner.ID,
			CreatedAt: owner.CreatedAt,
		}
		d.Channels = append(d.Channels, channel)

		for j := 0; j < videosPerCreator; j++ {
			d.Videos = append(d.Videos, &models.Video{
				ID:          newID(rng),
				Title:       fmt.Sprintf("%s video #%d", channel.Name, j+1),
				Description: "Seeded demo video",
				ChannelID:   channel.ID,
				IsActive:    true,
				IsMonetized: rng.IntN(2) == 0,
				UploadedAt:  now.Add(-time.Duration(1+rng.IntN(300)) * day),
			})
		}
	}

	viewers := make([]*models.User, 0, viewerCount)
	for i := 0; i < viewerCount; i++ {
		viewers = append(viewers, newUser(fmt.Sprintf("viewer_%02d", i+1)))
	}
	if len(viewers) > 1 {
		viewers[len(viewers)-1].IsDeleted = true
		viewers[len(viewers)-2].IsBanned = true
	}

	for vi, viewer := range viewers {
		// Every viewer watches a subset of the catalog.
		for _, video := range d.Videos {
			if rng.IntN(3) != 0 {
				continue
			}
			view := &models.View{
				UserID:            viewer.ID,
				VideoID:           video.ID,
				WatchedPercentage: float64(rng.IntN(101)) / 100,
				WatchedAt:         video.UploadedAt.Add(time.Duration(rng.IntN(int(now.Sub(video.UploadedAt)/time.Hour)+1)) * time.Hour),
			}
			switch rng.IntN(4) {
			case 0:
				r := models.ReactionLiked
				view.Reaction = &r
			case 1:
				r := models.ReactionDisliked
				view.Reaction = &r
			}
			d.Views = append(d.Views, view)

			if rng.IntN(5) == 0 {
				d.Comments = append(d.Comments, &models.Comment{
					ID:          newID(rng),
					CommentText: fmt.Sprintf("%s was here", viewer.Username),
					UserID:      viewer.ID,
					VideoID:     video.ID,
					CommentedAt: view.WatchedAt.Add(time.Minute),
				})
			}
		}

		for ci, channel := range d.Channels {
			if (vi+ci)%3 != 0 {
				continue
			}
			since := now.Add(-time.Duration(30+rng.IntN(200)) * day)
			active := rng.IntN(4) != 0
			d.Subscriptions = append(d.Subscriptions, &models.Subscription{
				UserID:    viewer.ID,
				ChannelID: channel.ID,
				IsActive:  active,
				CreatedAt: since,
			})
			d.PaidSubscriptions = append(d.PaidSubscriptions, paidPeriods(rng, viewer.ID, channel.ID, since, now, active, vi+ci)...)
		}

		if vi%4 == 0 {
			for k := 0; k < 1+rng.IntN(4); k++ {
				video := d.Videos[rng.IntN(len(d.Videos))]
				d.Reports = append(d.Reports, &models.Report{
					ID:         newID(rng),
					Reason:     reportReasons[rng.IntN(len(reportReasons))],
					ReporterID: viewer.ID,
					VideoID:    video.ID,
					IsResolved: rng.IntN(3) == 0,
					CreatedAt:  now.Add(-time.Duration(rng.IntN(60)) * day),
				})
			}
		}
	}

	// Channels get 0, 1 (expired), 2, 3 and 3 strikes.
	for ci, channel := range d.Channels {
		for k := 0; k < ci && k < 3; k++ {
			issued := now.Add(-time.Duration(k*20+1) * day)
			if ci == 1 {
				issued = now.Add(-30 * day)
			}
			var videoID *string
			if k == 0 {
				id := d.Videos[ci*videosPerCreator].ID
				videoID = &id
			}
			d.Strikes = append(d.Strikes, &models.ChannelStrike{
				ID:        newID(rng),
				ChannelID: channel.ID,
				VideoID:   videoID,
				IssuedAt:  issued,
				Duration:  7 * day,
			})
		}
	}

	return d, nil
}

// paidPeriods splits [since, now) into consecutive 30-day billing periods,
// rotating through every tier. An active subscription leaves its last period open.
func paidPeriods(rng *rand.Rand, userID, channelID string, since, now time.Time, active bool, offset int) []*models.PaidSubscription {
	var periods []*models.PaidSubscription
	start := since
	for i := 0; start.Before(now); i++ {
		end := start.Add(30 * day)
		period := &models.PaidSubscription{
			ID:           newID(rng),
			SubUserID:    userID,
			SubChannelID: channelID,
			Tier:         models.PaidSubTiers[(offset+i)%len(models.PaidSubTiers)],
			ActiveSince:  start,
		}
		if end.After(now) {
			if !active {
				closed := now
				period.ActiveTo = &closed
			}
			periods = append(periods, period)
			break
		}
		closed := end
		period.ActiveTo = &closed
		periods = append(periods, period)
		start = end
	}
	return periods
}
