package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"vidstream/pkg/metrics"
	"vidstream/services/analytics/internal/entity"
)

func (uc *analyticsUseCase) Recommend(ctx context.Context, userID string, limit int) ([]*entity.VideoRef, error) {
	const op = "recommend"
	defer metrics.ObserveOperation(op, time.Now())

	if _, err := uc.activeUser(ctx, userID); err != nil {
		return nil, uc.fail(op, err)
	}
	if limit <= 0 {
		return []*entity.VideoRef{}, nil
	}

	catalog, err := uc.analyticsRepo.ListCatalog(ctx)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to list catalog: %w", err))
	}
	affinity, err := uc.analyticsRepo.CountUserViewsByChannel(ctx, userID)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to count channel affinity: %w", err))
	}
	popularity, err := uc.analyticsRepo.CountViewsByVideo(ctx)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to count popularity: %w", err))
	}
	channelIDs, err := uc.analyticsRepo.ListActiveSubscriptions(ctx, userID)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to list subscriptions: %w", err))
	}

	subscribed := make(map[string]bool, len(channelIDs))
	for _, id := range channelIDs {
		subscribed[id] = true
	}

	return RankVideos(catalog, affinity, subscribed, popularity, limit), nil
}

// RankVideos attaches the three relevance signals to every catalog video and
// returns at most limit of them, most relevant first. Ties on all signals are
// broken by video id ascending so the order is reproducible.
func RankVideos(catalog []*entity.VideoRef, affinity map[string]int64, subscribed map[string]bool, popularity map[string]int64, limit int) []*entity.VideoRef {
	ranked := make([]*entity.VideoRef, 0, len(catalog))
	for _, video := range catalog {
		ref := *video
		ref.ChannelAffinity = affinity[video.ChannelID]
		ref.IsSubscribed = subscribed[video.ChannelID]
		ref.Popularity = popularity[video.ID]
		ranked = append(ranked, &ref)
	}

	slices.SortStableFunc(ranked, compareRelevance)

	if limit < 0 {
		limit = 0
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func compareRelevance(a, b *entity.VideoRef) int {
	if c := cmp.Compare(b.ChannelAffinity, a.ChannelAffinity); c != 0 {
		return c
	}
	if a.IsSubscribed != b.IsSubscribed {
		if a.IsSubscribed {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(b.Popularity, a.Popularity); c != 0 {
		return c
	}
	return strings.Compare(a.ID, b.ID)
}
