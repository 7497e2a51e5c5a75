package usecase

import (
	"context"
	"fmt"
	"time"

	"vidstream/pkg/metrics"
	"vidstream/services/analytics/internal/entity"

	"github.com/shopspring/decimal"
)

const (
	day          = 24 * time.Hour
	billingCycle = 30 * day
)

func (uc *analyticsUseCase) ChannelRevenue(ctx context.Context, channelID string) (*entity.ChannelRevenue, error) {
	const op = "channel_revenue"
	defer metrics.ObserveOperation(op, time.Now())

	if _, err := uc.channel(ctx, channelID); err != nil {
		return nil, uc.fail(op, err)
	}

	periods, err := uc.analyticsRepo.ListPaidPeriods(ctx, channelID)
	if err != nil {
		return nil, uc.fail(op, fmt.Errorf("failed to list paid periods: %w", err))
	}

	revenue, err := AccrueRevenue(periods, uc.clock.Now())
	if err != nil {
		return nil, uc.fail(op, err)
	}

	return &entity.ChannelRevenue{
		ChannelID: channelID,
		Revenue:   revenue.StringFixed(2),
		Periods:   len(periods),
	}, nil
}

// AccrueRevenue sums tier price times billed months over every period.
func AccrueRevenue(periods []*entity.PaidPeriod, now time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, period := range periods {
		price, err := period.Tier.Price()
		if err != nil {
			return decimal.Zero, fmt.Errorf("paid period %s: %w", period.ID, err)
		}
		months := decimal.NewFromInt(BilledMonths(period, now))
		total = total.Add(price.Mul(months))
	}
	return total, nil
}

// BilledMonths is the number of whole 30-day months a period is charged for,
// never less than one. An open period is billed as one cycle from its start,
// clamped to now.
func BilledMonths(period *entity.PaidPeriod, now time.Time) int64 {
	start := period.ActiveSince

	var end time.Time
	if period.ActiveTo != nil {
		end = *period.ActiveTo
	} else {
		end = start.Add(billingCycle)
		if end.After(now) {
			end = now
		}
	}

	days := int64(end.Sub(start) / day)
	months := days / 30
	if months < 1 {
		months = 1
	}
	return months
}
