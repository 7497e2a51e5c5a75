package main

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"vidstream/pkg/clock"
	"vidstream/services/analytics/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReporter struct {
	profiles   []*entity.ChannelRiskProfile
	err        error
	minReports int64
	limit      int
}

func (s *stubReporter) ChannelsRiskReport(_ context.Context, minReports int64, limit int) ([]*entity.ChannelRiskProfile, error) {
	s.minReports, s.limit = minReports, limit
	return s.profiles, s.err
}

type memoryStore struct {
	objects map[string][]byte
}

func (m *memoryStore) PutJSON(_ context.Context, key string, body []byte) (string, error) {
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[key] = body
	return "s3://test/" + key, nil
}

func TestReportKey(t *testing.T) {
	at := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "reports/channel-risk/2024-06-15.json", reportKey(at))
}

func TestExportRiskReport(t *testing.T) {
	now := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)
	reporter := &stubReporter{profiles: []*entity.ChannelRiskProfile{
		{ChannelID: "chan-1", TotalReports: 12, RiskLevel: entity.RiskHigh},
	}}
	store := &memoryStore{}

	location, err := exportRiskReport(context.Background(), reporter, store, clock.Fixed(now), 2, 10)

	require.NoError(t, err)
	assert.Equal(t, "s3://test/reports/channel-risk/2024-06-15.json", location)
	assert.Equal(t, int64(2), reporter.minReports)
	assert.Equal(t, 10, reporter.limit)

	var report riskReport
	require.NoError(t, json.Unmarshal(store.objects["reports/channel-risk/2024-06-15.json"], &report))
	assert.Equal(t, int64(2), report.MinReports)
	require.Len(t, report.Channels, 1)
	assert.Equal(t, entity.RiskHigh, report.Channels[0].RiskLevel)
}

func TestExportRiskReport_ReporterError(t *testing.T) {
	store := &memoryStore{}

	_, err := exportRiskReport(context.Background(), &stubReporter{err: errors.New("db down")}, store, clock.Fixed(time.Now()), 1, 20)

	assert.ErrorContains(t, err, "db down")
	assert.Empty(t, store.objects)
}
