package simulate

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adpulse/internal/core/domain"
)

var testStart = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func TestGenerateDeterministicUnderSeed(t *testing.T) {
	cfg := Config{Campaigns: 3, Days: 30, StartDate: testStart}

	first, firstDrops, err := Generate(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	second, secondDrops, err := Generate(cfg, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, firstDrops, secondDrops)

	// a different seed must not reproduce the same table
	third, _, err := Generate(cfg, rand.New(rand.NewSource(43)))
	require.NoError(t, err)
	require.NotEqual(t, first, third)
}

func TestGenerateShape(t *testing.T) {
	cfg := Config{Campaigns: 4, Days: 20, StartDate: testStart}
	records, _, err := Generate(cfg, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Len(t, records, 4*20)

	for c := 0; c < 4; c++ {
		group := records[c*20 : (c+1)*20]
		cid := int64(c + 1)
		for d, rec := range group {
			assert.Equal(t, cid, rec.CampaignID)
			assert.Equal(t, fmt.Sprintf("Campaign %d", cid), rec.Name)
			assert.True(t, rec.Date.Equal(testStart.AddDate(0, 0, d)),
				"campaign %d day %d: got %v", cid, d, rec.Date)
		}
	}
}

func TestGenerateFloors(t *testing.T) {
	records, _, err := Generate(Config{Campaigns: 6, Days: 90, StartDate: testStart}, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	for _, rec := range records {
		assert.GreaterOrEqual(t, rec.Impressions, int64(1000))
		assert.GreaterOrEqual(t, rec.Clicks, int64(0))
		assert.GreaterOrEqual(t, rec.Conversions, int64(0))
		assert.GreaterOrEqual(t, rec.Cost, 0.0)
		assert.GreaterOrEqual(t, rec.Revenue, 0.0)
	}
}

func TestGenerateInjectedDrops(t *testing.T) {
	days := 90
	_, drops, err := Generate(Config{Campaigns: 5, Days: days, StartDate: testStart}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	require.Len(t, drops, 5*2)

	perCampaign := make(map[int64][]time.Time)
	for _, d := range drops {
		perCampaign[d.CampaignID] = append(perCampaign[d.CampaignID], d.Date)
	}
	lo := testStart.AddDate(0, 0, days/3)
	hi := testStart.AddDate(0, 0, days-3) // last eligible index is days-3
	for cid, dates := range perCampaign {
		require.Len(t, dates, 2, "campaign %d", cid)
		require.False(t, dates[0].Equal(dates[1]), "campaign %d: drop days must be distinct", cid)
		for _, date := range dates {
			assert.False(t, date.Before(lo), "campaign %d: drop %v before %v", cid, date, lo)
			assert.False(t, date.After(hi), "campaign %d: drop %v after %v", cid, date, hi)
		}
	}
}

func TestGenerateDefaultStartEndsToday(t *testing.T) {
	records, _, err := Generate(Config{Campaigns: 1, Days: 10}, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	require.Len(t, records, 10)
	// the series spans exactly Days-1 days regardless of the wall clock
	span := records[9].Date.Sub(records[0].Date)
	assert.Equal(t, 9*24*time.Hour, span)
}

func TestGenerateConfigErrors(t *testing.T) {
	_, _, err := Generate(Config{Campaigns: 0, Days: 30}, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, domain.ErrCampaignCount)

	_, _, err = Generate(Config{Campaigns: 1, Days: 2}, rand.New(rand.NewSource(1)))
	require.ErrorIs(t, err, domain.ErrDayCount)
}
