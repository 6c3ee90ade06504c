package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikmy/hcalendar/pkg/calendar"
	"github.com/nikmy/hcalendar/pkg/environment"
)

const testConfig = `
Environment: prod
Telegram:
  token: "123:abc"
  pollInterval: 10s
  editInterval: 100ms
  editQueue: 64
  stripWidth: 5
  sessions:
    idleTTL: 1h
HTTP:
  http:
    addr: ":8080"
    read_timeout: 5s
  sessions:
    idleTTL: 30m
    sweepInterval: 1m
Calendar:
  language: ru
  minDate: today
  aheadDays: 30
`

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig([]byte(testConfig))
	require.NoError(t, err)

	require.Equal(t, environment.Production, cfg.Environment)
	require.Equal(t, "123:abc", cfg.Telegram.Token)
	require.Equal(t, 10*time.Second, cfg.Telegram.PollInterval)
	require.Equal(t, 100*time.Millisecond, cfg.Telegram.EditInterval)
	require.Equal(t, 5, cfg.Telegram.StripWidth)
	require.Equal(t, time.Hour, cfg.Telegram.Sessions.IdleTTL)
	require.Equal(t, ":8080", cfg.HTTP.HTTP.Addr)
	require.Equal(t, time.Minute, cfg.HTTP.Sessions.SweepInterval)
	require.Equal(t, CalendarConfig{Language: "ru", MinDate: "today", AheadDays: 30}, cfg.Calendar)

	_, err = parseConfig([]byte("Telegram: ["))
	require.Error(t, err)
}

func TestCalendarConfig_options(t *testing.T) {
	now := time.Date(2024, time.March, 10, 15, 4, 5, 0, time.UTC)
	clock := calendar.WithClock(func() time.Time { return now })

	type testcase struct {
		name    string
		cfg     CalendarConfig
		wantMin time.Time
		wantMax time.Time
		wantErr bool
	}

	tests := [...]testcase{
		{
			name:    "unbounded",
			cfg:     CalendarConfig{},
			wantMin: calendar.MinDate,
			wantMax: calendar.MaxDate,
		},
		{
			name:    "today and days ahead",
			cfg:     CalendarConfig{MinDate: "today", AheadDays: 30},
			wantMin: calendar.Date(2024, time.March, 10),
			wantMax: calendar.Date(2024, time.April, 9),
		},
		{
			name:    "explicit dates win over days ahead",
			cfg:     CalendarConfig{MinDate: "2024-01-01", MaxDate: "2024-12-31", AheadDays: 30},
			wantMin: calendar.Date(2024, time.January, 1),
			wantMax: calendar.Date(2024, time.December, 31),
		},
		{
			name:    "malformed",
			cfg:     CalendarConfig{MaxDate: "31.12.2024"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.cfg.options(now)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			m, err := calendar.New(append(opts, clock)...)
			require.NoError(t, err)
			require.Equal(t, tt.wantMin, m.State().MinimumDate)
			require.Equal(t, tt.wantMax, m.State().MaximumDate)
		})
	}
}

func TestCalendarConfig_language(t *testing.T) {
	opts, err := CalendarConfig{Language: "ru"}.options(time.Now())
	require.NoError(t, err)

	m, err := calendar.New(opts...)
	require.NoError(t, err)
	require.Equal(t, calendar.Russian, m.Locale())
}
