package codec_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/pollyskema/codec"
)

func TestEpochSeconds(t *testing.T) {
	assert.Equal(t, 3600.0, codec.EpochSeconds(time.Unix(3600, 0).UTC()))
	assert.Equal(t, 1.5, codec.EpochSeconds(time.Unix(1, 5e8).UTC()))

	// the zone is ignored: the wall clock is read as UTC
	tokyo := time.FixedZone("JST", 9*3600)
	assert.Equal(t, 3600.0, codec.EpochSeconds(time.Date(1970, 1, 1, 1, 0, 0, 0, tokyo)))
}

func TestFromEpochSeconds(t *testing.T) {
	got := codec.FromEpochSeconds(1546300800.25)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(time.Date(2019, 1, 1, 0, 0, 0, 250e6, time.UTC)))

	// rounded to the microsecond
	assert.Equal(t, 1, codec.FromEpochSeconds(0.0000014).Nanosecond()/1000)
}

func TestParseTime(t *testing.T) {
	cases := map[string]time.Time{
		"2019-03-01T12:00:00Z":        time.Date(2019, 3, 1, 12, 0, 0, 0, time.UTC),
		"2019-03-01T12:00:00.5+00:00": time.Date(2019, 3, 1, 12, 0, 0, 5e8, time.UTC),
		"2019-03-01T12:00:00":         time.Date(2019, 3, 1, 12, 0, 0, 0, time.UTC),
		"2019-03-01 12:00:00":         time.Date(2019, 3, 1, 12, 0, 0, 0, time.UTC),
		"2019-03-01":                  time.Date(2019, 3, 1, 0, 0, 0, 0, time.UTC),
		" 2019-03-01T21:00:00+09:00 ": time.Date(2019, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := codec.ParseTime(in)
		require.NoError(t, err, in)
		assert.True(t, got.Equal(want), "%q: got %v", in, got)
	}
	_, err := codec.ParseTime("01/03/2019")
	assert.Error(t, err)
}

func TestISODuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		text string
	}{
		{0, "PT0S"},
		{26 * time.Hour, "P1DT2H"},
		{48 * time.Hour, "P2D"},
		{90 * time.Minute, "PT1H30M"},
		{1500 * time.Millisecond, "PT1.5S"},
		{-time.Second, "-PT1S"},
	}
	for _, c := range cases {
		assert.Equal(t, c.text, codec.FormatISODuration(c.d))
		got, err := codec.ParseISODuration(c.text)
		require.NoError(t, err, c.text)
		assert.Equal(t, c.d, got, c.text)
	}

	got, err := codec.ParseISODuration("P1W")
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, got)

	got, err = codec.ParseISODuration("PT0,5S")
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, got)

	_, err = codec.ParseISODuration("P1M")
	assert.True(t, errors.Is(err, codec.ErrCalendarUnit))
	_, err = codec.ParseISODuration("P1Y")
	assert.True(t, errors.Is(err, codec.ErrCalendarUnit))

	for _, bad := range []string{"", "P", "PT", "1H", "PT1", "P1H", "PTT1H"} {
		_, err := codec.ParseISODuration(bad)
		assert.Error(t, err, bad)
	}
}

func TestDefaultEncoder(t *testing.T) {
	v, ok := codec.DefaultEncoder(time.Unix(3600, 0).UTC())
	require.True(t, ok)
	assert.Equal(t, json.Number("3600.0"), v)

	ts := time.Unix(1, 250e6).UTC()
	v, ok = codec.DefaultEncoder(&ts)
	require.True(t, ok)
	assert.Equal(t, json.Number("1.25"), v)

	v, ok = codec.DefaultEncoder(time.Hour)
	require.True(t, ok)
	assert.Equal(t, "PT1H", v)

	_, ok = codec.DefaultEncoder("plain")
	assert.False(t, ok)
}
