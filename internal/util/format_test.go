package util_test

import (
	"testing"
	"time"

	"jobboard-api/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestScoreBand(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{100, util.ScoreBandHigh},
		{85, util.ScoreBandHigh},
		{80, util.ScoreBandHigh},
		{79.9, util.ScoreBandMedium},
		{60, util.ScoreBandMedium},
		{59.9, util.ScoreBandLow},
		{30, util.ScoreBandLow},
		{0, util.ScoreBandLow},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, util.ScoreBand(c.score), "score %v", c.score)
	}
}

func TestFormatLongDate(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "March 7, 2025", util.FormatLongDate(ts))
}
