package series

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uyouii/chart-series/model"
	"gopkg.in/yaml.v3"
)

type nearestCase struct {
	Name     string         `yaml:"name"`
	Entries  []*model.Entry `yaml:"entries"`
	X        float64        `yaml:"x"`
	Y        *float64       `yaml:"y"`
	Rounding string         `yaml:"rounding"`
	Index    int            `yaml:"index"`
}

func (c *nearestCase) closestToY() float64 {
	if c.Y == nil {
		return math.NaN()
	}
	return *c.Y
}

func (c *nearestCase) rounding(t *testing.T) model.Rounding {
	for _, r := range []model.Rounding{model.RoundingUp, model.RoundingDown, model.RoundingClosest} {
		if r.String() == c.Rounding {
			return r
		}
	}
	t.Fatalf("unknown rounding %q in case %q", c.Rounding, c.Name)
	return model.RoundingClosest
}

func loadNearestCases(t *testing.T) []*nearestCase {
	d, err := os.ReadFile(filepath.Join("testdata", "nearest.yaml"))
	require.NoError(t, err)

	var cases []*nearestCase
	require.NoError(t, yaml.Unmarshal(d, &cases))
	require.NotEmpty(t, cases)
	return cases
}

// sampleEntries is the series used throughout: (1,5) (2,3) (2,9) (4,1).
func sampleEntries() []*model.Entry {
	return []*model.Entry{
		model.NewEntry(1, 5),
		model.NewEntry(2, 3),
		model.NewEntry(2, 9),
		model.NewEntry(4, 1),
	}
}

// bruteNearest returns the smallest |x - target| over entries.
func bruteNearest(entries []*model.Entry, target float64) float64 {
	best := math.Inf(1)
	for _, e := range entries {
		best = math.Min(best, math.Abs(e.X-target))
	}
	return best
}
