package hof_test

import (
	"math"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive
	"pgregory.net/rapid"

	"github.com/rochi88/go-exercise/internal/pkg/hof"
)

func TestColor_Increments(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	c := hof.NewColor(150, 200, 18)
	g.Expect(c.IncrRed(12)).To(Equal(162))
	g.Expect(c.IncrGreen(30)).To(Equal(230))
	g.Expect(c.IncrBlue(-9)).To(Equal(9))
	g.Expect([]int{c.Red(), c.Green(), c.Blue()}).To(Equal([]int{162, 230, 9}))
	g.Expect(c.Hex()).To(Equal("#a2e609"))
}

func TestColor_Clamps(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	c := hof.NewColor(-5, 300, 128)
	g.Expect(c.Red()).To(Equal(0))
	g.Expect(c.Green()).To(Equal(255))

	g.Expect(c.IncrBlue(500)).To(Equal(255))
	g.Expect(c.IncrBlue(-1000)).To(Equal(0))
	g.Expect(c.IncrRed(-1)).To(Equal(0))

	// increments saturate rather than wrap
	c = hof.NewColor(255, 0, 128)
	g.Expect(c.IncrRed(math.MaxInt)).To(Equal(255))
	g.Expect(c.IncrGreen(math.MinInt)).To(Equal(0))
	g.Expect(c.IncrBlue(math.MaxInt)).To(Equal(255))
	g.Expect(c.IncrBlue(math.MinInt)).To(Equal(0))
}

func TestColor_Property(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		c := hof.NewColor(
			rapid.IntRange(-500, 500).Draw(rt, "r"),
			rapid.IntRange(-500, 500).Draw(rt, "g"),
			rapid.IntRange(-500, 500).Draw(rt, "b"),
		)
		incrs := []func(int) int{c.IncrRed, c.IncrGreen, c.IncrBlue}

		steps := rapid.IntRange(0, 50).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			ch := rapid.IntRange(0, 2).Draw(rt, "channel")
			amount := rapid.IntRange(-400, 400).Draw(rt, "amount")
			incrs[ch](amount)

			for _, v := range []int{c.Red(), c.Green(), c.Blue()} {
				if v < hof.ChannelMin || v > hof.ChannelMax {
					rt.Fatalf("channel out of range: %d", v)
				}
			}
		}
	})
}
