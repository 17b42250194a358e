// Package walkthrough replays the documented example of every exercise
// and records each call with its result.
package walkthrough

import (
	"fmt"
	"strings"

	"github.com/rochi88/go-exercise/internal/pkg/hof"
)

// Step is one call made during a walkthrough
type Step struct {
	Exercise string `json:"exercise"`
	Call     string `json:"call"`
	Result   string `json:"result"`
}

type tour struct {
	name string
	run  func(r *recorder)
}

type recorder struct {
	exercise string
	steps    []Step
}

func (r *recorder) record(call string, result any) {
	r.steps = append(r.steps, Step{Exercise: r.exercise, Call: call, Result: fmt.Sprint(result)})
}

var tours = []tour{
	{"counter", func(r *recorder) {
		c := hof.NewCounter(2)
		r.record("counter(2).next()", c.Next())
		r.record("next()", c.Next())
	}},
	{"multiply", func(r *recorder) {
		r.record("multiply(3)(5)", hof.Multiply(3)(5))
	}},
	{"total", func(r *recorder) {
		t := hof.NewTotal(20)
		r.record("total(20).discount(0.50)", t.Discount(0.50))
		r.record("discount(0.20)", t.Discount(0.20))
	}},
	{"user", func(r *recorder) {
		u := hof.NewUser()
		r.record(`setName("Francis Bacon")`, u.SetName("Francis Bacon"))
		r.record("getName()", fmt.Sprintf("%q", u.Name()))
		r.record(`setName("123 hi")`, u.SetName("123 hi"))
		r.record("getName()", fmt.Sprintf("%q", u.Name()))
	}},
	{"color", func(r *recorder) {
		c := hof.NewColor(150, 200, 18)
		r.record("color(150, 200, 18).incrRed(12)", c.IncrRed(12))
		r.record("incrGreen(30)", c.IncrGreen(30))
		r.record("incrBlue(-9)", c.IncrBlue(-9))
		r.record("red(), green(), blue()", fmt.Sprintf("%d, %d, %d", c.Red(), c.Green(), c.Blue()))
		r.record("incrGreen(100)", c.IncrGreen(100))
	}},
	{"lives", func(r *recorder) {
		l := hof.NewLives(5)
		l.Died()
		r.record("lives(5).died(); left()", l.Left())
		l.Died()
		r.record("died(); left()", l.Left())
		l.Restart()
		r.record("restart(); left()", l.Left())
	}},
	{"messages", func(r *recorder) {
		m := hof.NewMessages()
		r.record(`record("first message")`, fmt.Sprintf("%q", m.Record("first message")))
		r.record(`record("second message")`, fmt.Sprintf("%q", m.Record("second message")))
	}},
	{"pocket", func(r *recorder) {
		p := hof.NewPocket(50)
		p.Buy()
		r.record("pocket(50).buy(); coins(), trinkets()", fmt.Sprintf("%d, %d", p.Coins(), p.Trinkets()))
		p.Buy()
		r.record("buy(); coins(), trinkets()", fmt.Sprintf("%d, %d", p.Coins(), p.Trinkets()))
		p.Sell()
		r.record("sell(); coins(), trinkets()", fmt.Sprintf("%d, %d", p.Coins(), p.Trinkets()))
	}},
}

// Exercises returns the exercise names in walkthrough order
func Exercises() []string {
	names := make([]string, 0, len(tours))
	for _, t := range tours {
		names = append(names, t.name)
	}
	return names
}

// Run replays the named exercises, or all of them when names is empty
func Run(names ...string) ([]Step, error) {
	selected := tours
	if len(names) > 0 {
		selected = make([]tour, 0, len(names))
		for _, name := range names {
			t, ok := find(name)
			if !ok {
				return nil, fmt.Errorf("unknown exercise %q (have %s)", name, strings.Join(Exercises(), ", "))
			}
			selected = append(selected, t)
		}
	}

	var steps []Step
	for _, t := range selected {
		r := &recorder{exercise: t.name}
		t.run(r)
		steps = append(steps, r.steps...)
	}
	return steps, nil
}

func find(name string) (tour, bool) {
	for _, t := range tours {
		if strings.EqualFold(t.name, name) {
			return t, true
		}
	}
	return tour{}, false
}
