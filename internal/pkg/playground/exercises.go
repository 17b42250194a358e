package playground

import (
	"fmt"
	"math"

	"github.com/rochi88/go-exercise/internal/pkg/hof"
)

// exercise adapts one hof handle to named operations
type exercise interface {
	invoke(op string, req InvokeRequest) (result any, rejected bool, err error)
	state() map[string]any
}

type catalogEntry struct {
	create     []string
	operations []string
	build      func(CreateRequest) exercise
}

var catalog = map[Kind]catalogEntry{
	KindCounter: {
		create:     []string{"start"},
		operations: []string{"next", "value"},
		build: func(r CreateRequest) exercise {
			return &counterExercise{c: hof.NewCounter(r.Start)}
		},
	},
	KindMultiply: {
		create:     []string{"factor"},
		operations: []string{"apply"},
		build: func(r CreateRequest) exercise {
			return &multiplyExercise{factor: r.Factor, apply: hof.Multiply(r.Factor)}
		},
	},
	KindTotal: {
		create:     []string{"amount"},
		operations: []string{"discount", "amount"},
		build: func(r CreateRequest) exercise {
			return &totalExercise{t: hof.NewTotal(r.Amount)}
		},
	},
	KindUser: {
		operations: []string{"setName", "getName"},
		build: func(CreateRequest) exercise {
			return &userExercise{u: hof.NewUser()}
		},
	},
	KindColor: {
		create:     []string{"red", "green", "blue"},
		operations: []string{"incrRed", "incrGreen", "incrBlue", "red", "green", "blue", "hex"},
		build: func(r CreateRequest) exercise {
			return &colorExercise{c: hof.NewColor(r.Red, r.Green, r.Blue)}
		},
	},
	KindLives: {
		create:     []string{"start"},
		operations: []string{"left", "died", "restart"},
		build: func(r CreateRequest) exercise {
			return &livesExercise{l: hof.NewLives(r.Start)}
		},
	},
	KindMessages: {
		operations: []string{"record", "count"},
		build: func(CreateRequest) exercise {
			return &messagesExercise{m: hof.NewMessages()}
		},
	},
	KindPocket: {
		create:     []string{"start"},
		operations: []string{"buy", "sell", "coins", "trinkets"},
		build: func(r CreateRequest) exercise {
			return &pocketExercise{p: hof.NewPocket(r.Start)}
		},
	},
}

// kindOrder fixes the listing order
var kindOrder = []Kind{KindCounter, KindMultiply, KindTotal, KindUser, KindColor, KindLives, KindMessages, KindPocket}

func numberArg(op string, req InvokeRequest) (float64, error) {
	if req.Number == nil {
		return 0, fmt.Errorf("%w: %s needs a number", ErrMissingArgument, op)
	}
	n := *req.Number
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %s needs a finite number", ErrInvalidArgument, op)
	}
	return n, nil
}

func intArg(op string, req InvokeRequest) (int, error) {
	n, err := numberArg(op, req)
	if err != nil {
		return 0, err
	}
	if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s needs a whole number", ErrInvalidArgument, op)
	}
	return int(n), nil
}

// finiteResult rejects results JSON cannot carry
func finiteResult(op string, v float64) (any, bool, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, false, fmt.Errorf("%w: %s result is not finite", ErrInvalidArgument, op)
	}
	return v, false, nil
}

func textArg(op string, req InvokeRequest) (string, error) {
	if req.Text == nil {
		return "", fmt.Errorf("%w: %s needs text", ErrMissingArgument, op)
	}
	return *req.Text, nil
}

func unknownOperation(kind Kind, op string) error {
	return fmt.Errorf("%w: %s has no operation %q", ErrUnknownOperation, kind, op)
}

type counterExercise struct{ c *hof.Counter }

func (e *counterExercise) invoke(op string, _ InvokeRequest) (any, bool, error) {
	switch op {
	case "next":
		return e.c.Next(), false, nil
	case "value":
		return e.c.Value(), false, nil
	}
	return nil, false, unknownOperation(KindCounter, op)
}

func (e *counterExercise) state() map[string]any {
	return map[string]any{"value": e.c.Value()}
}

type multiplyExercise struct {
	factor float64
	apply  func(float64) float64
}

func (e *multiplyExercise) invoke(op string, req InvokeRequest) (any, bool, error) {
	if op != "apply" {
		return nil, false, unknownOperation(KindMultiply, op)
	}
	x, err := numberArg(op, req)
	if err != nil {
		return nil, false, err
	}
	return finiteResult(op, e.apply(x))
}

func (e *multiplyExercise) state() map[string]any {
	return map[string]any{"factor": e.factor}
}

type totalExercise struct{ t *hof.Total }

func (e *totalExercise) invoke(op string, req InvokeRequest) (any, bool, error) {
	switch op {
	case "discount":
		rate, err := numberArg(op, req)
		if err != nil {
			return nil, false, err
		}
		return finiteResult(op, e.t.Discount(rate))
	case "amount":
		return e.t.Amount(), false, nil
	}
	return nil, false, unknownOperation(KindTotal, op)
}

func (e *totalExercise) state() map[string]any {
	return map[string]any{"amount": e.t.Amount()}
}

type userExercise struct{ u *hof.User }

func (e *userExercise) invoke(op string, req InvokeRequest) (any, bool, error) {
	switch op {
	case "setName":
		name, err := textArg(op, req)
		if err != nil {
			return nil, false, err
		}
		ok := e.u.SetName(name)
		return ok, !ok, nil
	case "getName":
		return e.u.Name(), false, nil
	}
	return nil, false, unknownOperation(KindUser, op)
}

func (e *userExercise) state() map[string]any {
	return map[string]any{"name": e.u.Name()}
}

type colorExercise struct{ c *hof.Color }

func (e *colorExercise) invoke(op string, req InvokeRequest) (any, bool, error) {
	var incr func(int) int
	switch op {
	case "incrRed":
		incr = e.c.IncrRed
	case "incrGreen":
		incr = e.c.IncrGreen
	case "incrBlue":
		incr = e.c.IncrBlue
	case "red":
		return e.c.Red(), false, nil
	case "green":
		return e.c.Green(), false, nil
	case "blue":
		return e.c.Blue(), false, nil
	case "hex":
		return e.c.Hex(), false, nil
	default:
		return nil, false, unknownOperation(KindColor, op)
	}

	amount, err := intArg(op, req)
	if err != nil {
		return nil, false, err
	}
	return incr(amount), false, nil
}

func (e *colorExercise) state() map[string]any {
	return map[string]any{"red": e.c.Red(), "green": e.c.Green(), "blue": e.c.Blue(), "hex": e.c.Hex()}
}

type livesExercise struct{ l *hof.Lives }

func (e *livesExercise) invoke(op string, _ InvokeRequest) (any, bool, error) {
	switch op {
	case "left":
		return e.l.Left(), false, nil
	case "died":
		wasOut := e.l.Left() == 0
		return e.l.Died(), wasOut, nil
	case "restart":
		return e.l.Restart(), false, nil
	}
	return nil, false, unknownOperation(KindLives, op)
}

func (e *livesExercise) state() map[string]any {
	return map[string]any{"left": e.l.Left()}
}

type messagesExercise struct{ m *hof.Messages }

func (e *messagesExercise) invoke(op string, req InvokeRequest) (any, bool, error) {
	switch op {
	case "record":
		text, err := textArg(op, req)
		if err != nil {
			return nil, false, err
		}
		return e.m.Record(text), false, nil
	case "count":
		return e.m.Count(), false, nil
	}
	return nil, false, unknownOperation(KindMessages, op)
}

func (e *messagesExercise) state() map[string]any {
	return map[string]any{"count": e.m.Count()}
}

type pocketExercise struct{ p *hof.Pocket }

func (e *pocketExercise) invoke(op string, _ InvokeRequest) (any, bool, error) {
	switch op {
	case "buy":
		ok := e.p.Buy()
		return ok, !ok, nil
	case "sell":
		ok := e.p.Sell()
		return ok, !ok, nil
	case "coins":
		return e.p.Coins(), false, nil
	case "trinkets":
		return e.p.Trinkets(), false, nil
	}
	return nil, false, unknownOperation(KindPocket, op)
}

func (e *pocketExercise) state() map[string]any {
	return map[string]any{"coins": e.p.Coins(), "trinkets": e.p.Trinkets()}
}
