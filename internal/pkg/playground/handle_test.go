package playground_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive

	"github.com/rochi88/go-exercise/internal/pkg/playground"
)

var t0 = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func num(f float64) playground.InvokeRequest { return playground.InvokeRequest{Number: &f} }
func text(s string) playground.InvokeRequest { return playground.InvokeRequest{Text: &s} }

func mustHandle(t *testing.T, req playground.CreateRequest) *playground.Handle {
	t.Helper()
	h, err := playground.NewHandle("h1", req, t0)
	if err != nil {
		t.Fatalf("NewHandle: %v", err)
	}
	return h
}

func TestNewHandle_UnknownKind(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := playground.NewHandle("x", playground.CreateRequest{Kind: "abacus"}, t0)
	g.Expect(err).To(MatchError(playground.ErrUnknownKind))
}

func TestHandle_Pocket(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := mustHandle(t, playground.CreateRequest{Kind: playground.KindPocket, Start: 15})

	res, err := h.Invoke("buy", playground.InvokeRequest{}, t0.Add(time.Second))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(res.Result).To(Equal(true))
	g.Expect(res.Rejected).To(BeFalse())
	g.Expect(res.Handle.State).To(Equal(map[string]any{"coins": 5, "trinkets": 1}))
	g.Expect(res.Handle.LastUsedAt).To(Equal(t0.Add(time.Second)))

	res, err = h.Invoke("buy", playground.InvokeRequest{}, t0.Add(2*time.Second))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(res.Rejected).To(BeTrue())
	g.Expect(res.Handle.State).To(Equal(map[string]any{"coins": 5, "trinkets": 1}))
}

func TestHandle_UserRejection(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := mustHandle(t, playground.CreateRequest{Kind: playground.KindUser})

	res, err := h.Invoke("setName", text("123"), t0)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(res.Rejected).To(BeTrue())
	g.Expect(res.Result).To(Equal(false))

	res, err = h.Invoke("setName", text("Ann Lee"), t0)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(res.Result).To(Equal(true))

	res, err = h.Invoke("getName", playground.InvokeRequest{}, t0)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(res.Result).To(Equal("Ann Lee"))
}

func TestHandle_ArgumentErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind playground.Kind
		op   string
		req  playground.InvokeRequest
		want error
	}{
		{"missing number", playground.KindMultiply, "apply", playground.InvokeRequest{}, playground.ErrMissingArgument},
		{"missing text", playground.KindMessages, "record", playground.InvokeRequest{}, playground.ErrMissingArgument},
		{"fractional channel", playground.KindColor, "incrRed", num(1.5), playground.ErrInvalidArgument},
		{"unknown op", playground.KindLives, "resurrect", playground.InvokeRequest{}, playground.ErrUnknownOperation},
		{"op of another kind", playground.KindCounter, "buy", playground.InvokeRequest{}, playground.ErrUnknownOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			h := mustHandle(t, playground.CreateRequest{Kind: tt.kind})
			before := h.Snapshot()

			_, err := h.Invoke(tt.op, tt.req, t0.Add(time.Hour))
			g.Expect(err).To(MatchError(tt.want))
			// failed calls do not touch the handle
			g.Expect(h.Snapshot()).To(Equal(before))
		})
	}
}

func TestHandle_EveryKindExercised(t *testing.T) {
	t.Parallel()

	tests := []struct {
		create playground.CreateRequest
		op     string
		req    playground.InvokeRequest
		want   any
	}{
		{playground.CreateRequest{Kind: playground.KindCounter, Start: 2}, "next", playground.InvokeRequest{}, 3},
		{playground.CreateRequest{Kind: playground.KindMultiply, Factor: 3}, "apply", num(5), 15.0},
		{playground.CreateRequest{Kind: playground.KindTotal, Amount: 20}, "discount", num(0.5), 10.0},
		{playground.CreateRequest{Kind: playground.KindColor, Red: 150, Green: 200, Blue: 18}, "incrBlue", num(-9), 9},
		{playground.CreateRequest{Kind: playground.KindLives, Start: 5}, "died", playground.InvokeRequest{}, 4},
		{playground.CreateRequest{Kind: playground.KindMessages}, "record", text("first message"), "[1] first message"},
		{playground.CreateRequest{Kind: playground.KindPocket, Start: 50}, "sell", playground.InvokeRequest{}, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.create.Kind), func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			h := mustHandle(t, tt.create)
			g.Expect(playground.HasOperation(tt.create.Kind, tt.op)).To(BeTrue())

			res, err := h.Invoke(tt.op, tt.req, t0)
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(res.Result).To(Equal(tt.want))
		})
	}
}

func TestKinds(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	kinds := playground.Kinds()
	g.Expect(kinds).To(HaveLen(8))
	g.Expect(kinds[0].Kind).To(Equal(playground.KindCounter))
	g.Expect(kinds[7].Operations).To(ConsistOf("buy", "sell", "coins", "trinkets"))

	// callers get copies
	kinds[0].Operations[0] = "mutated"
	g.Expect(playground.Kinds()[0].Operations[0]).To(Equal("next"))
}

func TestCreateRequest_Validate(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect((&playground.CreateRequest{Kind: playground.KindLives}).Validate()).To(Succeed())
	g.Expect((&playground.CreateRequest{}).Validate()).NotTo(Succeed())
	g.Expect((&playground.CreateRequest{Kind: "abacus"}).Validate()).NotTo(Succeed())

	g.Expect((&playground.CreateRequest{Kind: playground.KindCounter, Start: playground.MaxStart}).Validate()).To(Succeed())
	g.Expect((&playground.CreateRequest{Kind: playground.KindCounter, Start: playground.MaxStart + 1}).Validate()).NotTo(Succeed())
	g.Expect((&playground.CreateRequest{Kind: playground.KindPocket, Start: -playground.MaxStart - 1}).Validate()).NotTo(Succeed())
}

func TestHandle_NonFiniteResult(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	m := mustHandle(t, playground.CreateRequest{Kind: playground.KindMultiply, Factor: 1e308})
	_, err := m.Invoke("apply", num(1e308), t0)
	g.Expect(err).To(MatchError(playground.ErrInvalidArgument))

	tot := mustHandle(t, playground.CreateRequest{Kind: playground.KindTotal, Amount: 1e308})
	_, err = tot.Invoke("discount", num(-1e308), t0)
	g.Expect(err).To(MatchError(playground.ErrInvalidArgument))

	res, err := tot.Invoke("amount", playground.InvokeRequest{}, t0)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(res.Result).To(Equal(1e308))
}

func TestHandle_UnsupportedOperationLeavesHandleIdle(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	h := mustHandle(t, playground.CreateRequest{Kind: playground.KindCounter})
	_, err := h.Invoke("buy", playground.InvokeRequest{}, t0.Add(time.Hour))
	g.Expect(err).To(MatchError(playground.ErrUnknownOperation))
	g.Expect(h.LastUsed()).To(Equal(t0))
}
