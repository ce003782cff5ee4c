package physics

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dwarfsim/pkg/dynamo"
)

// rk4 advances y by one fixed step of h using the buffer-form rhs.
func rk4(rhs dynamo.Func, r, h float64, y []float64) {
	n := len(y)
	k1 := make([]float64, n)
	k2 := make([]float64, n)
	k3 := make([]float64, n)
	k4 := make([]float64, n)
	tmp := make([]float64, n)

	rhs(r, y, k1)
	for i := range y {
		tmp[i] = y[i] + 0.5*h*k1[i]
	}
	rhs(r+0.5*h, tmp, k2)
	for i := range y {
		tmp[i] = y[i] + 0.5*h*k2[i]
	}
	rhs(r+0.5*h, tmp, k3)
	for i := range y {
		tmp[i] = y[i] + h*k3[i]
	}
	rhs(r+h, tmp, k4)

	for i := range y {
		y[i] += h / 6 * (k1[i] + 2*k2[i] + 2*k3[i] + k4[i])
	}
}

var _ = Describe("WhiteDwarf structure equations", func() {
	var p Params

	BeforeEach(func() {
		p = Params{C0: 1.3, OriginCutoff: DefaultOriginCutoff}
	})

	DescribeTable("vanishes at and beyond the surface",
		func(r, m, rho, c0 float64) {
			p.C0 = c0
			Expect(Evaluate(r, [2]float64{m, rho}, p)).To(Equal([2]float64{0, 0}))
		},
		Entry("zero density", 1.0, 2.0, 0.0, 1.0),
		Entry("negative density", 0.5, 0.1, -3.0, 7.0),
		Entry("near origin", 1e-7, 0.0, 0.0, 100.0),
		Entry("huge radius", 1e6, 1e3, -1e-9, 0.0),
		Entry("NaN density", 1.0, 1.0, math.NaN(), 1.0),
		Entry("NaN density near origin", 0.0, 0.0, math.NaN(), 2.0),
	)

	DescribeTable("mass gradient is r^2 p on both branches",
		func(r, m, rho float64) {
			f := Evaluate(r, [2]float64{m, rho}, p)
			Expect(f[0]).To(BeNumerically("~", r*r*rho, 1e-15))
		},
		Entry("regular", 2.0, 0.7, 0.25),
		Entry("at cutoff", 1e-5, 0.0, 3.0),
		Entry("origin", 0.0, 0.0, 5.0),
	)

	Context("at the origin cutoff", func() {
		var m, rho float64

		BeforeEach(func() {
			rho = 4.0
		})

		It("is continuous when the mass matches the central expansion", func() {
			rc := p.OriginCutoff
			m = 4.0 / 3.0 * math.Pi * rc * rc * rc * p.C0

			inner := Evaluate(rc, [2]float64{m, rho}, p)
			outer := Evaluate(math.Nextafter(rc, 1), [2]float64{m, rho}, p)

			Expect(outer[1]).To(BeNumerically("~", inner[1], math.Abs(inner[1])*1e-9))
		})

		It("jumps by 3m / (4 pi r^3 c0) otherwise", func() {
			m = 1e-12
			r := 0.5 * p.OriginCutoff

			nearOrigin := Evaluate(r, [2]float64{m, rho}, p)
			regular := Evaluate(r, [2]float64{m, rho}, Params{C0: p.C0, OriginCutoff: 0})

			ratio := regular[1] / nearOrigin[1]
			want := 3 * m / (4 * math.Pi * r * r * r * p.C0)
			Expect(ratio).To(BeNumerically("~", want, want*1e-9))
		})
	})

	Context("driven by a fixed-step integrator", func() {
		It("grows mass and depletes density until the surface", func() {
			rhs := NewWhiteDwarf(Params{C0: 1.0, OriginCutoff: DefaultOriginCutoff}).RHS()
			y := []float64{0.0, 1.0}
			h := 1e-3
			r := 0.0

			prevM, prevRho := y[0], y[1]
			for r < 20 && y[1] > 0 {
				rk4(rhs, r, h, y)
				r += h

				Expect(y[0]).To(BeNumerically(">=", prevM))
				Expect(y[1]).To(BeNumerically("<=", prevRho))
				prevM, prevRho = y[0], y[1]
			}

			Expect(r).To(BeNumerically("<", 20), "surface not reached")
			Expect(y[0]).To(BeNumerically(">", 0))
			Expect(dynamo.State(y).IsValid()).To(BeTrue())
		})
	})
})

var _ = Describe("Guard", func() {
	var g *Guard

	BeforeEach(func() {
		g = NewGuard(NewWhiteDwarf(DefaultParams()), nil)
	})

	It("passes finite derivatives through", func() {
		dx, err := g.DeriveChecked(dynamo.State{2.0, 8.0}, nil, 1.0)
		Expect(err).NotTo(HaveOccurred())
		Expect(dx[0]).To(BeNumerically("~", 8.0, 1e-12))
		Expect(dx[1]).To(BeNumerically("~", -12*math.Sqrt(5), 1e-9))
	})

	It("reports NaN as an invalid state", func() {
		dx, err := g.DeriveChecked(dynamo.State{math.NaN(), 1.0}, nil, 1.0)
		Expect(err).To(MatchError(dynamo.ErrInvalidState))
		Expect(math.IsNaN(dx[1])).To(BeTrue())

		var evalErr *dynamo.EvalError
		Expect(err).To(BeAssignableToTypeOf(evalErr))
		Expect(err.(*dynamo.EvalError).T).To(Equal(1.0))
	})

	It("reports Inf as an invalid state", func() {
		_, err := g.DeriveChecked(dynamo.State{0.0, 1.0}, nil, math.Inf(1))
		Expect(err).To(MatchError(dynamo.ErrInvalidState))
	})

	It("rejects a state of the wrong length", func() {
		_, err := g.DeriveChecked(dynamo.State{1.0, 2.0, 3.0}, nil, 1.0)
		Expect(err).To(MatchError(dynamo.ErrDimensionMismatch))
	})

	It("keeps the silent Derive path unchanged", func() {
		dx := g.Derive(dynamo.State{math.NaN(), 1.0}, nil, 1.0)
		Expect(math.IsNaN(dx[1])).To(BeTrue())
	})

	DescribeTable("DeriveChecked and Func agree on the failure",
		func(state []float64, r float64) {
			f := make([]float64, 2)
			status := g.Func(r, state, f)
			_, err := g.DeriveChecked(dynamo.State(state), nil, r)

			if status == dynamo.StatusSuccess {
				Expect(err).NotTo(HaveOccurred())
				return
			}
			Expect(errors.Is(err, status.Err())).To(BeTrue(), "status %v, err %v", status, err)
		},
		Entry("finite", []float64{2.0, 8.0}, 1.0),
		Entry("NaN mass", []float64{math.NaN(), 8.0}, 1.0),
		Entry("infinite radius", []float64{0.0, 1.0}, math.Inf(1)),
		Entry("short state", []float64{2.0}, 1.0),
	)

	It("logs the offending state and its norm", func() {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		g = NewGuard(NewWhiteDwarf(Params{C0: math.NaN(), OriginCutoff: DefaultOriginCutoff}), logger)

		Expect(g.Func(0, []float64{3.0, 4.0}, make([]float64, 2))).To(Equal(dynamo.StatusDomainError))

		var record map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &record)).To(Succeed())
		Expect(record["msg"]).To(Equal("non-finite derivative"))
		Expect(record["component"]).To(Equal("guard"))
		Expect(record["state_norm"]).To(BeNumerically("~", 5.0, 1e-12))
	})

	It("returns status codes from Func", func() {
		f := make([]float64, 2)
		Expect(g.Func(1.0, []float64{2.0, 8.0}, f)).To(Equal(dynamo.StatusSuccess))
		Expect(g.Func(1.0, []float64{math.NaN(), 8.0}, f)).To(Equal(dynamo.StatusDomainError))
		Expect(g.Func(1.0, []float64{2.0}, f)).To(Equal(dynamo.StatusBadLength))
		Expect(g.Func(1.0, []float64{2.0, 8.0}, f[:1])).To(Equal(dynamo.StatusBadLength))
	})
})
