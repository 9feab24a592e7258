package ensemble_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MaxUCSD/ddm-simulator/internal/ddm"
	"github.com/MaxUCSD/ddm-simulator/internal/ensemble"
)

var _ = Describe("Runner", func() {
	var params ddm.Params

	BeforeEach(func() {
		params = ddm.DefaultParams()
	})

	It("runs the requested number of trials", func() {
		outcomes, err := ensemble.New(params, 50, 1).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(outcomes).To(HaveLen(50))
	})

	It("derives one seed per trial from the start seed", func() {
		outcomes, err := ensemble.New(params, 10, 100).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		for i, o := range outcomes {
			Expect(o.Seed).To(Equal(int64(100 + i)))
		}
	})

	It("is reproducible for a fixed start seed", func() {
		a, err := ensemble.New(params, 20, 7).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		b, err := ensemble.New(params, 20, 7).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("rejects invalid parameters", func() {
		params.Threshold = 0
		_, err := ensemble.New(params, 5, 1).Run(context.Background())
		Expect(err).To(MatchError(ddm.ErrThreshold))
	})

	It("favors the upper boundary under positive drift", func() {
		params.DriftRate = 2.0
		params.MaxTime = 20.0
		outcomes, err := ensemble.New(params, 200, 42).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())

		summary := ensemble.Summarize(outcomes)
		Expect(summary.Upper).To(BeNumerically(">", summary.Lower))
		Expect(summary.UpperRate()).To(BeNumerically(">", 0.5))
	})

	It("produces only timeouts for a flat noiseless process", func() {
		params.DriftRate = 0
		params.NoiseScale = 0
		outcomes, err := ensemble.New(params, 10, 1).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())

		summary := ensemble.Summarize(outcomes)
		Expect(summary.Timeout).To(Equal(10))
		Expect(summary.Upper).To(BeZero())
		Expect(summary.Lower).To(BeZero())
		Expect(summary.MeanDecisionTime).To(BeZero())
	})
})

var _ = Describe("Summarize", func() {
	It("computes decision-time statistics over decided trials", func() {
		outcomes := []ensemble.Outcome{
			{Decided: true, Boundary: ddm.BoundaryUpper, DecisionTime: 1.0},
			{Decided: true, Boundary: ddm.BoundaryLower, DecisionTime: 3.0},
			{Decided: false},
		}

		s := ensemble.Summarize(outcomes)
		Expect(s.Trials).To(Equal(3))
		Expect(s.Upper).To(Equal(1))
		Expect(s.Lower).To(Equal(1))
		Expect(s.Timeout).To(Equal(1))
		Expect(s.MeanDecisionTime).To(BeNumerically("~", 2.0, 1e-12))
		Expect(s.MinDecisionTime).To(Equal(1.0))
		Expect(s.MaxDecisionTime).To(Equal(3.0))
		Expect(s.UpperRate()).To(BeNumerically("~", 0.5, 1e-12))
	})
})
