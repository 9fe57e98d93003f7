package player_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wagnandr/hemoview/internal/player"
)

var _ = Describe("Sequencer", func() {
	var seq *player.Sequencer

	BeforeEach(func() {
		seq = player.New(5)
	})

	It("starts running", func() {
		Expect(seq.Running()).To(BeTrue())
	})

	It("advances one frame per tick and wraps around", func() {
		var got []int
		for i := 0; i < 7; i++ {
			got = append(got, seq.Advance())
		}
		Expect(got).To(Equal([]int{1, 2, 3, 4, 0, 1, 2}))
	})

	Context("when paused", func() {
		BeforeEach(func() {
			seq.Advance()
			seq.Advance()
			seq.Toggle()
		})

		It("freezes the current frame", func() {
			Expect(seq.Running()).To(BeFalse())
			Expect(seq.Advance()).To(Equal(2))
			Expect(seq.Advance()).To(Equal(2))
		})

		It("does not accumulate ticks", func() {
			for i := 0; i < 10; i++ {
				seq.Advance()
			}
			seq.Toggle()
			Expect(seq.Advance()).To(Equal(3))
		})

		It("resumes from the frozen frame", func() {
			seq.Toggle()
			Expect(seq.Running()).To(BeTrue())
			Expect(seq.Advance()).To(Equal(3))
			Expect(seq.Advance()).To(Equal(4))
			Expect(seq.Advance()).To(Equal(0))
		})
	})

	It("toggles repeatedly without losing position", func() {
		seq.Advance()
		seq.Toggle()
		seq.Toggle()
		Expect(seq.Advance()).To(Equal(2))
	})

	Context("with an empty window", func() {
		BeforeEach(func() {
			seq = player.New(0)
		})

		It("always yields frame zero", func() {
			Expect(seq.Advance()).To(Equal(0))
			Expect(seq.Advance()).To(Equal(0))
			seq.Toggle()
			Expect(seq.Advance()).To(Equal(0))
		})
	})

	Context("with a single frame", func() {
		BeforeEach(func() {
			seq = player.New(1)
		})

		It("stays on frame zero", func() {
			Expect(seq.Advance()).To(Equal(0))
			Expect(seq.Advance()).To(Equal(0))
		})
	})
})
