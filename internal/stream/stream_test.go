package stream_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/glitchrain/internal/stream"
)

var _ = Describe("Direction", func() {
	It("maps every heading to a nonzero unit offset", func() {
		seen := map[[2]int]bool{}
		for d := stream.Left; d <= stream.DownRight; d++ {
			dx, dy := d.Offset()
			Expect(dx).To(BeNumerically(">=", -1))
			Expect(dx).To(BeNumerically("<=", 1))
			Expect(dy).To(BeNumerically(">=", -1))
			Expect(dy).To(BeNumerically("<=", 1))
			Expect([2]int{dx, dy}).NotTo(Equal([2]int{0, 0}))
			seen[[2]int{dx, dy}] = true
		}
		Expect(seen).To(HaveLen(8), "all offsets distinct")
	})

	It("samples headings uniformly", func() {
		rng := rand.New(rand.NewSource(3))
		counts := map[stream.Direction]int{}
		for i := 0; i < 1000; i++ {
			counts[stream.RandomDirection(rng)]++
		}
		Expect(counts).To(HaveLen(8))
		for d, n := range counts {
			Expect(n).To(BeNumerically("~", 125, 75), "heading %s", d)
		}
	})
})

var _ = Describe("Stream", func() {
	const maxX, maxY = 80, 24

	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(11))
	})

	It("spawns inside the given dimensions", func() {
		for i := 0; i < 200; i++ {
			s := stream.New(maxX, maxY, rng)
			Expect(s.X).To(SatisfyAll(BeNumerically(">=", 0), BeNumerically("<", maxX)))
			Expect(s.Y).To(SatisfyAll(BeNumerically(">=", 0), BeNumerically("<", maxY)))
		}
	})

	It("keeps x inside the drawable band and y above the top row", func() {
		s := &stream.Stream{X: 40, Y: 12, Dir: stream.RandomDirection(rng)}
		for i := 0; i < 1000; i++ {
			s.Update(maxX, rng)
			Expect(s.X).To(SatisfyAll(BeNumerically(">=", 1), BeNumerically("<=", maxX-2)))
			Expect(s.Y).To(BeNumerically(">=", 1))
		}
	})

	It("has no lower clamp, letting streams drift below the viewport", func() {
		s := &stream.Stream{X: 40, Y: 12, Dir: stream.Down}
		deepest := s.Y
		for i := 0; i < 1000; i++ {
			s.Update(maxX, rng)
			if s.Y > deepest {
				deepest = s.Y
			}
		}
		Expect(deepest).To(BeNumerically(">", maxY))
	})

	It("changes heading more often than boundary hits alone explain", func() {
		// far from every boundary, so nearly all changes come from the
		// 10% per-tick trial
		s := &stream.Stream{X: 500, Y: 500, Dir: stream.RandomDirection(rng)}
		changes := 0
		for i := 0; i < 1000; i++ {
			before := s.Dir
			s.Update(1000, rng)
			if s.Dir != before {
				changes++
			}
		}
		Expect(changes).To(BeNumerically(">", 50))
		Expect(changes).To(BeNumerically("<", 250))
	})

	It("holds position on a bare random heading change", func() {
		// with the turn trial forced off the only way to stand still is a
		// boundary-free redraw, so drive the stream into a corner instead:
		// candidate x at the right edge redraws the heading but leaves an
		// in-band x untouched
		s := &stream.Stream{X: maxX - 3, Y: 12, Dir: stream.Right}
		s.Update(maxX, rng)
		Expect(s.X).To(Equal(maxX - 3))
		Expect(s.Y).To(Equal(12))
	})
})
