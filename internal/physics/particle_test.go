package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/integrators"
	"github.com/san-kum/gravsim/internal/physics"
)

func captureRules() physics.Rules {
	rules := physics.DefaultRules()
	rules.Capture = true
	return rules
}

var _ = Describe("GravitySource", func() {
	It("derives the capture radius from the display radius", func() {
		src := physics.NewGravitySource(500, 500, 7000)
		Expect(src.Position()).To(Equal(dynamo.V(500, 500)))
		Expect(src.Strength()).To(Equal(7000.0))
		Expect(src.Radius()).To(Equal(10.0))
		Expect(src.CaptureRadius()).To(Equal(50.0))
	})

	It("pulls with inverse-square magnitude towards itself", func() {
		src := physics.NewGravitySource(0, 0, 400)
		dir, mag := src.Pull(dynamo.V(20, 0), physics.ZeroForce{MinDistance: 1})
		Expect(dir.X).To(BeNumerically("~", -1, 1e-12))
		Expect(dir.Y).To(BeNumerically("~", 0, 1e-12))
		Expect(mag).To(BeNumerically("~", 1.0, 1e-12))
	})
})

var _ = Describe("Particle.UpdatePhysics", func() {
	var src *physics.GravitySource

	BeforeEach(func() {
		src = physics.NewGravitySource(500, 500, 7000)
	})

	It("gains exactly strength/r^2 along n from rest", func() {
		p := physics.NewParticle(500, 700, 0, 0)
		p.UpdatePhysics(src, physics.DefaultRules())

		// r = 200, n = (0, -1)
		want := 7000.0 / (200.0 * 200.0)
		Expect(p.Velocity().X).To(BeNumerically("~", 0, 1e-12))
		Expect(p.Velocity().Y).To(BeNumerically("~", -want, 1e-12))
		Expect(p.Position().Y).To(BeNumerically("~", 700-want, 1e-12))
	})

	It("matches the closed form along a diagonal", func() {
		p := physics.NewParticle(600, 700, 0, 0)
		p.UpdatePhysics(src, physics.DefaultRules())

		d := dynamo.V(-100, -200)
		r := d.Len()
		mag := 7000 / (r * r)
		Expect(p.Velocity().X).To(BeNumerically("~", d.X/r*mag, 1e-12))
		Expect(p.Velocity().Y).To(BeNumerically("~", d.Y/r*mag, 1e-12))
	})

	It("approaches a source monotonically from rest", func() {
		p := physics.NewParticle(500, 900, 0, 0)
		prev := p.Position().Dist(src.Position())
		for i := 0; i < 30; i++ {
			p.UpdatePhysics(src, physics.DefaultRules())
			r := p.Position().Dist(src.Position())
			Expect(r).To(BeNumerically("<", prev))
			prev = r
		}
	})

	It("never produces NaN on a coincident position", func() {
		p := physics.NewParticle(500, 500, 0, 0)
		p.UpdatePhysics(src, physics.DefaultRules())
		Expect(p.Valid()).To(BeTrue())
		Expect(p.Position()).To(Equal(dynamo.V(500, 500)))

		rules := physics.DefaultRules()
		rules.Singularity = physics.ClampDistance{MinDistance: 1}
		q := physics.NewParticle(500, 500, 0, 0)
		q.UpdatePhysics(src, rules)
		Expect(q.Valid()).To(BeTrue())
	})

	It("leaves particles alone without capture", func() {
		p := physics.NewParticle(505, 500, 0, 0)
		p.UpdatePhysics(src, physics.DefaultRules())
		Expect(p.Alive()).To(BeTrue())
		Expect(p.Circling()).To(BeFalse())
		Expect(p.Trail().Len()).To(Equal(0))
	})

	Context("with capture enabled", func() {
		It("starts circling inside the capture radius and never stops", func() {
			p := physics.NewParticle(540, 500, 0, 3)
			Expect(p.UpdatePhysics(src, captureRules())).To(Equal(physics.Captured))
			Expect(p.Circling()).To(BeTrue())

			for i := 0; i < 200 && p.Alive(); i++ {
				Expect(p.UpdatePhysics(src, captureRules())).NotTo(Equal(physics.Captured))
				Expect(p.Circling()).To(BeTrue())
			}
		})

		It("dies inside the display radius and stays dead", func() {
			p := physics.NewParticle(505, 500, 1, 1)
			Expect(p.UpdatePhysics(src, captureRules())).To(Equal(physics.Died))
			Expect(p.Alive()).To(BeFalse())

			before := p.Position()
			Expect(p.UpdatePhysics(src, captureRules())).To(Equal(physics.NoTransition))
			Expect(p.Alive()).To(BeFalse())
			Expect(p.Position()).To(Equal(before))
		})

		It("records the rendered centre in a bounded trail", func() {
			p := physics.NewParticle(600, 700, 4, 0.1)
			p.SetTrailCapacity(8)
			for i := 0; i < 20; i++ {
				p.UpdatePhysics(src, captureRules())
			}
			Expect(p.Trail().Len()).To(Equal(8))
			last, ok := p.Trail().Last()
			Expect(ok).To(BeTrue())
			Expect(last).To(Equal(p.Center()))
		})

		It("applies the heading boost while circling", func() {
			p := physics.NewParticle(530, 500, 0, 2)
			rules := captureRules()
			p.UpdatePhysics(src, rules)

			mag := 7000.0 / (30.0 * 30.0)
			angle := math.Atan2(2, 0)
			Expect(p.Velocity().X).To(BeNumerically("~", 2*math.Cos(angle)+mag, 1e-9))
			Expect(p.Velocity().Y).To(BeNumerically("~", 2*math.Sin(angle)+mag, 1e-9))
		})

		It("can swap the heuristic for plain gravity", func() {
			rules := captureRules()
			rules.Motion = physics.GravityPull{}
			p := physics.NewParticle(530, 500, 0, 2)
			p.UpdatePhysics(src, rules)

			mag := 7000.0 / (30.0 * 30.0)
			Expect(p.Velocity().X).To(BeNumerically("~", -mag, 1e-9))
			Expect(p.Velocity().Y).To(BeNumerically("~", 2, 1e-9))
		})
	})

	It("follows the Euler recurrence exactly for the reference scenario", func() {
		p := physics.NewParticle(600, 700, 4, 0.1)
		rules := physics.DefaultRules()

		px, py, vx, vy := 600.0, 700.0, 4.0, 0.1
		for i := 0; i < 300; i++ {
			p.UpdatePhysics(src, rules)

			dx := 500 - px
			dy := 500 - py
			dist := math.Sqrt(dx*dx + dy*dy)
			inv := 1.0 / dist
			nx, ny := inv*dx, inv*dy
			acc := 7000 * inv * inv
			vx += nx * acc
			vy += ny * acc
			px += vx
			py += vy
		}

		Expect(p.Position().X).To(BeNumerically("~", px, 1e-9))
		Expect(p.Position().Y).To(BeNumerically("~", py, 1e-9))
		Expect(p.Velocity().X).To(BeNumerically("~", vx, 1e-9))
		Expect(p.Velocity().Y).To(BeNumerically("~", vy, 1e-9))
	})

	It("accepts any integrator", func() {
		rules := physics.DefaultRules()
		rules.Integrator = integrators.NewVerlet()
		p := physics.NewParticle(600, 700, 4, 0.1)
		for i := 0; i < 50; i++ {
			p.UpdatePhysics(src, rules)
		}
		Expect(p.Valid()).To(BeTrue())
	})
})

var _ = Describe("policies", func() {
	DescribeTable("singularity distances",
		func(policy physics.SingularityPolicy, r, wantR float64, wantOK bool) {
			got, ok := policy.Distance(r)
			Expect(ok).To(Equal(wantOK))
			Expect(got).To(Equal(wantR))
		},
		Entry("zero-force far", physics.ZeroForce{MinDistance: 1}, 5.0, 5.0, true),
		Entry("zero-force near", physics.ZeroForce{MinDistance: 1}, 0.5, 0.0, false),
		Entry("zero-force coincident", physics.ZeroForce{}, 0.0, 0.0, false),
		Entry("clamp far", physics.ClampDistance{MinDistance: 1}, 5.0, 5.0, true),
		Entry("clamp near", physics.ClampDistance{MinDistance: 1}, 0.5, 1.0, true),
		Entry("clamp coincident", physics.ClampDistance{MinDistance: 1}, 0.0, 0.0, false),
	)

	It("resolves policies by name", func() {
		s, err := physics.SingularityByName("clamp", 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Name()).To(Equal("clamp"))

		m, err := physics.MotionByName("gravity")
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Name()).To(Equal("gravity"))

		_, err = physics.SingularityByName("soften", 1)
		Expect(err).To(MatchError(dynamo.ErrUnknownName))
		_, err = physics.MotionByName("spiral")
		Expect(err).To(MatchError(dynamo.ErrUnknownName))
	})
})
