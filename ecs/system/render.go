package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/milk9111/glowsnake/common"
	"github.com/milk9111/glowsnake/ecs"
	"github.com/milk9111/glowsnake/ecs/component"
	"github.com/milk9111/glowsnake/render"
)

const (
	bloomPasses = 3
	// bloomAlpha is the share of the bloom color each pass contributes.
	bloomAlpha = 0.15
)

type segment struct {
	x0, y0, x1, y1 float64
}

type drawnParticle struct {
	x, y, size float64
	life       float64
	seq        uint64
	color      color.NRGBA
}

// RenderSystem paints the scene in a fixed order: glow halos, skeleton,
// head, particles.
type RenderSystem struct {
	segments  []segment
	particles []drawnParticle
	stops     [3]render.GlowStop
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, p render.Painter) {
	if r == nil || w == nil || p == nil {
		return
	}

	scene, ok := ecs.First(w, component.SceneTagComponent)
	if !ok {
		return
	}
	look, ok := ecs.Get(w, scene, component.LookComponent)
	if !ok {
		return
	}

	p.Clear(look.Background)

	var t float64
	if clock, ok := ecs.Get(w, scene, component.ClockComponent); ok {
		t = clock.Time
	}

	spine, ok := ecs.Get(w, scene, component.SpineComponent)
	if ok && len(spine.Nodes) > 0 {
		if colors, ok := ecs.Get(w, scene, component.ColorStateComponent); ok {
			r.drawGlow(p, spine, colors.Current, look.Glow, t)
		}
		r.drawSkeleton(p, spine, look.Skeleton)
		if ptr, ok := ecs.Get(w, scene, component.PointerComponent); ok {
			r.drawHead(p, spine.Head(), *ptr, look.Head, t)
		}
	}

	lifeMax := 0.0
	if em, ok := ecs.Get(w, scene, component.ParticleEmitterComponent); ok {
		lifeMax = em.LifeMax
	}
	r.drawParticles(w, p, lifeMax)
}

// GlowLevel maps the halo pulse of node i at time t into [0, 1].
func GlowLevel(t float64, i int, phaseStep float64) float64 {
	return math.Sin(t+float64(i)*phaseStep)*0.5 + 0.5
}

func (r *RenderSystem) drawGlow(p render.Painter, spine *component.Spine, c color.NRGBA, look component.GlowLook, t float64) {
	if look.Radius <= 0 {
		return
	}
	for i, n := range spine.Nodes {
		g := GlowLevel(t, i, look.PhaseStep)
		r.stops[0] = render.GlowStop{Offset: 0, Alpha: look.InnerAlpha * g}
		r.stops[1] = render.GlowStop{Offset: 0.5, Alpha: look.MidAlpha * g}
		r.stops[2] = render.GlowStop{Offset: 1, Alpha: 0}
		p.RadialGlow(n.X, n.Y, look.Radius, c, r.stops[:])
	}
}

func (r *RenderSystem) drawSkeleton(p render.Painter, spine *component.Spine, look component.SkeletonLook) {
	r.segments = r.segments[:0]

	nodes := spine.Nodes
	for i := 1; i < len(nodes); i++ {
		r.segments = append(r.segments, segment{nodes[i-1].X, nodes[i-1].Y, nodes[i].X, nodes[i].Y})
	}
	if look.RibEvery > 0 && look.RibLength > 0 {
		for i := look.RibStart; i < len(nodes); i += look.RibEvery {
			if i < 0 {
				continue
			}
			n := nodes[i]
			for _, a := range [2]float64{n.Heading + math.Pi/2, n.Heading - math.Pi/2} {
				r.segments = append(r.segments, segment{n.X, n.Y, n.X + math.Cos(a)*look.RibLength, n.Y + math.Sin(a)*look.RibLength})
			}
		}
	}

	for k := bloomPasses; k >= 1 && bloomVisible(look.Bloom, look.BloomWidth); k-- {
		width := look.Width + look.BloomWidth*float64(k)/bloomPasses
		c := render.ScaleAlpha(look.Bloom, bloomAlpha)
		for _, s := range r.segments {
			p.StrokeLine(s.x0, s.y0, s.x1, s.y1, width, c)
		}
	}
	for _, s := range r.segments {
		p.StrokeLine(s.x0, s.y0, s.x1, s.y1, look.Width, look.Color)
	}
}

// HeadGeometry is the head ornament resolved into surface coordinates.
type HeadGeometry struct {
	Angle  float64
	CX, CY float64
	Radius float64
	// Arcs are the two halves of the hood as start/end angle pairs.
	Arcs  [2][2]float64
	Spike [2][2]float64
	Eyes  [2][2]float64
}

// ResolveHead orients the head ornament from node 0 toward the pointer.
func ResolveHead(head component.SpineNode, ptr component.Pointer, look component.HeadLook, t float64) HeadGeometry {
	angle := math.Atan2(ptr.Y-head.Y, ptr.X-head.X)
	cos, sin := math.Cos(angle), math.Sin(angle)
	local := func(x, y float64) (float64, float64) {
		return head.X + x*cos - y*sin, head.Y + x*sin + y*cos
	}

	g := HeadGeometry{
		Angle:  angle,
		Radius: look.Radius + math.Sin(t*look.PulseFreq)*look.PulseAmp,
		Arcs: [2][2]float64{
			{angle + math.Pi/2, angle + 3*math.Pi/2},
			{angle - math.Pi/2, angle + math.Pi/2},
		},
	}
	g.CX, g.CY = local(look.OffsetX, 0)
	g.Spike[0] = [2]float64{head.X, head.Y}
	g.Spike[1][0], g.Spike[1][1] = local(look.Spike, 0)
	g.Eyes[0][0], g.Eyes[0][1] = local(look.EyeX, -look.EyeY)
	g.Eyes[1][0], g.Eyes[1][1] = local(look.EyeX, look.EyeY)
	return g
}

func (r *RenderSystem) drawHead(p render.Painter, head component.SpineNode, ptr component.Pointer, look component.HeadLook, t float64) {
	g := ResolveHead(head, ptr, look, t)

	stroke := func(width float64, c color.NRGBA) {
		if g.Radius > 0 {
			for _, arc := range g.Arcs {
				p.StrokeArc(g.CX, g.CY, g.Radius, arc[0], arc[1], width, c)
			}
		}
		p.StrokeLine(g.Spike[0][0], g.Spike[0][1], g.Spike[1][0], g.Spike[1][1], width, c)
	}

	for k := bloomPasses; k >= 1 && bloomVisible(look.Bloom, look.BloomWidth); k-- {
		stroke(look.Width+look.BloomWidth*float64(k)/bloomPasses, render.ScaleAlpha(look.Bloom, bloomAlpha))
	}
	stroke(look.Width, look.Color)

	if look.EyeRadius > 0 {
		for _, eye := range g.Eyes {
			p.FillCircle(eye[0], eye[1], look.EyeRadius, look.EyeColor)
		}
	}
}

func (r *RenderSystem) drawParticles(w *ecs.World, p render.Painter, lifeMax float64) {
	r.particles = r.particles[:0]
	ecs.ForEach2(w, component.ParticleComponent, component.TransformComponent, func(e ecs.Entity, pt *component.Particle, tr *component.Transform) {
		life := lifeMax
		if ttl, ok := ecs.Get(w, e, component.TTLComponent); ok {
			life = ttl.Frames
		}
		r.particles = append(r.particles, drawnParticle{x: tr.X, y: tr.Y, size: pt.Size, life: life, seq: pt.Seq, color: pt.Color})
	})

	// Newest first, so older particles end up on top.
	sort.Slice(r.particles, func(i, j int) bool { return r.particles[i].seq > r.particles[j].seq })

	for _, dp := range r.particles {
		p.FillCircle(dp.x, dp.y, dp.size, render.ScaleAlpha(dp.color, ParticleAlpha(dp.life, lifeMax)))
	}
}

// ParticleAlpha is the opacity of a particle with life frames remaining.
func ParticleAlpha(life, lifeMax float64) float64 {
	if lifeMax <= 0 {
		return 1
	}
	return common.Clamp(life/lifeMax, 0, 1)
}

func bloomVisible(c color.NRGBA, width float64) bool {
	return c.A > 0 && width > 0
}
