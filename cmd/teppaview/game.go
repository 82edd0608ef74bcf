//go:build ebiten

package main

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"teppa/camera"
	"teppa/erosion"
	"teppa/gl"
	"teppa/mesh"
	"teppa/stats"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const reliefScale = 0.25

var (
	background = color.RGBA{16, 16, 24, 255}
	wireColor  = color.RGBA{120, 220, 140, 255}
	hudColor   = color.RGBA{200, 200, 210, 255}
	tilings    = []float32{1, 2, 4, 8}
)

// game draws the eroding terrain as a displaced, textured plane.
type game struct {
	sim    *erosion.Simulation
	seed   int64
	width  int
	height int

	cam   camera.Camera
	scene camera.Scene

	sub       mesh.Subdivision
	plane     *mesh.Mesh
	edges     []mesh.Edge
	tiling    int
	wireframe bool
	paused    bool

	surface  *ebiten.Image
	vertices []ebiten.Vertex
	ticks    stats.Durations
}

func newGame(sim *erosion.Simulation, cfg *config) *game {
	g := &game{
		sim:       sim,
		seed:      sim.Config.Seed,
		width:     cfg.Width,
		height:    cfg.Height,
		cam:       camera.Default(float32(cfg.Width) / float32(cfg.Height)),
		scene:     camera.Scene{Rotation: gl.V3(gl.Radians(-55), 0, 0), Scale: 1},
		wireframe: cfg.Wireframe,
		surface:   ebiten.NewImage(sim.Texture.Width, sim.Texture.Height),
	}
	for i, f := range tilings {
		if f <= cfg.Tiling {
			g.tiling = i
		}
	}
	g.ticks.Init(60, 600, func(ds *stats.Durations) {
		gen := sim.Current()
		log.Printf("tick %v: avg=%v max=%v eroded=%.4f deposited=%.4f",
			ds.Collected(), ds.Average(), ds.Max(), gen.Eroded, gen.Deposited)
	})
	g.subdivide(cfg.Subdivision)
	return g
}

func (g *game) subdivide(sub mesh.Subdivision) {
	g.sub = sub
	g.plane = mesh.Plane(2, 2, sub)
	g.edges = g.plane.Edges()
	log.Printf("subdivision %v: %v triangles, %v edges", sub, g.plane.Triangles(), len(g.edges))
}

// Update handles input and advances the simulation.
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.wireframe = !g.wireframe
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.tiling = (g.tiling + 1) % len(tilings)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.seed++
		g.sim.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.subdivide(g.sub.Step(1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.subdivide(g.sub.Step(-1))
	}

	const turn = 0.02
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.scene.Rotation.Z -= turn
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.scene.Rotation.Z += turn
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.scene.Rotation.X -= turn
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.scene.Rotation.X += turn
	}

	if !g.paused {
		start := time.Now()
		g.sim.Step()
		g.ticks.Time(start)
	}
	return nil
}

// Draw renders the terrain plane and a status line.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	g.surface.WritePixels(g.sim.Texture.Image().Pix)

	relief := g.plane.Displace(g.sim.Field, reliefScale)
	tiled := relief.Tile(tilings[g.tiling])
	mvp := g.scene.MVP(g.cam)

	g.vertices = g.vertices[:0]
	tw, th := float32(g.sim.Texture.Width), float32(g.sim.Texture.Height)
	for i, v := range tiled.Vertices {
		x, y := g.project(mvp, v)
		uv := tiled.UVs[i]
		g.vertices = append(g.vertices, ebiten.Vertex{
			DstX:   x,
			DstY:   y,
			SrcX:   uv.X * tw,
			SrcY:   (1 - uv.Y) * th,
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		})
	}

	if g.wireframe {
		for _, e := range g.edges {
			a, b := g.vertices[e[0]], g.vertices[e[1]]
			vector.StrokeLine(screen, a.DstX, a.DstY, b.DstX, b.DstY, 1, wireColor, false)
		}
	} else {
		screen.DrawTriangles(g.vertices, tiled.Indices, g.surface, &ebiten.DrawTrianglesOptions{
			Address: ebiten.AddressRepeat,
		})
	}

	status := fmt.Sprintf("tick %v  drops %v  subdivision %v  tiling %v  %.0f tps",
		g.sim.Buffers.Swaps(), g.sim.Population(), g.sub, tilings[g.tiling], ebiten.ActualTPS())
	if g.paused {
		status += "  paused"
	}
	text.Draw(screen, status, basicfont.Face7x13, 8, 16, hudColor)
}

// project maps an object space point to screen pixels.
func (g *game) project(mvp gl.Mat4, v gl.Vec3) (x, y float32) {
	ndc := mvp.TransformPoint(v)
	return (ndc.X + 1) / 2 * float32(g.width), (1 - ndc.Y) / 2 * float32(g.height)
}

// Layout returns the logical screen size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
