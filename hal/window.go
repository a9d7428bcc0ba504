package hal

import (
	"image"

	"gc9a01sim/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that presents the framebuffer at 2x
// scale, calling step once per tick. It blocks until the window closes.
func RunWindow(fb *Framebuffer, step func() error) error {
	g := &panelGame{fb: fb, step: step}
	ebiten.SetWindowTitle("GC9A01 (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(fb.Width()*2, fb.Height()*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type panelGame struct {
	fb      *Framebuffer
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *panelGame) Update() error {
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *panelGame) Draw(screen *ebiten.Image) {
	fb := g.fb
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
		g.scratch = make([]byte, fb.SizeBytes())
		g.fbImg = ebiten.NewImage(fb.Width(), fb.Height())
	}

	// The store is already RGBA, so the snapshot maps straight onto the
	// image pixels.
	fb.Snapshot(g.scratch)
	copy(g.img.Pix, g.scratch)

	g.fbImg.ReplacePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *panelGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}
