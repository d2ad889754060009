package renderer

import (
	"GopherVR/internal/behaviour"
	"GopherVR/internal/logger"
	"GopherVR/internal/vr"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var (
	ClearColor   = mgl32.Vec4{0.05, 0.05, 0.08, 1.0}
	ReticleColor = mgl32.Vec4{1, 1, 1, 1}
)

// ReticleSize is the reticle square's side in pixels.
const ReticleSize = 6

// Presenter draws the scene for each eye. Objects are drawn as flat squares
// covering their collider sphere, painted back to front with scissored
// clears, so no shaders are needed.
//
// With direct render off the frame goes to an offscreen framebuffer that is
// blitted to the window.
type Presenter struct {
	Camera *StereoCamera

	fbo        uint32
	colorRB    uint32
	fboW, fboH int32
}

func NewPresenter(camera *StereoCamera) *Presenter {
	return &Presenter{Camera: camera}
}

// Init must run on the thread that owns the GL context, after gl.Init.
func (p *Presenter) Init(width, height int32) {
	gl.Viewport(0, 0, width, height)
	gl.Disable(gl.DEPTH_TEST)
	logger.Log.Info("Presenter initialized",
		zap.String("gl", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Int32("width", width),
		zap.Int32("height", height))
}

// Frame computes what to draw for every eye. It touches no GL state.
func (p *Presenter) Frame(viewer vr.Viewer, objects []*behaviour.GameObject, width, height int32) map[Eye][]Drawable {
	pose := viewer.HeadPose()
	frame := make(map[Eye][]Drawable)

	for _, ev := range EyeViewports(width, height, viewer.VRModeEnabled()) {
		view := p.Camera.ViewMatrix(pose, ev.Eye)
		var items []Drawable

		for _, obj := range objects {
			if !obj.Active {
				continue
			}
			meshRenderer, ok := behaviour.GetComponent[*behaviour.MeshRenderer](obj)
			if !ok || !meshRenderer.Visible || !meshRenderer.GetEnabled() {
				continue
			}
			center, radius := obj.Transform.WorldPosition(), float32(0.5)
			if collider, ok := behaviour.GetComponent[*behaviour.SphereCollider](obj); ok {
				center, radius = collider.WorldBounds()
			}
			rect, depth, visible := p.Camera.ProjectSphere(center, radius, view, ev.Viewport)
			if !visible {
				continue
			}
			rect = rect.Intersect(ev.Viewport)
			if rect.Empty() {
				continue
			}
			items = append(items, Drawable{Rect: rect, Depth: depth, Color: meshRenderer.Material.Color})
		}

		SortBackToFront(items)
		cx, cy := ev.Viewport.Center()
		items = append(items, Drawable{
			Rect:  Viewport{cx - ReticleSize/2, cy - ReticleSize/2, ReticleSize, ReticleSize},
			Color: ReticleColor,
		})
		frame[ev.Eye] = items
	}
	return frame
}

// Render draws one frame into the window's framebuffer.
func (p *Presenter) Render(viewer vr.Viewer, objects []*behaviour.GameObject, width, height int32) {
	direct := viewer.DirectRender()
	if direct {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	} else {
		p.ensureFramebuffer(width, height)
		gl.BindFramebuffer(gl.FRAMEBUFFER, p.fbo)
	}

	gl.Viewport(0, 0, width, height)
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Enable(gl.SCISSOR_TEST)
	for _, ev := range EyeViewports(width, height, viewer.VRModeEnabled()) {
		fill(ev.Viewport, ClearColor)
	}
	for _, items := range p.Frame(viewer, objects, width, height) {
		for _, item := range items {
			fill(item.Rect, item.Color)
		}
	}
	gl.Disable(gl.SCISSOR_TEST)

	if !direct {
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, p.fbo)
		gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
		gl.BlitFramebuffer(0, 0, width, height, 0, 0, width, height, gl.COLOR_BUFFER_BIT, gl.NEAREST)
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	}
}

func (p *Presenter) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (p *Presenter) Cleanup() {
	p.releaseFramebuffer()
}

func fill(rect Viewport, color mgl32.Vec4) {
	gl.Scissor(rect.X, rect.Y, rect.Width, rect.Height)
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (p *Presenter) ensureFramebuffer(width, height int32) {
	if p.fbo != 0 && p.fboW == width && p.fboH == height {
		return
	}
	p.releaseFramebuffer()

	gl.GenFramebuffers(1, &p.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, p.fbo)
	gl.GenRenderbuffers(1, &p.colorRB)
	gl.BindRenderbuffer(gl.RENDERBUFFER, p.colorRB)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, width, height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, p.colorRB)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		logger.Log.Error("Offscreen framebuffer incomplete", zap.Uint32("status", status))
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	p.fboW, p.fboH = width, height
	logger.Log.Debug("Offscreen framebuffer created", zap.Int32("width", width), zap.Int32("height", height))
}

func (p *Presenter) releaseFramebuffer() {
	if p.fbo != 0 {
		gl.DeleteFramebuffers(1, &p.fbo)
		p.fbo = 0
	}
	if p.colorRB != 0 {
		gl.DeleteRenderbuffers(1, &p.colorRB)
		p.colorRB = 0
	}
}
