package renderer

import (
	"runtime"
	"sync"

	"github.com/Carmen-Shannon/duo-go/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// hacksBufferSize is the GPU size of the render-hacks uniform: a 4x4 float32
// matrix plus the fog flag, padded to a 16-byte boundary.
const hacksBufferSize = 80

type wgpuRenderer struct {
	mu *sync.Mutex

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	surface  *wgpu.Surface

	surfaceFormat        *wgpu.TextureFormat
	renderPassDescriptor *wgpu.RenderPassDescriptor
	presentMode          wgpu.PresentMode
	clearColor           wgpu.Color

	hacks       RenderHacks
	hacksBuffer *wgpu.Buffer

	// Frame state held between BeginFrame and Present.
	frameEncoder *wgpu.CommandEncoder
	framePass    *wgpu.RenderPassEncoder
	frameSurface *wgpu.Texture
	frameView    *wgpu.TextureView
}

// Compile-time interface compliance check
var _ Renderer = &wgpuRenderer{}

// NewRenderer creates a wgpu-backed renderer on the given surface. The
// calling goroutine is locked to its OS thread for the lifetime of the
// renderer, matching the platform window's requirement.
//
// Parameters:
//   - surfaceDescriptor: platform surface obtained from the window
//   - options: functional options to configure presentation
//
// Returns:
//   - Renderer: the newly created renderer
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, options ...RendererOption) Renderer {
	runtime.LockOSThread()

	r := &wgpuRenderer{
		mu:          &sync.Mutex{},
		instance:    wgpu.CreateInstance(nil),
		presentMode: wgpu.PresentModeImmediate,
		clearColor:  wgpu.Color{R: 0, G: 0, B: 0, A: 1.0},
	}
	r.surface = r.instance.CreateSurface(surfaceDescriptor)

	adapter, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: r.surface,
	})
	if err != nil {
		panic(err)
	}
	r.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Frontend Device",
	})
	if err != nil {
		panic(err)
	}
	r.device = device
	r.queue = device.GetQueue()

	r.hacksBuffer, err = device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Render Hacks Buffer",
		Size:  hacksBufferSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		panic(err)
	}

	for _, option := range options {
		option(r)
	}
	return r
}

func (r *wgpuRenderer) SetRenderHacks(h RenderHacks) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hacks = h
}

func (r *wgpuRenderer) RenderHacks() RenderHacks {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hacks
}

func (r *wgpuRenderer) ConfigureSurface(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	capabilities := r.surface.GetCapabilities(r.adapter)
	r.surfaceFormat = &capabilities.Formats[0]

	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      *r.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: r.presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	r.renderPassDescriptor = &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       nil, // set per-frame to the swapchain view
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: r.clearColor,
			},
		},
	}
}

// uploadHacks writes the current render-hacks input into the uniform buffer.
// Caller must hold the mutex.
func (r *wgpuRenderer) uploadHacks() {
	var data [hacksBufferSize / 4]float32
	for i, v := range r.hacks.ViewMatrix {
		data[i] = float32(v)
	}
	if r.hacks.DisableFog {
		data[16] = 1
	}
	r.queue.WriteBuffer(r.hacksBuffer, 0, common.SliceToBytes(data[:]))
}

func (r *wgpuRenderer) BeginFrame() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// If a previous frame's surface image is still held, acquiring another
	// would trip wgpu-native validation; report it instead.
	if r.frameSurface != nil {
		return errFramePending
	}

	surfaceTexture, err := r.surface.GetCurrentTexture()
	if err != nil {
		return err
	}

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return err
	}

	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return err
	}

	r.uploadHacks()

	r.renderPassDescriptor.ColorAttachments[0].View = view
	pass := encoder.BeginRenderPass(r.renderPassDescriptor)

	r.frameEncoder = encoder
	r.framePass = pass
	r.frameSurface = surfaceTexture
	r.frameView = view
	return nil
}

func (r *wgpuRenderer) EndFrame() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.framePass == nil {
		return
	}
	r.framePass.End()

	commandBuffer, err := r.frameEncoder.Finish(nil)
	if err == nil {
		r.queue.Submit(commandBuffer)
		commandBuffer.Release()
	}

	r.frameEncoder.Release()
	r.frameEncoder = nil
	r.framePass = nil
}

func (r *wgpuRenderer) Present() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frameSurface == nil {
		return
	}
	r.surface.Present()

	if r.frameView != nil {
		r.frameView.Release()
		r.frameView = nil
	}
	r.frameSurface.Release()
	r.frameSurface = nil
}
