package beryl

import (
	"sync/atomic"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

var vkWindowActive atomic.Bool

// VkWindow is a window prepared for Vulkan rendering. The package does not
// manage instances, devices, or swapchains; it supplies the window-side
// pieces (required extensions and the VkSurfaceKHR) and leaves the rest to
// a Vulkan binding. It holds the init token alive until Close.
type VkWindow struct {
	window
	closed bool
}

// CreateVkWindow creates a window with the Vulkan flag fused in. Requesting
// WindowOpenGL or WindowMetal alongside is ErrContractViolation: a window
// belongs to one backend. At most one VkWindow can exist at a time.
func (s *Sdl) CreateVkWindow(opts WindowOptions) (*VkWindow, error) {
	if opts.Flags&(WindowOpenGL|WindowMetal) != 0 {
		return nil, violation("vulkan window cannot also request OpenGL or Metal")
	}
	if !vkWindowActive.CompareAndSwap(false, true) {
		return nil, violation("a Vulkan window is already open")
	}
	win, err := s.createWindow(opts, WindowVulkan)
	if err != nil {
		vkWindowActive.Store(false)
		return nil, err
	}
	s.retain()
	return &VkWindow{window: window{sdl: s, win: win}}, nil
}

// InstanceExtensions lists the instance extensions the window's surface
// needs, for inclusion in VkInstanceCreateInfo.
func (v *VkWindow) InstanceExtensions() []string {
	var exts []string
	v.sdl.do(func() {
		exts = v.win.VulkanGetInstanceExtensions()
	})
	return exts
}

// CreateSurface makes a VkSurfaceKHR for the window on the given instance,
// e.g. a vulkan binding's Instance handle. The surface must be destroyed
// through the instance before the window is closed.
func (v *VkWindow) CreateSurface(instance interface{}) (unsafe.Pointer, error) {
	var (
		surface unsafe.Pointer
		err     error
	)
	v.sdl.do(func() {
		surface, err = v.win.VulkanCreateSurface(instance)
	})
	if err != nil {
		return nil, nativeErr("SDL_Vulkan_CreateSurface", err)
	}
	return surface, nil
}

// DrawableSize is the window's drawable extent in pixels, the right size
// for the swapchain.
func (v *VkWindow) DrawableSize() (width, height int32) {
	v.sdl.do(func() {
		width, height = v.win.VulkanGetDrawableSize()
	})
	return
}

// GetVkGetInstanceProcAddr returns the loader entry point
// vkGetInstanceProcAddr, for bindings that take an explicit proc address.
func (v *VkWindow) GetVkGetInstanceProcAddr() unsafe.Pointer {
	var p unsafe.Pointer
	v.sdl.do(func() {
		p = sdl.VulkanGetVkGetInstanceProcAddr()
	})
	return p
}

// Close destroys the window and drops its hold on the init token. Destroy
// the VkSurfaceKHR and anything built on it first. Further calls do
// nothing.
func (v *VkWindow) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.sdl.do(func() {
		v.win.Destroy()
	})
	vkWindowActive.Store(false)
	v.sdl.release()
}
