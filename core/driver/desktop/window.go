// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/draw"

	"github.com/lumen-gfx/lumen/core"
	"github.com/lumen-gfx/lumen/logx"
	"github.com/lumen-gfx/lumen/math32"
)

func (p *Platform) ToggleFullscreen() {
	w := &p.Ctx.Window
	if w.Flags.Has(core.FlagFullscreen) {
		w.Flags.Clear(core.FlagFullscreen)
		p.window.SetMonitor(nil, p.prevPos.X, p.prevPos.Y, p.prevSize.X, p.prevSize.Y, 0)
		return
	}
	x, y := p.window.GetPos()
	p.prevPos = image.Pt(x, y)
	p.prevSize = w.Screen
	monitor := p.currentGLFWMonitor()
	mode := monitor.GetVideoMode()
	w.Flags.Set(core.FlagFullscreen)
	p.window.SetMonitor(monitor, 0, 0, mode.Width, mode.Height, mode.RefreshRate)
}

func (p *Platform) ToggleBorderlessWindowed() {
	w := &p.Ctx.Window
	monitor := p.currentGLFWMonitor()
	if w.Flags.Has(core.FlagBorderless) {
		w.Flags.Clear(core.FlagBorderless)
		p.window.SetAttrib(glfw.Decorated, glfw.True)
		p.window.SetMonitor(nil, p.prevPos.X, p.prevPos.Y, p.prevSize.X, p.prevSize.Y, 0)
		return
	}
	x, y := p.window.GetPos()
	p.prevPos = image.Pt(x, y)
	p.prevSize = w.Screen
	mode := monitor.GetVideoMode()
	mx, my := monitor.GetPos()
	w.Flags.Set(core.FlagBorderless)
	p.window.SetAttrib(glfw.Decorated, glfw.False)
	p.window.SetMonitor(nil, mx, my, mode.Width, mode.Height, 0)
}

func (p *Platform) MaximizeWindow() {
	p.window.Maximize()
}

func (p *Platform) MinimizeWindow() {
	p.window.Iconify()
}

func (p *Platform) RestoreWindow() {
	p.window.Restore()
}

// SetWindowState applies the given flags as OS side effects where the
// desktop supports them, and records them in the context.
func (p *Platform) SetWindowState(flags core.WindowFlags) {
	w := &p.Ctx.Window
	if flags.Has(core.FlagVSyncHint) {
		glfw.SwapInterval(1)
	}
	if flags.Has(core.FlagFullscreen) && !w.Flags.Has(core.FlagFullscreen) {
		p.ToggleFullscreen()
	}
	if flags.Has(core.FlagBorderless) && !w.Flags.Has(core.FlagBorderless) {
		p.ToggleBorderlessWindowed()
	}
	if flags.Has(core.FlagResizable) {
		p.window.SetAttrib(glfw.Resizable, glfw.True)
	}
	if flags.Has(core.FlagUndecorated) {
		p.window.SetAttrib(glfw.Decorated, glfw.False)
	}
	if flags.Has(core.FlagTopmost) {
		p.window.SetAttrib(glfw.Floating, glfw.True)
	}
	if flags.Has(core.FlagHidden) {
		p.window.Hide()
	}
	if flags.Has(core.FlagMinimized) {
		p.window.Iconify()
	}
	if flags.Has(core.FlagMaximized) {
		p.window.Maximize()
	}
	w.Flags.Set(flags)
}

// ClearWindowState clears the given flags, applying the inverse OS
// side effects where the desktop supports them.
func (p *Platform) ClearWindowState(flags core.WindowFlags) {
	w := &p.Ctx.Window
	if flags.Has(core.FlagVSyncHint) {
		glfw.SwapInterval(0)
	}
	if flags.Has(core.FlagFullscreen) && w.Flags.Has(core.FlagFullscreen) {
		p.ToggleFullscreen()
	}
	if flags.Has(core.FlagBorderless) && w.Flags.Has(core.FlagBorderless) {
		p.ToggleBorderlessWindowed()
	}
	if flags.Has(core.FlagResizable) {
		p.window.SetAttrib(glfw.Resizable, glfw.False)
	}
	if flags.Has(core.FlagUndecorated) {
		p.window.SetAttrib(glfw.Decorated, glfw.True)
	}
	if flags.Has(core.FlagTopmost) {
		p.window.SetAttrib(glfw.Floating, glfw.False)
	}
	if flags.Has(core.FlagHidden) {
		p.window.Show()
	}
	if flags.Has(core.FlagMinimized) || flags.Has(core.FlagMaximized) {
		p.window.Restore()
	}
	w.Flags.Clear(flags)
}

func (p *Platform) SetWindowTitle(title string) {
	p.window.SetTitle(title)
}

func (p *Platform) SetWindowPosition(x, y int) {
	p.window.SetPos(x, y)
}

func (p *Platform) SetWindowMonitor(monitor int) {
	monitors := glfw.GetMonitors()
	if monitor < 0 || monitor >= len(monitors) {
		logx.Warn("SetWindowMonitor: monitor %d out of range", monitor)
		return
	}
	mode := monitors[monitor].GetVideoMode()
	p.window.SetMonitor(monitors[monitor], 0, 0, mode.Width, mode.Height, mode.RefreshRate)
}

func (p *Platform) SetWindowMinSize(w, h int) {
	p.applySizeLimits()
}

func (p *Platform) SetWindowMaxSize(w, h int) {
	p.applySizeLimits()
}

// applySizeLimits pushes the context size constraints to the window;
// zero means unconstrained.
func (p *Platform) applySizeLimits() {
	w := &p.Ctx.Window
	minW, minH, maxW, maxH := glfw.DontCare, glfw.DontCare, glfw.DontCare, glfw.DontCare
	if w.ScreenMin.X > 0 {
		minW = w.ScreenMin.X
	}
	if w.ScreenMin.Y > 0 {
		minH = w.ScreenMin.Y
	}
	if w.ScreenMax.X > 0 {
		maxW = w.ScreenMax.X
	}
	if w.ScreenMax.Y > 0 {
		maxH = w.ScreenMax.Y
	}
	p.window.SetSizeLimits(minW, minH, maxW, maxH)
}

func (p *Platform) SetWindowSize(w, h int) {
	p.window.SetSize(w, h)
}

func (p *Platform) SetWindowOpacity(opacity float32) {
	p.window.SetOpacity(math32.Clamp(opacity, 0, 1))
}

func (p *Platform) SetWindowFocused() {
	p.window.Focus()
}

// iconSizes are the icon dimensions window systems commonly pick from.
var iconSizes = []int{16, 32, 48}

// SetWindowIcons hands the window system one icon per standard size,
// each scaled from the closest-sized candidate.
func (p *Platform) SetWindowIcons(icons []image.Image) {
	p.window.SetIcon(scaleIcons(icons))
}

// scaleIcons converts the candidates into square RGBA icons at the
// standard sizes. For each size the candidate with the closest width
// is resampled to fit. Nil candidates are skipped.
func scaleIcons(icons []image.Image) []image.Image {
	var cands []image.Image
	for _, icon := range icons {
		if icon != nil {
			cands = append(cands, icon)
		}
	}
	if len(cands) == 0 {
		return nil
	}
	scaled := make([]image.Image, 0, len(iconSizes))
	for _, size := range iconSizes {
		src := cands[0]
		for _, icon := range cands[1:] {
			if absDiff(icon.Bounds().Dx(), size) < absDiff(src.Bounds().Dx(), size) {
				src = icon
			}
		}
		dst := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		scaled = append(scaled, dst)
	}
	return scaled
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func (p *Platform) WindowHandle() any {
	return p.window
}

func (p *Platform) WindowPosition() image.Point {
	x, y := p.window.GetPos()
	return image.Pt(x, y)
}

func (p *Platform) WindowScaleDPI() math32.Vector2 {
	sx, sy := p.window.GetContentScale()
	return math32.Vec2(sx, sy)
}

func (p *Platform) MonitorCount() int {
	return len(glfw.GetMonitors())
}

// CurrentMonitor returns the index of the monitor containing the
// window center, falling back to the primary monitor.
func (p *Platform) CurrentMonitor() int {
	monitors := glfw.GetMonitors()
	wx, wy := p.window.GetPos()
	ww, wh := p.window.GetSize()
	cx, cy := wx+ww/2, wy+wh/2
	for i, m := range monitors {
		mx, my := m.GetPos()
		mode := m.GetVideoMode()
		if cx >= mx && cx < mx+mode.Width && cy >= my && cy < my+mode.Height {
			return i
		}
	}
	return 0
}

func (p *Platform) MonitorPosition(monitor int) image.Point {
	m := monitorAt(monitor)
	if m == nil {
		return image.Point{}
	}
	x, y := m.GetPos()
	return image.Pt(x, y)
}

func (p *Platform) MonitorSize(monitor int) image.Point {
	m := monitorAt(monitor)
	if m == nil {
		return image.Point{}
	}
	mode := m.GetVideoMode()
	return image.Pt(mode.Width, mode.Height)
}

func (p *Platform) MonitorPhysicalSize(monitor int) image.Point {
	m := monitorAt(monitor)
	if m == nil {
		return image.Point{}
	}
	w, h := m.GetPhysicalSize()
	return image.Pt(w, h)
}

func (p *Platform) MonitorRefreshRate(monitor int) int {
	m := monitorAt(monitor)
	if m == nil {
		return 0
	}
	return m.GetVideoMode().RefreshRate
}

func (p *Platform) MonitorName(monitor int) string {
	m := monitorAt(monitor)
	if m == nil {
		return ""
	}
	return m.GetName()
}

func monitorAt(monitor int) *glfw.Monitor {
	monitors := glfw.GetMonitors()
	if monitor < 0 || monitor >= len(monitors) {
		logx.Warn("GetMonitor: monitor %d out of range", monitor)
		return nil
	}
	return monitors[monitor]
}

func (p *Platform) currentGLFWMonitor() *glfw.Monitor {
	if m := monitorAt(p.CurrentMonitor()); m != nil {
		return m
	}
	return glfw.GetPrimaryMonitor()
}
