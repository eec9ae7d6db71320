package ui2d

// textScale is the HUD font scale: 14x26 px glyphs from the 7x13 font.
const textScale = 2

// Context is a minimal immediate-mode HUD: one panel at a time with rows of
// labels, buttons, checkboxes and progress bars.
type Context struct {
	canvas Canvas
	input  *InputState

	activeWidget string

	// Panel being drawn, nil outside BeginWindow/EndWindow
	window *Rect
	id     string

	cursorX float32
	cursorY float32
	rowH    float32
}

// NewContext creates a HUD drawing on canvas.
func NewContext(canvas Canvas) *Context {
	return &Context{
		canvas: canvas,
		input:  &InputState{},
	}
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Begin starts a new HUD frame.
func (c *Context) Begin() {
	c.input.Update()
}

// End finishes the HUD frame.
func (c *Context) End() {
	c.input.EndFrame()
}

// WantsMouse reports whether the mouse is over the last panel or a widget
// is being held, so the viewer should not treat the drag as a camera orbit.
func (c *Context) WantsMouse() bool {
	if c.activeWidget != "" {
		return true
	}
	return c.window != nil && c.window.Contains(c.input.MouseX, c.input.MouseY)
}

// BeginWindow draws a titled panel and places the cursor inside it.
func (c *Context) BeginWindow(id string, x, y, w, h float32, title string) {
	c.window = &Rect{x, y, w, h}
	c.id = id

	titleBarH := float32(30)
	c.canvas.DrawRect(x, y, w, h, ColorPanelBg)
	c.canvas.DrawRectOutline(x, y, w, h, 1, ColorPanelBorder)
	c.canvas.DrawRect(x+1, y+1, w-2, titleBarH-1, ColorButtonNormal)

	_, textH := c.canvas.MeasureText(title, textScale)
	c.canvas.DrawText(x+8, y+(titleBarH-textH)/2, title, textScale, ColorText)

	c.cursorX = x + 8
	c.cursorY = y + titleBarH + 8
	c.rowH = 0
}

// EndWindow ends the current panel. The panel stays hit-testable for
// WantsMouse until the next BeginWindow.
func (c *Context) EndWindow() {}

// Row starts a new row with the given height.
func (c *Context) Row(height float32) {
	if c.window == nil {
		return
	}
	c.cursorX = c.window.X + 8
	c.cursorY += c.rowH + 4
	c.rowH = height
}

// Button draws a button and returns true on the frame it is pressed.
func (c *Context) Button(id string, width float32, label string) bool {
	if c.window == nil {
		return false
	}

	x, y, h := c.cursorX, c.cursorY, c.rowH
	if h == 0 {
		h = 30
	}
	if width == 0 {
		width = c.window.W - 16
	}

	fullID := c.id + "_" + id
	hovered := Rect{x, y, width, h}.Contains(c.input.MouseX, c.input.MouseY)
	clicked := false
	if hovered && c.input.MouseLeftPressed {
		c.activeWidget = fullID
		clicked = true
	}
	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		c.activeWidget = ""
	}

	color := ColorButtonNormal
	if c.activeWidget == fullID {
		color = ColorButtonActive
	} else if hovered {
		color = ColorButtonHover
	}
	c.canvas.DrawRect(x, y, width, h, color)
	c.canvas.DrawRectOutline(x, y, width, h, 1, ColorPanelBorder)

	textW, textH := c.canvas.MeasureText(label, textScale)
	c.canvas.DrawText(x+(width-textW)/2, y+(h-textH)/2, label, textScale, ColorText)

	c.cursorX += width + 4
	return clicked
}

// Label draws a text label.
func (c *Context) Label(text string) {
	c.LabelColored(text, ColorText)
}

// LabelColored draws a text label with a specific color.
func (c *Context) LabelColored(text string, color Color) {
	if c.window == nil {
		return
	}
	c.canvas.DrawText(c.cursorX, c.cursorY, text, textScale, color)
	w, _ := c.canvas.MeasureText(text, textScale)
	c.cursorX += w + 4
}

// Checkbox draws a checkbox and returns the possibly toggled value.
func (c *Context) Checkbox(id string, label string, checked bool) bool {
	if c.window == nil {
		return checked
	}

	x, y := c.cursorX, c.cursorY
	boxSize := float32(20)

	fullID := c.id + "_" + id
	hovered := Rect{x, y, boxSize, boxSize}.Contains(c.input.MouseX, c.input.MouseY)
	if hovered && c.input.MouseLeftPressed {
		c.activeWidget = fullID
	}
	if c.activeWidget == fullID && c.input.MouseLeftReleased {
		if hovered {
			checked = !checked
		}
		c.activeWidget = ""
	}

	bg := ColorInputBg
	if hovered {
		bg = ColorButtonHover
	}
	c.canvas.DrawRect(x, y, boxSize, boxSize, bg)
	c.canvas.DrawRectOutline(x, y, boxSize, boxSize, 1, ColorPanelBorder)
	if checked {
		c.canvas.DrawRect(x+4, y+4, boxSize-8, boxSize-8, ColorHighlight)
	}

	labelW, textH := c.canvas.MeasureText(label, textScale)
	c.canvas.DrawText(x+boxSize+8, y+(boxSize-textH)/2, label, textScale, ColorText)

	c.cursorX += boxSize + 8 + labelW + 8
	return checked
}

// ProgressBar draws a bar filled to fraction, clamped to [0, 1].
func (c *Context) ProgressBar(fraction float32, width, height float32, label string) {
	if c.window == nil {
		return
	}

	x, y := c.cursorX, c.cursorY
	if height == 0 {
		height = 20
	}
	if width == 0 {
		width = c.window.W - 16
	}
	fraction = min(max(fraction, 0), 1)

	c.canvas.DrawRect(x, y, width, height, ColorInputBg)
	c.canvas.DrawRectOutline(x, y, width, height, 1, ColorPanelBorder)
	if fill := (width - 2) * fraction; fill > 0 {
		c.canvas.DrawRect(x+1, y+1, fill, height-2, ColorHighlight)
	}
	if label != "" {
		textW, textH := c.canvas.MeasureText(label, textScale)
		c.canvas.DrawText(x+(width-textW)/2, y+(height-textH)/2, label, textScale, ColorText)
	}

	c.cursorX = c.window.X + 8
	c.cursorY += height + 4
}

// Separator draws a horizontal separator line.
func (c *Context) Separator() {
	if c.window == nil {
		return
	}
	c.cursorY += c.rowH + 4
	c.rowH = 0
	x := c.window.X + 8
	c.canvas.DrawRect(x, c.cursorY, c.window.W-16, 1, ColorPanelBorder)
	c.cursorY += 8
	c.cursorX = x
}

// Rect is a simple rectangle struct.
type Rect struct {
	X, Y, W, H float32
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
