package render

import (
	"fmt"
	"unicode/utf8"

	"tilesystem/internal/pixel"
)

// Action is a preview input command.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionNextPage
	ActionPrevPage
	ActionToggleFit
	ActionQuit
)

// panStep is how many image pixels one pan action moves the camera.
const panStep = 8

var (
	backdrop   = pixel.RGB(18, 18, 24)
	statusBg   = pixel.RGB(15, 18, 30)
	titleFg    = pixel.RGB(255, 220, 100)
	infoFg     = pixel.RGB(180, 180, 195)
	controlsFg = pixel.RGB(130, 130, 145)
)

// Page is one image the preview can show.
type Page struct {
	Title string
	Info  string
	Image *pixel.Buffer
}

// Preview pages through images on a terminal. Images are either scaled
// to fit or shown 1:1 with a pannable camera.
type Preview struct {
	engine *Engine
	pages  []Page
	page   int
	fit    bool
	focusX int
	focusY int
}

// NewPreview creates a preview for a width × height terminal.
func NewPreview(pages []Page, width, height int) *Preview {
	p := &Preview{
		engine: NewEngine(width, height),
		pages:  pages,
		fit:    true,
	}
	p.centre()
	return p
}

// Page returns the index of the current page.
func (p *Preview) Page() int { return p.page }

// Resize adjusts the preview for a new terminal size.
func (p *Preview) Resize(width, height int) {
	p.engine.Resize(width, height)
}

// Apply handles one input action. It reports false once the user quits.
func (p *Preview) Apply(a Action) bool {
	switch a {
	case ActionQuit:
		return false
	case ActionNextPage:
		if len(p.pages) > 0 {
			p.page = (p.page + 1) % len(p.pages)
			p.centre()
		}
	case ActionPrevPage:
		if len(p.pages) > 0 {
			p.page = (p.page + len(p.pages) - 1) % len(p.pages)
			p.centre()
		}
	case ActionToggleFit:
		p.fit = !p.fit
	case ActionUp:
		p.focusY -= panStep
	case ActionDown:
		p.focusY += panStep
	case ActionLeft:
		p.focusX -= panStep
	case ActionRight:
		p.focusX += panStep
	}
	return true
}

func (p *Preview) centre() {
	p.focusX, p.focusY = 0, 0
	if img := p.current(); img != nil {
		p.focusX, p.focusY = img.Width()/2, img.Height()/2
	}
}

func (p *Preview) current() *pixel.Buffer {
	if p.page < 0 || p.page >= len(p.pages) {
		return nil
	}
	return p.pages[p.page].Image
}

// Render draws the current page and returns the changed cells as ANSI.
func (p *Preview) Render() string {
	e := p.engine
	width, height := e.Size()
	e.Clear(Cell{Ch: ' ', BgR: backdrop.R, BgG: backdrop.G, BgB: backdrop.B})

	viewRows := max(height-StatusRows, 0)
	if img := p.current(); img != nil && width > 0 && viewRows > 0 {
		// Each terminal row holds two pixel rows.
		viewW, viewH := width, viewRows*2
		var shown *pixel.Buffer
		if p.fit {
			shown = Fit(img, viewW, viewH)
		} else {
			vp := NewViewport(p.focusX, p.focusY, viewW, viewH, img.Width(), img.Height())
			// Keep the focus inside the reachable range so panning back
			// responds immediately.
			p.focusX, p.focusY = vp.CamX+viewW/2, vp.CamY+viewH/2
			shown = Crop(img, vp)
		}
		col := (viewW - shown.Width()) / 2
		row := (viewH - shown.Height()) / 4
		e.StampImage(col, row, shown, backdrop)
	}

	p.drawStatus(width, height)
	return e.Flush()
}

func (p *Preview) drawStatus(width, height int) {
	e := p.engine
	top := height - StatusRows
	if top < 0 {
		return
	}
	for row := top; row < height; row++ {
		for col := 0; col < width; col++ {
			e.Set(col, row, Cell{Ch: ' ', BgR: statusBg.R, BgG: statusBg.G, BgB: statusBg.B})
		}
	}

	title, info := "no pages", ""
	if pg := p.current(); pg != nil {
		title = fmt.Sprintf("[%d/%d] %s", p.page+1, len(p.pages), p.pages[p.page].Title)
		info = p.pages[p.page].Info
	}
	mode := "fit"
	if !p.fit {
		mode = "1:1"
	}
	col := e.WriteText(top, 1, width, title, titleFg, statusBg, true)
	col = e.WriteText(top, col, width, "  │  ", controlsFg, statusBg, false)
	e.WriteText(top, col, width, info, infoFg, statusBg, false)

	controls := "n/p page  │  f " + mode + "  │  ←↑↓→ pan  │  q quit"
	e.WriteText(top+1, 1, width, controls, controlsFg, statusBg, false)
}

// ParseInput converts raw terminal bytes into preview actions.
// Handles arrow key escape sequences, WASD, page keys, Q and Ctrl-C.
func ParseInput(data []byte) []Action {
	var actions []Action
	i := 0
	for i < len(data) {
		// Check for escape sequences (arrow keys)
		if i+2 < len(data) && data[i] == 0x1b && data[i+1] == '[' {
			switch data[i+2] {
			case 'A':
				actions = append(actions, ActionUp)
			case 'B':
				actions = append(actions, ActionDown)
			case 'C':
				actions = append(actions, ActionRight)
			case 'D':
				actions = append(actions, ActionLeft)
			}
			i += 3
			continue
		}

		// Single byte inputs
		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'w', 'W':
			actions = append(actions, ActionUp)
		case 's', 'S':
			actions = append(actions, ActionDown)
		case 'a', 'A':
			actions = append(actions, ActionLeft)
		case 'd', 'D':
			actions = append(actions, ActionRight)
		case 'n', 'N', ' ':
			actions = append(actions, ActionNextPage)
		case 'p', 'P':
			actions = append(actions, ActionPrevPage)
		case 'f', 'F':
			actions = append(actions, ActionToggleFit)
		case 'q', 'Q', 3: // 3 = Ctrl-C
			actions = append(actions, ActionQuit)
		}
		i += size
	}
	return actions
}
