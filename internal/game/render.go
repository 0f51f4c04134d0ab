package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/auto2048/internal/board"
	"github.com/vovakirdan/auto2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including borders; fits 65536
	cellHeight = 2 // Height of each cell including borders
	hudHeight  = 3

	minScreenW = 33
	minScreenH = 15
)

// HUD carries the watch-view annotations drawn around the board.
type HUD struct {
	Strategy string
	Depth    int
	Speed    int // autoplay speed in moves per second
	Paused   bool
}

// tilePalette indexes colors by tile magnitude: 2, 4, 8, ...
var tilePalette = []core.Color{
	core.ColorGray,
	core.ColorWhite,
	core.ColorBrightWhite,
	core.ColorYellow,
	core.ColorBrightYellow,
	core.ColorOrange,
	core.ColorBrightRed,
	core.ColorRed,
	core.ColorMagenta,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorBrightGreen,
}

// tileColor maps a tile value to its display color. Values beyond the
// palette keep the last color.
func tileColor(v int) core.Color {
	if v < 2 {
		return core.ColorDefault
	}
	idx := 0
	for n := v; n > 2; n >>= 1 {
		idx++
	}
	if idx >= len(tilePalette) {
		idx = len(tilePalette) - 1
	}
	return tilePalette[idx]
}

// dirArrow returns the arrow glyph for a direction.
func dirArrow(d board.Direction) rune {
	switch d {
	case board.DirUp:
		return '↑'
	case board.DirDown:
		return '↓'
	case board.DirLeft:
		return '←'
	case board.DirRight:
		return '→'
	default:
		return '?'
	}
}

// Render draws the session to the screen: HUD, board grid, overlays,
// and the control footer.
func (g *Game) Render(dst *core.Screen, hud HUD) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		renderTooSmall(dst)
		return
	}

	boardW := board.Size*cellWidth + 1  // +1 for right border
	boardH := board.Size*cellHeight + 1 // +1 for bottom border

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, hud, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, hud, boardX, boardY, boardW, boardH)
	renderFooter(dst, hud)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, counters, and strategy line.
func (g *Game) renderHUD(dst *core.Screen, hud HUD, boardX, boardW int) {
	title := "auto2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawTextColored(titleX, 0, title, core.ColorBrightYellow)

	if g.won {
		badge := "WON"
		dst.DrawTextColored(boardX+boardW-len(badge), 0, badge, core.ColorBrightCyan)
	}

	dst.DrawText(boardX, 1, fmt.Sprintf("Moves: %d", g.moves))

	maxStr := fmt.Sprintf("Max: %d", board.MaxTile(g.board))
	maxX := core.Max(boardX, boardX+boardW-len(maxStr))
	dst.DrawText(maxX, 1, maxStr)

	stratStr := hud.Strategy
	if hud.Depth > 0 {
		stratStr = fmt.Sprintf("%s depth:%d", hud.Strategy, hud.Depth)
	}
	dst.DrawText(boardX, 2, stratStr)

	if dir, score, ok := g.LastMove(); ok {
		lastStr := fmt.Sprintf("%c %.3f", dirArrow(dir), score)
		lastX := core.Max(boardX, boardX+boardW-len(lastStr))
		dst.DrawText(lastX, 2, lastStr)
	}
}

// renderBoard draws the 4x4 grid with colored tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	// Draw grid borders
	for y := 0; y < board.Size+1; y++ {
		for x := 0; x < board.Size+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			// Draw corner/intersection
			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == board.Size:
				corner = '┐'
			case y == board.Size && x == 0:
				corner = '└'
			case y == board.Size && x == board.Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == board.Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == board.Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			// Draw horizontal line to the right
			if x < board.Size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}

			// Draw vertical line down
			if y < board.Size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw tiles
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			val := g.board[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			// Center the value in the cell
			valStr := strconv.Itoa(val)
			padLeft := core.Max(0, (cellWidth-1-len(valStr))/2)

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderOverlays draws the paused and game-over overlays. A win alone
// gets the HUD badge instead; play continues until the board dies.
func (g *Game) renderOverlays(dst *core.Screen, hud HUD, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if hud.Paused && !g.over {
		drawOverlay(dst, centerX, centerY, core.ColorBrightYellow, "PAUSED", "Space to resume", "N to step")
		return
	}

	if g.over {
		lines := []string{
			fmt.Sprintf("Max tile: %d", board.MaxTile(g.board)),
			fmt.Sprintf("Seed: %d", g.opts.Seed),
			"R to restart",
		}
		if g.won {
			lines = append([]string{fmt.Sprintf("Target %d reached!", g.opts.Target)}, lines...)
		}
		drawOverlay(dst, centerX, centerY, core.ColorBrightRed, "GAME OVER", lines...)
	}
}

// drawOverlay draws a centered boxed overlay with a colored title.
func drawOverlay(dst *core.Screen, centerX, centerY int, titleColor core.Color, title string, lines ...string) {
	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 3
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(centerX-len(title)/2, boxY+1, title, titleColor)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+2+i, line)
	}
}

// renderFooter draws the speed and key hints on the bottom row.
func renderFooter(dst *core.Screen, hud HUD) {
	controls := fmt.Sprintf("%d mv/s | Space: Pause | N: Step | +/-: Speed | R: Restart | S: Snapshot | Q: Quit", hud.Speed)
	dst.DrawTextCentered(dst.Height()-1, controls)
}
