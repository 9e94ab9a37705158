package game

import (
	"bytes"
	"fmt"
	"image/png"
	"sort"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"slovli/domain/entities"
)

const (
	tileSize    = 62
	tileGap     = 6
	boardMargin = 12
)

// tile fill colors per mark, background and hint text below the grid
var (
	colorCorrect = [3]float64{0.416, 0.667, 0.392}
	colorPresent = [3]float64{0.788, 0.706, 0.345}
	colorAbsent  = [3]float64{0.471, 0.486, 0.494}
	colorEmpty   = [3]float64{0.827, 0.839, 0.855}
	colorBoard   = [3]float64{1, 1, 1}
)

// BoardRenderer draws the attempt grid as a PNG image
type BoardRenderer struct {
	face font.Face
}

// NewBoardRenderer creates a renderer with the embedded bold face
func NewBoardRenderer() (*BoardRenderer, error) {
	f, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{Size: 32})
	return &BoardRenderer{face: face}, nil
}

// RenderBoard draws all six rows for a game: filled rows for made attempts,
// empty outlined tiles for the rest.
func (r *BoardRenderer) RenderBoard(attempts []entities.Attempt, wordLength int) ([]byte, error) {
	width := boardMargin*2 + wordLength*tileSize + (wordLength-1)*tileGap
	height := boardMargin*2 + entities.MaxAttempts*tileSize + (entities.MaxAttempts-1)*tileGap

	dc := gg.NewContext(width, height)
	dc.SetRGB(colorBoard[0], colorBoard[1], colorBoard[2])
	dc.Clear()
	dc.SetFontFace(r.face)

	for row := 0; row < entities.MaxAttempts; row++ {
		y := float64(boardMargin + row*(tileSize+tileGap))
		if row < len(attempts) {
			r.drawAttemptRow(dc, attempts[row], wordLength, y)
		} else {
			r.drawEmptyRow(dc, wordLength, y)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode board image: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *BoardRenderer) drawAttemptRow(dc *gg.Context, attempt entities.Attempt, wordLength int, y float64) {
	runes := []rune(attempt.Word)
	for col := 0; col < wordLength; col++ {
		x := float64(boardMargin + col*(tileSize+tileGap))

		fill := colorAbsent
		if col < len(attempt.Marks) {
			switch attempt.Marks[col] {
			case entities.MarkCorrect:
				fill = colorCorrect
			case entities.MarkPresent:
				fill = colorPresent
			}
		}

		dc.SetRGB(fill[0], fill[1], fill[2])
		dc.DrawRectangle(x, y, tileSize, tileSize)
		dc.Fill()

		if col < len(runes) {
			dc.SetRGB(1, 1, 1)
			dc.DrawStringAnchored(string(runes[col]), x+tileSize/2, y+tileSize/2, 0.5, 0.5)
		}
	}
}

func (r *BoardRenderer) drawEmptyRow(dc *gg.Context, wordLength int, y float64) {
	for col := 0; col < wordLength; col++ {
		x := float64(boardMargin + col*(tileSize+tileGap))
		dc.SetRGB(colorEmpty[0], colorEmpty[1], colorEmpty[2])
		dc.SetLineWidth(2)
		dc.DrawRectangle(x, y, tileSize, tileSize)
		dc.Stroke()
	}
}

// FormatLetterHint renders the aggregated per-letter knowledge as three text
// lines for the message under the board.
func FormatLetterHint(statuses map[rune]entities.Mark) string {
	if len(statuses) == 0 {
		return ""
	}

	byMark := map[entities.Mark][]string{}
	for r, m := range statuses {
		byMark[m] = append(byMark[m], string(r))
	}
	for _, letters := range byMark {
		sort.Strings(letters)
	}

	var b strings.Builder
	if letters := byMark[entities.MarkCorrect]; len(letters) > 0 {
		b.WriteString("🟩 " + strings.Join(letters, " "))
	}
	if letters := byMark[entities.MarkPresent]; len(letters) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("🟨 " + strings.Join(letters, " "))
	}
	if letters := byMark[entities.MarkAbsent]; len(letters) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("⬜ " + strings.Join(letters, " "))
	}
	return b.String()
}
