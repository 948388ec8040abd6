package engine

import (
	"fmt"

	"github.com/vovakirdan/typestorm/internal/config"
	"github.com/vovakirdan/typestorm/internal/core"
)

const gameTitle = "T Y P E S T O R M"

// Render draws the current screen into the buffer. The buffer is cleared
// first, so callers only need to size it.
func (s *Session) Render(screen *core.Screen) {
	screen.Clear()

	switch s.state {
	case StateMenu:
		s.renderMenu(screen)
	case StateOptions:
		s.renderOptions(screen)
	case StatePlay:
		s.renderPlay(screen)
	}
}

func (s *Session) renderMenu(screen *core.Screen) {
	h := screen.Height()
	top := h/2 - 5

	screen.DrawTextCentered(top, gameTitle, core.ColorText.Bright())

	labels := [menuCount]string{"NORMAL", "HARD", "OPTIONS", "QUIT"}
	if s.hardLocked() {
		labels[menuHard] = fmt.Sprintf("HARD (reach %d)", s.cfg.HardUnlock)
	}
	for i, label := range labels {
		color := core.ColorText
		if i == menuHard && s.hardLocked() {
			color = color.Dim()
		}
		if i == s.menuIndex {
			label = "> " + label + " <"
			color = core.ColorPlayer.Bright()
		}
		screen.DrawTextCentered(top+2+i, label, color)
	}

	best := fmt.Sprintf("best %s  normal %d  hard %d", s.cfg.Language, s.bestNormal, s.bestHard)
	screen.DrawTextCentered(top+2+menuCount+1, best, core.ColorText.Dim())

	if s.loadErr != nil {
		screen.DrawTextCentered(h-2, "word list unavailable: "+s.cfg.Language, core.ColorEnemy.Bright())
	}
}

func (s *Session) renderOptions(screen *core.Screen) {
	h := screen.Height()
	top := h/2 - 5

	screen.DrawTextCentered(top, "OPTIONS", core.ColorText.Bright())

	rows := [optCount]string{
		fmt.Sprintf("PALETTE   < %s >", s.paletteName()),
		fmt.Sprintf("LANGUAGE  < %s >", s.languageName()),
		fmt.Sprintf("ZOOM      < %s >", s.zoomName()),
		fmt.Sprintf("SFX       < %3d >", s.sfxDraft),
		fmt.Sprintf("MUSIC     < %3d >", s.musicDraft),
	}
	for i, row := range rows {
		color := core.ColorText
		if i == s.optIndex {
			color = core.ColorPlayer.Bright()
		}
		screen.DrawTextCentered(top+2+i, row, color)
	}

	screen.DrawTextCentered(top+2+optCount+1, "enter apply   esc cancel", core.ColorText.Dim())
}

func (s *Session) paletteName() string {
	names := config.PaletteNames()
	return names[s.paletteIdx%len(names)]
}

func (s *Session) languageName() string {
	langs := s.deps.Words.Languages()
	if len(langs) == 0 {
		return "none"
	}
	return langs[s.languageIdx%len(langs)]
}

func (s *Session) zoomName() string {
	zoom := config.ZoomLevels[s.zoomIdx%len(config.ZoomLevels)]
	return fmt.Sprintf("%d%%", int(zoom*100))
}

func (s *Session) renderPlay(screen *core.Screen) {
	w, h := screen.Width(), screen.Height()

	for _, e := range s.enemies {
		s.drawDebris(screen, e.Debris())
	}
	s.drawDebris(screen, s.player.Debris())

	for _, l := range s.lasers {
		s.drawLaser(screen, l)
	}

	for _, e := range s.enemies {
		if !e.Alive() {
			continue
		}
		color := core.ColorEnemy
		if e.Flashing() {
			color = color.Bright()
		}
		s.drawCircle(screen, e.Position(), e.Radius(), color)

		textColor := core.ColorText
		if e.Selected() {
			textColor = textColor.Bright()
		}
		ex, ey := s.camera.WorldToScreen(e.Position(), w, h)
		word := e.Word()
		screen.DrawText(ex-len([]rune(word))/2, ey, word, textColor)
	}

	if s.player.Alive() {
		s.drawCircle(screen, s.player.Position(), s.player.Radius(), core.ColorPlayer)
		tip := s.player.Position().Add(s.player.Direction().Scale(s.player.Radius()))
		tx, ty := s.camera.WorldToScreen(tip, w, h)
		screen.Set(tx, ty, '*', core.ColorPlayer.Bright())
	}

	s.drawHUD(screen)
}

func (s *Session) drawHUD(screen *core.Screen) {
	hud := fmt.Sprintf("SCORE %d  TIME %d  ACC %d%%  WPM %d",
		s.score, s.hudTime(), s.hudAccuracy(), s.hudWPM())
	screen.DrawText(1, 0, hud, core.ColorText)
}

// drawCircle fills the cells inside a world-space circle, using the ellipse
// equation to undo the 2:1 cell aspect. Circles smaller than a cell still
// paint their center so tiny debris stays visible until fully decayed.
func (s *Session) drawCircle(screen *core.Screen, center core.Vec2, radius float64, color core.Color) {
	w, h := screen.Width(), screen.Height()
	cx, cy := s.camera.WorldToScreen(center, w, h)

	rows := s.camera.Scale(h)
	ry := radius * rows
	rx := 2 * ry
	if rx < 1 || ry < 1 {
		screen.Set(cx, cy, '#', color)
		return
	}

	for dy := -int(ry); dy <= int(ry); dy++ {
		for dx := -int(rx); dx <= int(rx); dx++ {
			fx := float64(dx) / rx
			fy := float64(dy) / ry
			if fx*fx+fy*fy <= 1 {
				screen.Set(cx+dx, cy+dy, '#', color)
			}
		}
	}
}

func (s *Session) drawDebris(screen *core.Screen, debris []Debris) {
	for i := range debris {
		d := &debris[i]
		s.drawCircle(screen, d.Position, d.Radius, d.Color.Dim())
	}
}

// drawLaser samples the beam segment at sub-cell resolution.
func (s *Session) drawLaser(screen *core.Screen, l *Laser) {
	w, h := screen.Width(), screen.Height()
	span := l.End.Sub(l.Start)
	steps := int(span.Len()*2*s.camera.Scale(h)) + 1
	for i := 0; i <= steps; i++ {
		p := l.Start.Add(span.Scale(float64(i) / float64(steps)))
		x, y := s.camera.WorldToScreen(p, w, h)
		screen.Set(x, y, '·', core.ColorLaser.Bright())
	}
}
