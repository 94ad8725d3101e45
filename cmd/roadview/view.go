package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	statusRows   = 2
	sampleRate   = beep.SampleRate(44100)
	acceptTone   = 880
	rejectTone   = 220
	acceptToneMs = 50
	rejectToneMs = 150
)

// frame maps map coordinates to cells inside a border; y grows upward
type frame struct {
	left, top  int
	cols, rows int
	mapSize    float64
}

// newFrame fits the largest square-looking area into width x height cells.
// Terminal cells are about twice as tall as wide.
func newFrame(width, height int, mapSize float64) frame {
	rows := max(min(height-2, (width-2)/2), 1)
	return frame{left: 1, top: 1, cols: rows * 2, rows: rows, mapSize: mapSize}
}

func (f frame) project(x, y float64) (int, int, bool) {
	if x < 0 || y < 0 || x > f.mapSize || y > f.mapSize {
		return 0, 0, false
	}
	col := f.left + int(x/f.mapSize*float64(f.cols-1)+0.5)
	row := f.top + f.rows - 1 - int(y/f.mapSize*float64(f.rows-1)+0.5)
	return col, row, true
}

// Viewer draws one session on a tcell screen
type Viewer struct {
	screen        tcell.Screen
	width, height int
	session       *session

	audioInit bool
}

func NewViewer(screen tcell.Screen, s *session) *Viewer {
	v := &Viewer{screen: screen, session: s}
	v.width, v.height = screen.Size()
	return v
}

func (v *Viewer) initAudio() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		v.audioInit = true
	}
	return err
}

func (v *Viewer) playTone(freq float64, ms int) {
	if !v.audioInit {
		return
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.Printf("tone %v Hz: %v", freq, err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(time.Duration(ms)*time.Millisecond), sine))
}

// cue plays the accept or reject tone
func (v *Viewer) cue(valid bool) {
	if valid {
		v.playTone(acceptTone, acceptToneMs)
	} else {
		v.playTone(rejectTone, rejectToneMs)
	}
}

func (v *Viewer) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		if x+i >= v.width {
			return
		}
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *Viewer) draw() {
	v.screen.Clear()

	f := newFrame(v.width, v.height-statusRows, v.session.mapSize)
	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for c := f.left - 1; c <= f.left+f.cols; c++ {
		v.screen.SetContent(c, f.top-1, '─', nil, border)
		v.screen.SetContent(c, f.top+f.rows, '─', nil, border)
	}
	for r := f.top; r < f.top+f.rows; r++ {
		v.screen.SetContent(f.left-1, r, '│', nil, border)
		v.screen.SetContent(f.left+f.cols, r, '│', nil, border)
	}

	road := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if v.session.err != nil {
		road = tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
	for _, p := range v.session.road {
		if col, row, ok := f.project(p.X, p.Y); ok {
			v.screen.SetContent(col, row, '•', nil, road)
		}
	}
	if col, row, ok := f.project(v.session.mapSize/2, v.session.mapSize/2); ok && len(v.session.road) > 0 {
		v.screen.SetContent(col, row, 'S', nil, road.Bold(true))
	}

	statusY := f.top + f.rows + 1
	v.drawText(0, statusY, v.session.status(), tcell.StyleDefault.Foreground(tcell.ColorWhite))
	v.drawText(0, statusY+1, "g generate  m mutate  c crossover  q quit  "+v.session.current.String(),
		tcell.StyleDefault.Foreground(tcell.ColorYellow))

	v.screen.Show()
}

// handleInput returns false when the viewer should exit
func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}

		switch ev.Rune() {
		case 'q':
			return false
		case 'g':
			v.cue(v.session.generate())
		case 'm':
			v.cue(v.session.mutate())
		case 'c':
			v.cue(v.session.cross())
		}

	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}

	return true
}

func (v *Viewer) run() {
	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	v.draw()
	for ev := range eventChan {
		if !v.handleInput(ev) {
			return
		}
		v.draw()
	}
}

func (v *Viewer) cleanup() {
	if v.audioInit {
		speaker.Close()
	}
	v.screen.Fini()
}
