package timer

// Surface displays the timer state. Every setter replaces the previous
// value.
type Surface interface {
	SetTitle(text string)
	SetTimer(text string)
	SetTip(text string)
	SetSession(text string)
	SetMarks(text string)
	SetControls(startEnabled, pauseEnabled bool)
}

// Board is the Surface rendered by the terminal view.
type Board struct {
	Title        string
	Timer        string
	Tip          string
	Session      string
	Marks        string
	StartEnabled bool
	PauseEnabled bool
}

func (b *Board) SetTitle(text string)   { b.Title = text }
func (b *Board) SetTimer(text string)   { b.Timer = text }
func (b *Board) SetTip(text string)     { b.Tip = text }
func (b *Board) SetSession(text string) { b.Session = text }
func (b *Board) SetMarks(text string)   { b.Marks = text }

func (b *Board) SetControls(startEnabled, pauseEnabled bool) {
	b.StartEnabled = startEnabled
	b.PauseEnabled = pauseEnabled
}
