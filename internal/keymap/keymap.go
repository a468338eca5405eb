package keymap

// Binding contexts.
const (
	ContextGlobal    = "global"
	ContextBands     = "bands"
	ContextTurntable = "turntable"
)

// Binding maps keys to an action within a context.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},
	{ActionBack, []string{"esc", "backspace"}, "Back to band list", ContextGlobal},

	// Band list
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextBands},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextBands},
	{ActionJumpStart, []string{"g", "home"}, "First band", ContextBands},
	{ActionJumpEnd, []string{"G", "end"}, "Last band", ContextBands},
	{ActionOpen, []string{"enter", "l", "right"}, "Open band", ContextBands},
	{ActionToday, []string{"t"}, "Band for today", ContextBands},
	{ActionRefresh, []string{"r"}, "Reload bands", ContextBands},
	{ActionRecent, []string{"R"}, "Recently played", ContextBands},

	// Turntable
	{ActionPlayPause, []string{" "}, "Play/pause", ContextTurntable},
	{ActionNextTrack, []string{"n", "right", "l"}, "Next song", ContextTurntable},
	{ActionPrevTrack, []string{"p", "left", "h"}, "Previous song", ContextTurntable},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", ContextTurntable},
	{ActionVolumeDown, []string{"-", "_"}, "Volume down", ContextTurntable},
	{ActionToggleMenu, []string{"m"}, "Show/hide song list", ContextTurntable},
	{ActionMenuUp, []string{"k", "up"}, "Previous song in list", ContextTurntable},
	{ActionMenuDown, []string{"j", "down"}, "Next song in list", ContextTurntable},
	{ActionSelect, []string{"enter"}, "Play/pause highlighted song", ContextTurntable},
	{ActionPageNext, []string{"pgdown", "]"}, "Next page", ContextTurntable},
	{ActionPagePrev, []string{"pgup", "["}, "Previous page", ContextTurntable},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
