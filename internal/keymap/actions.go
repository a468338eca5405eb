// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"
	ActionBack Action = "back"

	// Band list actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionOpen      Action = "open"    // enter - open band
	ActionToday     Action = "today"   // t - open band for today
	ActionRefresh   Action = "refresh" // r - reload bands
	ActionRecent    Action = "recent"  // R - toggle recently played

	// Turntable transport
	ActionPlayPause  Action = "play_pause"
	ActionNextTrack  Action = "next_track"
	ActionPrevTrack  Action = "prev_track"
	ActionVolumeUp   Action = "volume_up"
	ActionVolumeDown Action = "volume_down"

	// Song menu
	ActionToggleMenu Action = "toggle_menu" // m - show/hide song list
	ActionMenuUp     Action = "menu_up"
	ActionMenuDown   Action = "menu_down"
	ActionSelect     Action = "select" // enter - pick highlighted song
	ActionPageNext   Action = "page_next"
	ActionPagePrev   Action = "page_prev"
)
