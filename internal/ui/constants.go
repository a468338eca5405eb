// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// ScrollMargin is the number of rows kept visible above/below the cursor.
	ScrollMargin = 3

	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// HeaderHeight is the space for a panel title and its separator.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead of a titled panel.
	PanelOverhead = BorderHeight + HeaderHeight

	// FooterHeight is the key hint line at the bottom of each view.
	FooterHeight = 1

	// MinSideBySideWidth is the width from which the band detail view puts
	// the band facts next to the turntable instead of above it.
	MinSideBySideWidth = 110
)
