package ui

// Color accessor functions return the ANSI escape code for the corresponding
// semantic color of the currently active theme. They are safe for concurrent
// use and return empty strings when colors are disabled, so callers can
// interpolate them unconditionally.

// ColorGreen returns the success color of the active theme.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorCyan returns the primary accent color of the active theme.
func ColorCyan() string { return GetCurrentTheme().Primary }

// ColorYellow returns the warning color of the active theme.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorRed returns the error color of the active theme.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorMagenta returns the info color of the active theme.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorBlue returns the secondary color of the active theme.
func ColorBlue() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code of the active theme.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code of the active theme.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the reset escape code of the active theme.
func ColorReset() string { return GetCurrentTheme().Reset }
