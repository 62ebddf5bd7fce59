package tui

// playTickMsg advances playback by one second. gen identifies the tick
// chain; ticks from an abandoned chain are dropped.
type playTickMsg struct {
	gen int
}

// openFailedMsg reports that an asset URL could not be handed to the
// system browser.
type openFailedMsg struct {
	url string
	err error
}
