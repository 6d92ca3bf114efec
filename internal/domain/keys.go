package domain

// Settings keys read by the presence core. The store is shared with the
// host application, so the paths mirror its settings tree.
const (
	// KeyEnabled gates the whole presence feature
	KeyEnabled = "connectivity.discord_rpc.enabled"
	// KeyClient selects which client identity to authenticate as
	// ("stable" or "beta")
	KeyClient = "connectivity.discord_rpc.client"
	// KeyClearOnPause removes the presence while paused instead of
	// showing a pause indicator
	KeyClearOnPause = "connectivity.discord_rpc.clear_on_pause"
	// KeyHideTimestamp suppresses the remote progress bar
	KeyHideTimestamp = "connectivity.discord_rpc.hide_timestamp"
	// KeyDetailsFormat is the template for the first presence line
	KeyDetailsFormat = "connectivity.discord_rpc.activity.details_format"
	// KeyStateFormat is the template for the second presence line
	KeyStateFormat = "connectivity.discord_rpc.activity.state_format"
	// KeyButtonsEnabled gates presence buttons
	KeyButtonsEnabled = "connectivity.discord_rpc.activity.buttons.enabled"
	// KeyFirstButton is the first button slot choice
	KeyFirstButton = "connectivity.discord_rpc.activity.buttons.first"
	// KeySecondButton is the second button slot choice
	KeySecondButton = "connectivity.discord_rpc.activity.buttons.second"
	// KeyPrivacyEnabled hides all presence output while set
	KeyPrivacyEnabled = "general.privacy_enabled"
	// KeyLanguage selects the string table for button labels
	KeyLanguage = "general.language"
)
