package tracker

// User-facing emulator connection statuses, printed by the console's
// `dolphin` command and logged on every transition.
const (
	StatusInitial     = "Dolphin connection has not been initiated."
	StatusConnected   = "Dolphin connected successfully."
	StatusLost        = "Dolphin connection was lost. Please restart your emulator and make sure TWW is running."
	StatusRefusedGame = "Dolphin failed to connect. Please load a randomized ROM for TWW. " +
		"Trying again in 5 seconds..."
	StatusRefusedSave = "Dolphin failed to connect. Please load into the save file. " +
		"Trying again in 5 seconds..."
)
