package bot

import "errors"

var (
	ErrAlreadyRunning = errors.New("bot is already running")
	ErrRunning        = errors.New("registration is closed while the bot is running")
	ErrUnknownHandler = errors.New("unknown handler id")
)
