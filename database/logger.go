package database

import (
	"log/slog"
	"os"
)

// Logger is the default structured logger for the package. Open and
// OpenRemote install it on new handles unless WithLogger overrides it.
var Logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
	Level: slog.LevelInfo,
}))
