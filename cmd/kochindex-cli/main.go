package main

import (
	"context"
	"kochindex-backend/cmd/kochindex-cli/commands"
	"kochindex-backend/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "kochindex-cli")
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
