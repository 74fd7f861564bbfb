// cmd/dbgwalk/main.go
package main

import (
	"dbgwalk/internal/app"
	"dbgwalk/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
