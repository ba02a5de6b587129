// cmd/mininorm/main.go
package main

import (
	"mininorm/internal/app"
	"mininorm/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
