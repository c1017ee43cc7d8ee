// cmd/vdjann/main.go
package main

import (
	"vdjann/internal/app"
	"vdjann/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
