// cmd/dna-analyzer/main.go
package main

import (
	"github.com/aryanthorat85-star/DNA-Analyzer/internal/app"
	"github.com/aryanthorat85-star/DNA-Analyzer/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
