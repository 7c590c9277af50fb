package main

import (
	"context"

	"github.com/faizmokh/workwise/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
