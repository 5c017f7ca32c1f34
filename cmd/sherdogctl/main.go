package main

import (
	"context"

	"github.com/padraicbc/sherdogapi/cmd/sherdogctl/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
