package main

import (
	"github.com/justsearch/justsearch/cmd"
	"github.com/justsearch/justsearch/config"
	"github.com/justsearch/justsearch/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
