package main

import (
	cmd "github.com/embedviz/embedviz/cmd/embedviz"
	"github.com/embedviz/embedviz/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting embedviz")
	cmd.Execute()
}
