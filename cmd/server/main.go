package main

import (
	"github.com/forensilink/backend/internal/server"
	"github.com/forensilink/backend/internal/util"
	"github.com/forensilink/backend/pkg/logger"
	"github.com/forensilink/backend/pkg/logger/console"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)
	logger.Init(console.New(console.Params{Debug: debug}))

	server.Init()
}
