package main

import (
	"github.com/joho/godotenv"

	"github.com/DavitTec/node.it/cmd"
)

func main() {
	// .env is optional; viper picks the variables up via AutomaticEnv.
	_ = godotenv.Load()
	cmd.Execute()
}
