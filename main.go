package main

import (
	"github.com/PayRipple/PayRipple-Backend/api"
)

var envPath string = "."

func main() {
	server := api.NewServer(envPath)
	server.Start()
}
