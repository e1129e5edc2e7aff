package main

import (
	server "github.com/echenim/bookview/cmd/server/app"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := server.StartServer(); err != nil {
		logrus.WithError(err).Fatal("book view stopped")
	}
}
