package main

import (
	"github.com/sirupsen/logrus"

	"github.com/lc-pierce/discogs-metatagger/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	if err := cmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
