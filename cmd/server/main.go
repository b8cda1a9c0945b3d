package main

import (
	"github.com/bucket-sort/ratingd/internal/app/server"
	"github.com/bucket-sort/ratingd/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	logging.Fatal("Rating server exited: ", zap.Error(
		server.NewServer().Start(),
	))
}
