package main

import (
	"github.com/hollowlog/ignorewalk/internal/app"
)

func main() {
	app.Execute()
}
