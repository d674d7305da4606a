package main

import "github.com/adanyl0v/study-board/internal/app"

func main() {
	app.Run()
}
