package main

import "eco-urh/go_backend/internal/app"

func main() {
	app.Run()
}
