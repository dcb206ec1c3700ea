package main

import "scraper/internal/cli"

func main() {
	cli.Execute()
}
