package main

import "github.com/llehouerou/turntable/internal/cli"

func main() {
	cli.Execute()
}
