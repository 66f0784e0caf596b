package main

import "github.com/luispauloloureiro/unfdashboard/internal/cmd"

func main() {
	cmd.Execute()
}
