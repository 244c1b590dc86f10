package main

import "github.com/robmorgan/kbtune/cmd"

func main() {
	cmd.Execute()
}
