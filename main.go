package main

import "github.com/sumantkashyav/Log-Analysis-Script/internal/cmd"

func main() {
	cmd.Execute()
}
