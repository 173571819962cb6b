package main

import "github.com/nrad-K/go-payroll/cmd"

func main() {
	cmd.Execute()
}
