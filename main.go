package main

import "bucket-report/cmd"

func main() {
	cmd.Execute()
}
