package main

import "github.com/howerj/liblisp-go/cmd"

func main() {
	cmd.Execute()
}
