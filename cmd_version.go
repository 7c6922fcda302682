package main

import "fmt"

type VersionCmd struct{}

func (cmd *VersionCmd) Run() error {
	fmt.Printf("hf-token v%s\n", VERSION)
	return nil
}
