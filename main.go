// File: main.go

package main

import "github.com/deploymenttheory/go-efiboot/cmd"

func main() {
	cmd.Execute()
}
